package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
)

const version = "0.1.0"

var (
	cfg = gaps.NewConfig()

	logLevel   string
	logFormat  string
	cpuProfile string
	showConfig bool

	profiler interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "goldpolish-target",
	Short: "GoldPolish-Target - targeted gap extraction and reinsertion",
	Long: `GoldPolish-Target carves low-quality regions ("gaps") of an assembly out
together with flanking context so that only those regions are polished,
then puts the polished sequence back.

Gaps are taken from soft-masked (lowercase) bases, or from a BED file.
Alignments against the original assembly can be translated into the
coordinate space of the extracted gaps for the polisher.

Inputs and outputs may be local paths, s3://bucket/key or gs://bucket/key.
Files ending in .gz or .zst are compressed on output; compressed inputs are
detected automatically.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		logrus.SetLevel(level)
		logrus.SetOutput(os.Stderr)
		switch logFormat {
		case "text":
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		case "json":
			logrus.SetFormatter(&logrus.JSONFormatter{})
		default:
			return fmt.Errorf("invalid log format: %s (expected text or json)", logFormat)
		}

		if cpuProfile != "" {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(cpuProfile), profile.Quiet)
		}
		return cfg.Validate()
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if profiler != nil {
		profiler.Stop()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "text",
		"Log format: text, json")
	pf.StringVar(&cpuProfile, "cpuprofile", "",
		"Write a CPU profile into this directory")
	pf.IntVar(&cfg.Workers, "workers", cfg.Workers,
		"Number of sequences processed in parallel (default: performance cores)")
	pf.IntVar(&cfg.LineWidth, "line-width", cfg.LineWidth,
		"FASTA line width, 0 for one line per sequence")
	pf.IntVar(&cfg.CompressionLevel, "compression-level", cfg.CompressionLevel,
		"Compression level for .gz/.zst outputs: 1 fastest, 2 default, 3 best")
	pf.BoolVar(&cfg.GCSAnonymous, "gcs-anonymous", false,
		"Access gs:// objects without credentials (public data only)")
	pf.BoolVar(&showConfig, "show-config", false,
		"Show effective configuration and exit")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(spliceCmd)
	rootCmd.AddCommand(remapCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// configOnly prints the configuration when --show-config is set
func configOnly() bool {
	if showConfig {
		cfg.ShowConfig(os.Stderr)
	}
	return showConfig
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goldpolish-target version %s\n", version)
	},
}
