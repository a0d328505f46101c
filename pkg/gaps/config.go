package gaps

import (
	"fmt"
	"io"
	"runtime"

	"github.com/dustin/go-humanize"
)

// DefaultFlankLength is the flank added on each side of a gap
const DefaultFlankLength = 64

// Config holds the settings shared by extraction, splicing and remapping
type Config struct {
	FlankLength int // bases of context on each side of a gap (default: 64)
	Workers     int // sequences extracted in parallel (default: performance cores)
	LineWidth   int // FASTA line width, 0 writes each sequence on one line

	// Compression
	CompressionLevel int // 1 fastest .. 3 best, used for .gz/.zst outputs (default: 2)

	// Remote storage
	GCSAnonymous bool // read gs:// objects without credentials
}

// NewConfig creates a Config with defaults
func NewConfig() *Config {
	return &Config{
		FlankLength:      DefaultFlankLength,
		Workers:          detectOptimalWorkers(),
		LineWidth:        0,
		CompressionLevel: 2,
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.FlankLength < 0 {
		return fmt.Errorf("flank length must be >= 0")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1")
	}
	if c.LineWidth < 0 {
		return fmt.Errorf("line width must be >= 0")
	}
	if c.CompressionLevel < 1 || c.CompressionLevel > 3 {
		return fmt.Errorf("compression level must be between 1 and 3")
	}
	return nil
}

// ShowConfig prints the effective configuration
func (c *Config) ShowConfig(w io.Writer) {
	totalCores := runtime.NumCPU()
	optimalWorkers := detectOptimalWorkers()

	fmt.Fprintf(w, "System Information:\n")
	if optimalWorkers < totalCores {
		fmt.Fprintf(w, "  CPU cores: %d total (%d performance)\n", totalCores, optimalWorkers)
	} else {
		fmt.Fprintf(w, "  CPU cores: %d\n", totalCores)
	}
	if total, available := detectSystemMemory(); total > 0 {
		fmt.Fprintf(w, "  Memory: %s total, %s available\n",
			humanize.IBytes(uint64(total)), humanize.IBytes(uint64(available)))
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "Configuration:\n")
	fmt.Fprintf(w, "  Flank length: %d bp\n", c.FlankLength)
	fmt.Fprintf(w, "  Workers: %d\n", c.Workers)
	if c.LineWidth > 0 {
		fmt.Fprintf(w, "  FASTA line width: %d\n", c.LineWidth)
	} else {
		fmt.Fprintf(w, "  FASTA line width: unwrapped\n")
	}
	fmt.Fprintf(w, "  Compression level: %d\n", c.CompressionLevel)
	if c.GCSAnonymous {
		fmt.Fprintf(w, "  GCS access: anonymous\n")
	}
	fmt.Fprintf(w, "\n")
}
