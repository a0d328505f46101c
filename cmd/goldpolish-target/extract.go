package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
	"github.com/scttfrdmn/goldpolish-target-go/pkg/seqfile"
)

var (
	extractFASTA  string
	extractBED    string
	extractOutput string
	extractFAI    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract gaps with flanking sequence",
	Long: `Extract regions to polish, with flanks, into a FASTA file.

Without --bed, gaps are the soft-masked (lowercase) stretches of each
sequence. Short uppercase stretches that cannot hold two flanks are
absorbed into the surrounding gap. With --bed, the listed regions are used
and regions closer than two flank lengths are merged.

Each window is named <sequence>.<n> and carries "<start>-<end>", the
coordinates it was cut from, in its header. Window sequence is upper case.

Examples:
  goldpolish-target extract -f assembly.fa -o gaps.fa
  goldpolish-target extract -f assembly.fa --bed low_quality.bed -l 100 -o gaps.fa
  goldpolish-target extract -f s3://bucket/assembly.fa.gz -o gaps.fa --fai`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configOnly() {
			return nil
		}
		if extractFASTA == "" {
			return fmt.Errorf("--fasta is required")
		}

		_, err := seqfile.Extract(cmd.Context(), seqfile.ExtractOptions{
			FASTA:    extractFASTA,
			BED:      extractBED,
			Output:   extractOutput,
			WriteFAI: extractFAI,
			Config:   cfg,
			Logger:   logrus.StandardLogger(),
		})
		return err
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractFASTA, "fasta", "f", "",
		"Target assembly in FASTA format")
	extractCmd.Flags().StringVar(&extractBED, "bed", "",
		"BED file of regions to polish (default: soft-masked bases)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", seqfile.DefaultGapsOutput,
		"Output FASTA of flanked gaps")
	extractCmd.Flags().IntVarP(&cfg.FlankLength, "length", "l", gaps.DefaultFlankLength,
		"Length of flanking regions")
	extractCmd.Flags().BoolVar(&extractFAI, "fai", false,
		"Write a .fai index of the output (local, uncompressed output only)")
}
