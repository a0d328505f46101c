package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/seqfile"
)

var statsCmd = &cobra.Command{
	Use:   "stats <gaps.fa>",
	Short: "Show statistics for an extracted gaps file",
	Long: `Display per-sequence window counts for an extracted (or polished) gaps
file.

Span is the length of original sequence the windows were cut from; bases is
the length of the windows as they are now, which differs after polishing.

Example:
  goldpolish-target stats gaps.fa`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := seqfile.Stats(cmd.Context(), args[0], cfg)
		if err != nil {
			return err
		}

		fmt.Println("===========================================")
		fmt.Println("Gap Statistics")
		fmt.Println("===========================================")
		fmt.Println()
		fmt.Printf("Sequences with gaps: %d\n", len(stats.Contigs))
		fmt.Printf("Windows: %d\n", stats.Windows)
		fmt.Printf("Original span: %s bp\n", humanize.Comma(stats.Span))
		fmt.Printf("Window bases: %s bp\n", humanize.Comma(stats.Bases))
		fmt.Println()

		fmt.Println("Sequences:")
		for _, c := range stats.Contigs {
			fmt.Printf("  %s: %d windows, %s bp span, %s bp\n",
				c.Name, c.Windows, humanize.Comma(c.Span), humanize.Comma(c.Bases))
		}
		return nil
	},
}
