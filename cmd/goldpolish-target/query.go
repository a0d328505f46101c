package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/seqfile"
)

var queryCmd = &cobra.Command{
	Use:   "query <gaps.fa> <region>",
	Short: "Show the extracted windows overlapping a region",
	Long: `Show which extracted windows overlap a region of the original assembly.

The region format is: name:start-end (0-based, half-open) or just name.

Examples:
  goldpolish-target query gaps.fa contig_1:120000-125000
  goldpolish-target query gaps.fa contig_1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gapsPath := args[0]
		regionStr := args[1]

		// Parse region
		region, err := seqfile.ParseRegion(regionStr)
		if err != nil {
			return fmt.Errorf("invalid region: %w", err)
		}

		ix, err := seqfile.LoadIndex(cmd.Context(), gapsPath, cfg)
		if err != nil {
			return fmt.Errorf("failed to load windows: %w", err)
		}

		hits := seqfile.QueryIndex(ix, region)
		fmt.Printf("Found %d windows\n", len(hits))
		if len(hits) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-30s %12s %12s\n", "Window", "Start", "End")
		fmt.Println("------------------------------------------------------------")
		for _, h := range hits {
			fmt.Printf("%-30s %12d %12d\n", h.Name, h.Start, h.End)
		}
		return nil
	},
}
