package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/seqfile"
)

var (
	spliceFASTA  string
	spliceGaps   string
	spliceOutput string
)

var spliceCmd = &cobra.Command{
	Use:     "splice",
	Aliases: []string{"post-process"},
	Short:   "Insert polished gaps back into the assembly",
	Long: `Insert polished gap sequences back into the original assembly.

Each window in --gaps replaces the span recorded in its header. Polished
windows may be longer or shorter than the span they replace. Sequences
without windows are written unchanged, in input order.

The output is only written if every sequence could be rebuilt.

Example:
  goldpolish-target splice -f assembly.fa -g polished_gaps.fa -o assembly.polished.fa`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configOnly() {
			return nil
		}
		if spliceFASTA == "" || spliceGaps == "" || spliceOutput == "" {
			return fmt.Errorf("--fasta, --gaps and --output are required")
		}

		_, err := seqfile.Splice(cmd.Context(), seqfile.SpliceOptions{
			FASTA:  spliceFASTA,
			Gaps:   spliceGaps,
			Output: spliceOutput,
			Config: cfg,
			Logger: logrus.StandardLogger(),
		})
		return err
	},
}

func init() {
	spliceCmd.Flags().StringVarP(&spliceFASTA, "fasta", "f", "",
		"Original assembly in FASTA format")
	spliceCmd.Flags().StringVarP(&spliceGaps, "gaps", "g", "",
		"Polished gaps and flanks in FASTA format")
	spliceCmd.Flags().StringVarP(&spliceOutput, "output", "o", "",
		"Output FASTA")
}
