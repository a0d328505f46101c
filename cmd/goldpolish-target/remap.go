package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/seqfile"
)

var (
	remapGaps    string
	remapMapping string
	remapOutput  string
)

var remapCmd = &cobra.Command{
	Use:     "remap",
	Aliases: []string{"update-mapping"},
	Short:   "Translate a PAF mapping into gap coordinates",
	Long: `Rewrite a PAF mapping against the original assembly so that it targets
the extracted gaps.

Rows that overlap a window are re-expressed in the window's coordinates;
rows running past a window edge are clipped and their query bounds moved
by the same amount. Rows that touch no window are dropped.

Example:
  goldpolish-target remap -g gaps.fa -m reads.paf -o reads.gaps.paf`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configOnly() {
			return nil
		}
		if remapGaps == "" || remapMapping == "" {
			return fmt.Errorf("--gaps and --mapping are required")
		}

		_, err := seqfile.RemapPAF(cmd.Context(), seqfile.RemapOptions{
			Gaps:    remapGaps,
			Mapping: remapMapping,
			Output:  remapOutput,
			Config:  cfg,
			Logger:  logrus.StandardLogger(),
		})
		return err
	},
}

func init() {
	remapCmd.Flags().StringVarP(&remapGaps, "gaps", "g", "",
		"Extracted gaps file in FASTA format")
	remapCmd.Flags().StringVarP(&remapMapping, "mapping", "m", "",
		"Mapping file in PAF format")
	remapCmd.Flags().StringVarP(&remapOutput, "output", "o", seqfile.DefaultMappingOutput,
		"Name of updated mapping file")
}
