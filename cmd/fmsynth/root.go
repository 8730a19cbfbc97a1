package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "fmsynth",
		Short: "Synthesize feature models from product configurations",
		Long: `fmsynth reverse-engineers a feature model from a set of observed
product configurations using attribute-concepts of formal concept analysis,
and writes it in a UVL-like text format.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newSynthCmd(),
		newGenerateCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the fmsynth version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "fmsynth", version)
			},
		},
	)

	return root
}
