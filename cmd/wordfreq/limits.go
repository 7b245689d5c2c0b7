package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "Print the effective input limits and output settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintf(tw, "max_input_bytes\t%d\n", cfg.Limits.MaxInputBytes)
			_, _ = fmt.Fprintf(tw, "max_words\t%d\n", cfg.Limits.MaxWords)
			_, _ = fmt.Fprintf(tw, "max_word_len\t%d\n", cfg.Limits.MaxWordLen)
			_, _ = fmt.Fprintf(tw, "format\t%s\n", cfg.Output.Format)
			_, _ = fmt.Fprintf(tw, "prompt\t%t\n", cfg.Output.Prompt)
			return tw.Flush()
		},
	}
}
