package main

import (
	"github.com/example/wordfreq/internal/wordfreq"
	"github.com/spf13/cobra"
)

type countOptions struct {
	text string
}

func newCountCmd() *cobra.Command {
	var opts countOptions

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Read a line and print its word frequencies",
	}
	opts.register(cmd)

	return cmd
}

func (o *countOptions) register(cmd *cobra.Command) {
	cmd.Args = cobra.NoArgs
	cmd.RunE = o.run
	cmd.Flags().StringVar(&o.text, "text", "", "Text to analyze (if empty, read one line from stdin)")
}

func (o *countOptions) run(cmd *cobra.Command, _ []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	return wordfreq.Run(wordfreq.Options{
		Text:   o.text,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Limits: cfg.Limits,
		Output: cfg.Output,
	})
}
