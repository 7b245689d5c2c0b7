// Package wordfreq wires the read, normalize, tokenize, count and report
// stages into a single pass.
package wordfreq

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/example/wordfreq/internal/config"
	"github.com/example/wordfreq/internal/freq"
	"github.com/example/wordfreq/internal/report"
	"github.com/example/wordfreq/internal/text"
)

// Analyze normalizes s and counts its tokens. It stops at the first token
// that violates a limit.
func Analyze(s string, limits config.LimitsConfig) (*freq.Table, error) {
	tbl := freq.NewTable(freq.Limits{
		MaxWords:   limits.MaxWords,
		MaxWordLen: limits.MaxWordLen,
	})

	normalized := text.Normalize(s)
	for word := range text.Tokens(normalized) {
		if err := tbl.Observe(word); err != nil {
			return nil, err
		}
	}

	slog.Debug("analyzed input",
		"input_bytes", len(s),
		"normalized_bytes", len(normalized),
		"tokens", tbl.Total(),
		"distinct", tbl.Len(),
	)

	return tbl, nil
}

// Options configures Run.
type Options struct {
	// Text, when non-empty, is used instead of reading a line from Stdin.
	Text   string
	Stdin  io.Reader
	Stdout io.Writer
	Limits config.LimitsConfig
	Output config.OutputConfig
}

// Run prompts (text format only), reads one line, analyzes it and writes the
// report.
func Run(opts Options) error {
	reporter, err := report.New(opts.Output.Format)
	if err != nil {
		return err
	}

	input := opts.Text
	if input == "" {
		if opts.Output.Prompt && reporter.Interactive() {
			if err := report.WritePrompt(opts.Stdout); err != nil {
				return fmt.Errorf("write prompt: %w", err)
			}
		}
		input, err = text.ReadLine(opts.Stdin, opts.Limits.MaxInputBytes)
		if err != nil {
			return err
		}
	} else if len(input) > opts.Limits.MaxInputBytes {
		return fmt.Errorf("%w: more than %d bytes", text.ErrInputTooLong, opts.Limits.MaxInputBytes)
	}

	tbl, err := Analyze(input, opts.Limits)
	if err != nil {
		return err
	}

	if err := reporter.Report(opts.Stdout, tbl); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
