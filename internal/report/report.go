// Package report renders a frequency table as text, JSON or YAML.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/example/wordfreq/internal/config"
	"github.com/example/wordfreq/internal/freq"
	"gopkg.in/yaml.v3"
)

const (
	Prompt = "Enter a paragraph:"
	Header = "Word frequencies:"
)

// Reporter writes a table to w.
type Reporter interface {
	Report(w io.Writer, tbl *freq.Table) error
	// Interactive reports whether the format shares stdout with the input
	// prompt.
	Interactive() bool
}

// Document is the machine-readable report shape.
type Document struct {
	Words    []freq.Entry `json:"words" yaml:"words"`
	Total    int          `json:"total" yaml:"total"`
	Distinct int          `json:"distinct" yaml:"distinct"`
}

// NewDocument snapshots tbl into a Document.
func NewDocument(tbl *freq.Table) Document {
	return Document{
		Words:    tbl.Entries(),
		Total:    tbl.Total(),
		Distinct: tbl.Len(),
	}
}

// New returns the reporter for a format accepted by config.NormalizeFormat.
func New(format string) (Reporter, error) {
	f, err := config.NormalizeFormat(format)
	if err != nil {
		return nil, err
	}

	switch f {
	case config.FormatJSON:
		return JSONReporter{}, nil
	case config.FormatYAML:
		return YAMLReporter{}, nil
	default:
		return TextReporter{}, nil
	}
}

// WritePrompt writes the interactive input prompt.
func WritePrompt(w io.Writer) error {
	_, err := fmt.Fprintln(w, Prompt)
	return err
}

// TextReporter prints a blank line, the header, then one "word: count" line
// per entry.
type TextReporter struct{}

func (TextReporter) Interactive() bool { return true }

func (TextReporter) Report(w io.Writer, tbl *freq.Table) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "\n%s\n", Header); err != nil {
		return err
	}
	for _, e := range tbl.Entries() {
		if _, err := fmt.Fprintf(bw, "%s: %d\n", e.Word, e.Count); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// JSONReporter writes the Document as indented JSON.
type JSONReporter struct{}

func (JSONReporter) Interactive() bool { return false }

func (JSONReporter) Report(w io.Writer, tbl *freq.Table) error {
	doc := NewDocument(tbl)
	if doc.Words == nil {
		doc.Words = []freq.Entry{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}

// YAMLReporter writes the Document as YAML.
type YAMLReporter struct{}

func (YAMLReporter) Interactive() bool { return false }

func (YAMLReporter) Report(w io.Writer, tbl *freq.Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(NewDocument(tbl)); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return enc.Close()
}
