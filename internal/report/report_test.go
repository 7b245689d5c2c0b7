package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/example/wordfreq/internal/freq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTable(t *testing.T, words ...string) *freq.Table {
	t.Helper()

	tbl := freq.NewTable(freq.Limits{})
	for _, w := range words {
		require.NoError(t, tbl.Observe(w))
	}
	return tbl
}

func TestNew(t *testing.T) {
	tests := []struct {
		format      string
		want        Reporter
		interactive bool
	}{
		{"", TextReporter{}, true},
		{"text", TextReporter{}, true},
		{"json", JSONReporter{}, false},
		{"YAML", YAMLReporter{}, false},
		{"yml", YAMLReporter{}, false},
	}

	for _, tt := range tests {
		r, err := New(tt.format)
		require.NoError(t, err, tt.format)
		assert.Equal(t, tt.want, r, tt.format)
		assert.Equal(t, tt.interactive, r.Interactive(), tt.format)
	}

	_, err := New("csv")
	assert.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	tbl := sampleTable(t, "the", "cat", "the")

	var buf bytes.Buffer
	require.NoError(t, TextReporter{}.Report(&buf, tbl))

	assert.Equal(t, "\nWord frequencies:\nthe: 2\ncat: 1\n", buf.String())
}

func TestTextReporter_EmptyTableHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextReporter{}.Report(&buf, freq.NewTable(freq.Limits{})))

	assert.Equal(t, "\nWord frequencies:\n", buf.String())
}

func TestWritePrompt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePrompt(&buf))

	assert.Equal(t, "Enter a paragraph:\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	tbl := sampleTable(t, "b", "a", "b")

	var buf bytes.Buffer
	require.NoError(t, JSONReporter{}.Report(&buf, tbl))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []freq.Entry{{Word: "b", Count: 2}, {Word: "a", Count: 1}}, doc.Words)
	assert.Equal(t, 3, doc.Total)
	assert.Equal(t, 2, doc.Distinct)
}

func TestJSONReporter_EmptyTableHasEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONReporter{}.Report(&buf, freq.NewTable(freq.Limits{})))

	assert.JSONEq(t, `{"words":[],"total":0,"distinct":0}`, buf.String())
}

func TestYAMLReporter_PreservesOrder(t *testing.T) {
	tbl := sampleTable(t, "zeta", "alpha", "zeta", "mid")

	var buf bytes.Buffer
	require.NoError(t, YAMLReporter{}.Report(&buf, tbl))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Words, 3)
	assert.Equal(t, "zeta", doc.Words[0].Word)
	assert.Equal(t, 2, doc.Words[0].Count)
	assert.Equal(t, "alpha", doc.Words[1].Word)
	assert.Equal(t, "mid", doc.Words[2].Word)
	assert.Equal(t, 4, doc.Total)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReporters_PropagateWriteErrors(t *testing.T) {
	tbl := sampleTable(t, "a")

	for _, r := range []Reporter{TextReporter{}, JSONReporter{}, YAMLReporter{}} {
		assert.Error(t, r.Report(failingWriter{}, tbl), "%T", r)
	}
}
