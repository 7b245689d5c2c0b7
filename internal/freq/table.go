// Package freq keeps an insertion-ordered count of distinct words.
package freq

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyWords is returned when a new distinct word would exceed the
	// table's capacity.
	ErrTooManyWords = errors.New("too many distinct words")
	// ErrWordTooLong is returned for a word longer than the per-word limit.
	ErrWordTooLong = errors.New("word too long")
)

// Entry is one distinct word and the number of times it was observed.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Limits bounds a Table. A zero field means unbounded.
type Limits struct {
	MaxWords   int
	MaxWordLen int
}

// Table counts words in first-seen order. The zero value is an unbounded,
// empty table ready for use.
type Table struct {
	limits  Limits
	entries []Entry
	index   map[string]int
	total   int
}

// maxPrealloc caps up-front allocation so a large MaxWords costs nothing
// until the words actually arrive.
const maxPrealloc = 1024

// NewTable returns an empty table bounded by limits.
func NewTable(limits Limits) *Table {
	t := &Table{limits: limits}
	if limits.MaxWords > 0 {
		n := min(limits.MaxWords, maxPrealloc)
		t.entries = make([]Entry, 0, n)
		t.index = make(map[string]int, n)
	}
	return t
}

// Observe records one occurrence of word. A failed call leaves the table
// unchanged.
func (t *Table) Observe(word string) error {
	if t.limits.MaxWordLen > 0 && len(word) > t.limits.MaxWordLen {
		return fmt.Errorf("%w: %q has %d bytes, limit %d", ErrWordTooLong, word, len(word), t.limits.MaxWordLen)
	}

	if i, ok := t.index[word]; ok {
		t.entries[i].Count++
		t.total++
		return nil
	}

	if t.limits.MaxWords > 0 && len(t.entries) >= t.limits.MaxWords {
		return fmt.Errorf("%w: limit %d reached at %q", ErrTooManyWords, t.limits.MaxWords, word)
	}

	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.index[word] = len(t.entries)
	t.entries = append(t.entries, Entry{Word: word, Count: 1})
	t.total++

	return nil
}

// Count returns how many times word was observed.
func (t *Table) Count(word string) int {
	if i, ok := t.index[word]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Entries returns a copy of the entries in first-seen order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len is the number of distinct words.
func (t *Table) Len() int { return len(t.entries) }

// Total is the sum of all counts.
func (t *Table) Total() int { return t.total }
