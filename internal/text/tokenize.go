package text

import "iter"

// Tokenizer yields the whitespace-separated words of a normalized string one
// at a time. It is single-pass: once Next reports false it stays exhausted.
type Tokenizer struct {
	s   string
	pos int
}

// NewTokenizer returns a Tokenizer positioned at the start of s.
func NewTokenizer(s string) *Tokenizer {
	return &Tokenizer{s: s}
}

// Next returns the next non-empty token. Runs of whitespace collapse, so
// leading, trailing and repeated delimiters never produce empty tokens.
func (t *Tokenizer) Next() (string, bool) {
	for t.pos < len(t.s) && IsSpace(t.s[t.pos]) {
		t.pos++
	}
	if t.pos >= len(t.s) {
		return "", false
	}

	start := t.pos
	for t.pos < len(t.s) && !IsSpace(t.s[t.pos]) {
		t.pos++
	}

	return t.s[start:t.pos], true
}

// Tokens returns the tokens of s as a sequence. Each call to the returned
// sequence starts a fresh Tokenizer.
func Tokens(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		tok := NewTokenizer(s)
		for {
			word, ok := tok.Next()
			if !ok || !yield(word) {
				return
			}
		}
	}
}
