package text

import "strings"

// Normalize keeps ASCII letters, digits and whitespace in their original
// order and lowercases the letters. Every other byte, including all bytes of
// multi-byte UTF-8 sequences, is dropped. Normalize is idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		case isAlnum(c) || IsSpace(c):
			b.WriteByte(c)
		}
	}

	return b.String()
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// IsSpace reports whether c is ASCII whitespace: space, \t, \n, \v, \f or \r.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
