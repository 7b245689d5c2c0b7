package text

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputTooLong is returned when an input line exceeds the configured byte
// limit.
var ErrInputTooLong = errors.New("input too long")

// ReadLine reads a single line from r. The line ends at '\n' or end of
// stream; the terminator (and a preceding '\r') is not part of the result.
// Lines with more than maxBytes content bytes fail with ErrInputTooLong.
// An empty stream yields an empty line.
func ReadLine(r io.Reader, maxBytes int) (string, error) {
	br := bufio.NewReader(r)

	var line strings.Builder
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		if c == '\n' {
			break
		}
		// One byte of slack for a '\r' that turns out to precede '\n'.
		if line.Len() > maxBytes {
			return "", fmt.Errorf("%w: more than %d bytes", ErrInputTooLong, maxBytes)
		}
		line.WriteByte(c)
	}

	s := strings.TrimSuffix(line.String(), "\r")
	if len(s) > maxBytes {
		return "", fmt.Errorf("%w: more than %d bytes", ErrInputTooLong, maxBytes)
	}

	return s, nil
}
