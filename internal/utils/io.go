package utils

import (
	"bufio"
	"io"
	"strings"

	kerrors "github.com/PolarWolf314/keepsake/internal/errors"
)

// LineReader reads newline-terminated answers from piped input.
type LineReader struct {
	scanner *bufio.Scanner
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line without its line ending. It returns
// ErrNoInput once the input is exhausted.
func (l *LineReader) ReadLine() (string, error) {
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}
		return "", kerrors.ErrNoInput
	}
	return strings.TrimRight(l.scanner.Text(), "\r"), nil
}
