package ioutil

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"braces.dev/errtrace"
)

// LineReader reads LF or CRLF terminated lines of any length.
// Line length limits are left to the caller.
type LineReader struct {
	br   *bufio.Reader
	num  int
	done bool
}

// NewLineReader creates a new LineReader reading from r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReader(r)}
}

// ReadLine returns the next line without the line terminator.
// A final line without terminator is returned as is.
// It returns [io.EOF] when there are no more lines.
func (lr *LineReader) ReadLine() (string, error) {
	if lr.done {
		return "", io.EOF //errtrace:skip
	}

	line, err := lr.br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errtrace.Wrap(err)
		}
		lr.done = true
		if line == "" {
			return "", io.EOF //errtrace:skip
		}
	}
	lr.num++
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimRight(line, "\r"), nil
}

// LineNo returns the number of the last returned line, starting from 1.
func (lr *LineReader) LineNo() int { return lr.num }
