package header

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/ioutil"
)

// Read reads a header block from r and returns a trusted collection with the read headers.
// Reading stops at the first empty line or at EOF.
// Lines starting with SP or HTAB continue the previous line (obsolete line folding).
// Line length is not limited by the reader, values longer than [MaxValueLen] fail with [ErrValueTooLong].
// The response flag selects the multi-value policy direction, see [Collection.InternalSet].
func Read(r io.Reader, response bool, opts ...Option) (*Collection, error) {
	c := New(true, opts...)

	var (
		line  strings.Builder
		start int
	)
	flush := func() error {
		if line.Len() == 0 {
			return nil
		}
		defer line.Reset()
		if err := c.InternalSet(line.String(), response); err != nil {
			return errtrace.Wrap(fmt.Errorf("line %d: %w", start, err))
		}
		return nil
	}

	lr := ioutil.NewLineReader(r)
	for {
		s, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("line %d: %w", lr.LineNo()+1, err))
		}
		if s == "" {
			break
		}
		if grammar.IsWSP(s[0]) && line.Len() > 0 {
			line.WriteByte(' ')
			line.WriteString(strings.TrimLeft(s, " \t"))
			continue
		}
		if err := flush(); err != nil {
			return nil, errtrace.Wrap(err)
		}
		start = lr.LineNo()
		line.WriteString(s)
	}
	if err := flush(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return c, nil
}
