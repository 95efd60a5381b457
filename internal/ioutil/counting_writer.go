// Package ioutil provides I/O helpers.
package ioutil

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer, tracks the total number of bytes written
// and remembers the first write error.
// Once an error occurred, all subsequent writes are no-op.
type CountingWriter struct {
	w   io.Writer
	num int64
	err error
}

// NewCountingWriter creates a new CountingWriter wrapping w.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := cw.w.Write(p)
	return n, errtrace.Wrap(cw.track(n, err))
}

// WriteString implements io.StringWriter.
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := io.WriteString(cw.w, s)
	return n, errtrace.Wrap(cw.track(n, err))
}

// WriteStrings writes all parts in order until the first error.
func (cw *CountingWriter) WriteStrings(parts ...string) *CountingWriter {
	for _, s := range parts {
		if _, err := cw.WriteString(s); err != nil {
			break
		}
	}
	return cw
}

func (cw *CountingWriter) track(n int, err error) error {
	cw.num += int64(n)
	if err != nil {
		cw.err = err
	}
	return err
}

// Result returns the total number of bytes written and the first error encountered.
func (cw *CountingWriter) Result() (int64, error) {
	return cw.num, errtrace.Wrap(cw.err)
}

// Err returns the first error encountered.
func (cw *CountingWriter) Err() error { return errtrace.Wrap(cw.err) }

// Count returns the total number of bytes written.
func (cw *CountingWriter) Count() int64 { return cw.num }

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
