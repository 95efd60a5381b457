// Package grammar implements the HTTP field grammar checks used by the header package.
package grammar

//go:generate errtrace -w .

import (
	"github.com/ghettovoice/abnf"
	"golang.org/x/net/http/httpguts"

	"github.com/ghettovoice/httphdr/internal/constraints"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

// IsToken reports whether s is a non-empty RFC 7230 token,
// i.e. a legal header field name.
func IsToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := Token([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsFieldValue reports whether s consists only of field-value text:
// visible characters, obs-text, SP and HTAB.
// The empty string is a valid field value.
func IsFieldValue[T constraints.Byteseq](s T) bool {
	return httpguts.ValidHeaderFieldValue(string(s))
}

// IsWSP reports whether c is an HTTP whitespace character (SP or HTAB).
func IsWSP(c byte) bool { return c == ' ' || c == '\t' }
