package header

import (
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/util"
)

// MaxValueLen is the maximum length of a header value in characters.
const MaxValueLen = 65535

// IsValidName reports whether name is a legal header field name (RFC 7230 token).
func IsValidName(name string) bool { return grammar.IsToken(name) }

// IsValidValue reports whether value, after trimming the surrounding whitespace,
// contains only field-value text.
func IsValidValue(value string) bool { return grammar.IsFieldValue(util.TrimSP(value)) }

// NormalizeValue trims the value and checks its length.
// It does not check the value characters, see [IsValidValue].
func NormalizeValue(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	value = util.TrimSP(value)
	if n := utf8.RuneCountInString(value); n > MaxValueLen {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidValue,
			errorutil.NewWrapperError(ErrValueTooLong, "%d characters, max %d", n, MaxValueLen)))
	}
	return value, nil
}

// SplitColonSeparated splits a raw header line at the first colon.
// The name and the value are returned as is, without trimming.
func SplitColonSeparated(line string) (name, value string, err error) {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", errtrace.Wrap(ErrMissingColon)
	}
	return name, value, nil
}

func checkName(name string) (string, error) {
	if name == "" {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidName, grammar.ErrEmptyInput))
	}

	name = util.TrimSP(name)
	if !IsValidName(name) {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidName,
			errorutil.NewWrapperError(grammar.ErrMalformedInput, "%q", name)))
	}
	return name, nil
}

func checkValue(value string) (string, error) {
	value, err := NormalizeValue(value)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if !grammar.IsFieldValue(value) {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidValue,
			errorutil.NewWrapperError(grammar.ErrMalformedInput, "%q", util.Ellipsis(value, 64))))
	}
	return value, nil
}
