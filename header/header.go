package header

//go:generate go tool errtrace -w .

import (
	"net/textproto"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Name represents an HTTP header name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// IsValid checks whether the Name is a syntactically valid field name.
func (n Name) IsValid() bool { return IsValidName(string(n)) }

// Equal compares this Name with another for equality.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	case string:
		other = Name(v)
	default:
		return false
	}
	return util.EqFold(util.TrimSP(n), util.TrimSP(other))
}

// CanonicName converts name to the canonical form.
// Names of registered headers take the registry casing, so "sec-websocket-key" becomes
// "Sec-WebSocket-Key" and "www-authenticate" becomes "WWW-Authenticate".
// Other names are canonicalized with [textproto.CanonicalMIMEHeaderKey].
func CanonicName[T ~string](name T) Name {
	name = util.TrimSP(name)
	if info, ok := Lookup(string(name)); ok {
		return info.Name
	}
	return Name(textproto.CanonicalMIMEHeaderKey(string(name)))
}

const (
	// ErrInvalidName is returned when a header name is empty or is not a token.
	ErrInvalidName errorutil.Error = "invalid header name"
	// ErrInvalidValue is returned when a header value contains illegal characters or is too long.
	ErrInvalidValue errorutil.Error = "invalid header value"
	// ErrValueTooLong is returned along with [ErrInvalidValue] when a value exceeds [MaxValueLen].
	ErrValueTooLong errorutil.Error = "header value is too long"
	// ErrRestrictedHeader is returned when an untrusted collection mutates a restricted header.
	ErrRestrictedHeader errorutil.Error = "restricted header"
	// ErrDirectionConflict is returned when a request-only header is used in a response collection
	// or vice versa.
	ErrDirectionConflict errorutil.Error = "header direction conflict"
	// ErrMissingColon is returned when a raw header line has no name/value separator.
	ErrMissingColon errorutil.Error = "missing colon"
	// ErrInvalidSnapshot is returned when a snapshot can not be imported.
	ErrInvalidSnapshot errorutil.Error = "invalid header snapshot"
)
