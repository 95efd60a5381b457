package header

import (
	"github.com/ghettovoice/httphdr/internal/util"
)

// Direction is a set of message directions in which a header may appear.
type Direction uint8

const (
	DirRequest Direction = 1 << iota
	DirResponse

	DirNone Direction = 0
	DirBoth           = DirRequest | DirResponse
)

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirRequest:
		return "request"
	case DirResponse:
		return "response"
	case DirBoth:
		return "request|response"
	default:
		return "unknown"
	}
}

// MultiValue is a policy for repeated values of the same header.
type MultiValue uint8

const (
	// MultiNever means a header holds a single value, the latest one wins.
	MultiNever MultiValue = iota
	// MultiAlways means a header accumulates values in every direction it may appear in.
	MultiAlways
	// MultiInRequest means a header accumulates values in requests only.
	MultiInRequest
	// MultiInResponse means a header accumulates values in responses only.
	MultiInResponse
)

func (m MultiValue) String() string {
	switch m {
	case MultiNever:
		return "never"
	case MultiAlways:
		return "always"
	case MultiInRequest:
		return "in-request"
	case MultiInResponse:
		return "in-response"
	default:
		return "unknown"
	}
}

// Info describes semantics of a well-known header.
type Info struct {
	// Name is the canonical wire form of the header name.
	Name Name
	// Dirs is the set of directions in which the header may appear.
	Dirs Direction
	// Restricted headers can be mutated only by trusted collections.
	Restricted bool
	// Multi is the multi-value policy.
	Multi MultiValue
}

func (info Info) IsRequest() bool { return info.Dirs&DirRequest != 0 }

func (info Info) IsResponse() bool { return info.Dirs&DirResponse != 0 }

// Direction returns the only direction the header may appear in.
// For headers allowed in both directions or in none it returns [DirNone].
func (info Info) Direction() Direction {
	if info.Dirs == DirRequest || info.Dirs == DirResponse {
		return info.Dirs
	}
	return DirNone
}

// IsMultiValue reports whether the header accumulates values in requests (response is false)
// or in responses (response is true).
func (info Info) IsMultiValue(response bool) bool {
	switch info.Multi {
	case MultiAlways:
		if response {
			return info.IsResponse()
		}
		return info.IsRequest()
	case MultiInRequest:
		return !response
	case MultiInResponse:
		return response
	default:
		return false
	}
}

// isMultiValueIn evaluates the multi-value policy against dir.
// With DirNone the direction is not known yet and any accumulating policy applies.
func (info Info) isMultiValueIn(dir Direction) bool {
	switch dir {
	case DirRequest:
		return info.IsMultiValue(false)
	case DirResponse:
		return info.IsMultiValue(true)
	default:
		return info.Multi != MultiNever
	}
}

// knownHeaders lists HTTP and WebSocket handshake headers with their semantics.
var knownHeaders = [...]Info{
	{"Accept", DirRequest, true, MultiAlways},
	{"Accept-Charset", DirRequest, false, MultiAlways},
	{"Accept-Encoding", DirRequest, false, MultiAlways},
	{"Accept-Language", DirRequest, false, MultiAlways},
	{"Accept-Ranges", DirResponse, false, MultiAlways},
	{"Age", DirResponse, false, MultiNever},
	{"Allow", DirBoth, false, MultiAlways},
	{"Authorization", DirRequest, false, MultiAlways},
	{"Cache-Control", DirBoth, false, MultiAlways},
	{"Connection", DirBoth, true, MultiAlways},
	{"Content-Encoding", DirBoth, false, MultiAlways},
	{"Content-Language", DirBoth, false, MultiAlways},
	{"Content-Length", DirBoth, true, MultiNever},
	{"Content-Location", DirBoth, false, MultiNever},
	{"Content-MD5", DirBoth, false, MultiNever},
	{"Content-Range", DirBoth, false, MultiNever},
	{"Content-Type", DirBoth, true, MultiNever},
	{"Cookie", DirRequest, false, MultiNever},
	{"Cookie2", DirRequest, false, MultiNever},
	{"Date", DirBoth, true, MultiNever},
	{"Expect", DirRequest, true, MultiAlways},
	{"Expires", DirBoth, false, MultiNever},
	{"ETag", DirResponse, false, MultiNever},
	{"From", DirRequest, false, MultiNever},
	{"Host", DirRequest, true, MultiNever},
	{"If-Match", DirRequest, false, MultiAlways},
	{"If-Modified-Since", DirRequest, true, MultiNever},
	{"If-None-Match", DirRequest, false, MultiAlways},
	{"If-Range", DirRequest, false, MultiNever},
	{"If-Unmodified-Since", DirRequest, false, MultiNever},
	{"Keep-Alive", DirBoth, false, MultiAlways},
	{"Last-Modified", DirBoth, false, MultiNever},
	{"Location", DirResponse, false, MultiNever},
	{"Max-Forwards", DirRequest, false, MultiNever},
	{"Pragma", DirBoth, false, MultiNever},
	{"Proxy-Connection", DirBoth, true, MultiNever},
	{"Proxy-Authenticate", DirResponse, false, MultiAlways},
	{"Proxy-Authorization", DirRequest, false, MultiNever},
	{"Public", DirResponse, false, MultiAlways},
	{"Range", DirRequest, true, MultiAlways},
	{"Referer", DirRequest, true, MultiNever},
	{"Retry-After", DirResponse, false, MultiNever},
	{"Sec-WebSocket-Accept", DirResponse, true, MultiNever},
	{"Sec-WebSocket-Extensions", DirBoth, true, MultiInRequest},
	{"Sec-WebSocket-Key", DirRequest, true, MultiNever},
	{"Sec-WebSocket-Protocol", DirBoth, false, MultiInRequest},
	{"Sec-WebSocket-Version", DirBoth, true, MultiInResponse},
	{"Server", DirResponse, false, MultiNever},
	{"Set-Cookie", DirResponse, false, MultiAlways},
	{"Set-Cookie2", DirResponse, false, MultiAlways},
	{"TE", DirRequest, false, MultiNever},
	{"Trailer", DirBoth, false, MultiNever},
	{"Transfer-Encoding", DirBoth, true, MultiAlways},
	{"Translate", DirRequest, false, MultiNever},
	{"Upgrade", DirBoth, false, MultiAlways},
	{"User-Agent", DirRequest, true, MultiNever},
	{"Vary", DirResponse, false, MultiAlways},
	{"Via", DirBoth, false, MultiAlways},
	{"Warning", DirBoth, false, MultiAlways},
	{"WWW-Authenticate", DirResponse, true, MultiAlways},
}

var registry = func() map[string]Info {
	m := make(map[string]Info, len(knownHeaders))
	for _, info := range knownHeaders {
		m[util.LCase(string(info.Name))] = info
	}
	return m
}()

// Lookup returns the registry entry of a well-known header.
// The name is matched case-insensitively against canonical names.
func Lookup(name string) (Info, bool) {
	info, ok := registry[util.LCase(util.TrimSP(name))]
	return info, ok
}

// Resolve returns the registry entry of the header or,
// for custom headers, an entry that allows both directions, is unrestricted and single-valued.
func Resolve(name string) Info {
	if info, ok := Lookup(name); ok {
		return info
	}
	return Info{
		Name:  Name(util.TrimSP(name)),
		Dirs:  DirBoth,
		Multi: MultiNever,
	}
}

// IsRestricted reports whether the header is restricted.
func IsRestricted(name string) bool {
	info, ok := Lookup(name)
	return ok && info.Restricted
}

// Known returns all registered headers in registry order.
func Known() []Info {
	infos := make([]Info, len(knownHeaders))
	copy(infos, knownHeaders[:])
	return infos
}
