package header

import (
	"braces.dev/errtrace"
	"github.com/vmihailenco/msgpack"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/types"
)

// Entry is a single header name/value pair.
type Entry = types.Entry

// Snapshot is a serializable state of a [Collection].
//
// It is encoded to JSON with the standard encoding/json package:
//
//	{"trusted":true,"state":"request","entries":[{"name":"Host","value":"example.com"}]}
//
// and to msgpack with [Snapshot.MarshalBinary].
type Snapshot struct {
	Trusted bool      `json:"trusted"`
	State   LockState `json:"state"`
	Entries []Entry   `json:"entries"`
}

// Export returns a snapshot of the collection.
func (c *Collection) Export() Snapshot {
	return Snapshot{
		Trusted: c.trusted,
		State:   c.State(),
		Entries: c.entries.Clone(),
	}
}

// Import creates a collection from the snapshot.
// Entries are restored as is, in the same order.
func Import(s Snapshot, opts ...Option) (*Collection, error) {
	if !s.State.IsValid() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidSnapshot, "unknown lock state %d", int(s.State)))
	}
	for i, e := range s.Entries {
		if e.Name == "" {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidSnapshot, "entry %d has empty name", i))
		}
	}
	return newCollection(s.Trusted, s.State, types.Entries(s.Entries).Clone(), opts...), nil
}

type snapshotData struct {
	Trusted bool    `msgpack:"trusted"`
	State   string  `msgpack:"state"`
	Entries []Entry `msgpack:"entries"`
}

// MarshalBinary encodes the snapshot with msgpack.
func (s Snapshot) MarshalBinary() ([]byte, error) {
	state, err := s.State.MarshalText()
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidSnapshot, err))
	}
	return errtrace.Wrap2(msgpack.Marshal(&snapshotData{
		Trusted: s.Trusted,
		State:   string(state),
		Entries: s.Entries,
	}))
}

// UnmarshalBinary decodes the msgpack encoded snapshot.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	var sd snapshotData
	if err := msgpack.Unmarshal(data, &sd); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidSnapshot, err))
	}

	var state LockState
	if err := state.UnmarshalText([]byte(sd.State)); err != nil {
		return errtrace.Wrap(err)
	}
	*s = Snapshot{
		Trusted: sd.Trusted,
		State:   state,
		Entries: sd.Entries,
	}
	return nil
}
