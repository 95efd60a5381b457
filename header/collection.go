package header

import (
	"io"
	"iter"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/ioutil"
	"github.com/ghettovoice/httphdr/internal/log"
	"github.com/ghettovoice/httphdr/internal/types"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Collection is an ordered case-insensitive collection of HTTP message headers.
//
// Every mutation validates the header name and value, refuses restricted headers
// unless the collection is trusted, and keeps the collection bound to a single
// message direction, see [LockState].
//
// A Collection is not safe for concurrent use.
type Collection struct {
	entries types.Entries
	lock    *dirLock
	trusted bool
	log     *slog.Logger
}

// Option configures a [Collection].
type Option func(c *Collection)

// WithLogger sets the collection logger. By default, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *Collection) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates an empty collection.
// Trusted collections are allowed to mutate restricted headers,
// they are meant to be created only by the message layer.
func New(trusted bool, opts ...Option) *Collection {
	return newCollection(trusted, Unspecified, nil, opts...)
}

func newCollection(trusted bool, state LockState, entries types.Entries, opts ...Option) *Collection {
	c := &Collection{
		entries: entries,
		trusted: trusted,
		log:     log.Noop,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lock = newDirLock(state, c.log)
	return c
}

// Trusted reports whether the collection may mutate restricted headers.
func (c *Collection) Trusted() bool { return c.trusted }

// State returns the current direction lock state.
func (c *Collection) State() LockState { return c.lock.state }

// Add adds the header value.
// Values of multi-value headers and custom headers are accumulated,
// values of other well-known headers replace existing ones.
func (c *Collection) Add(name, value string) error {
	name, info, known, err := c.checkMutation("add", name)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if value, err = checkValue(value); err != nil {
		return errtrace.Wrap(err)
	}

	multi := !known || info.isMultiValueIn(c.resolveDir(info))
	if err := c.lock.lock(info.Direction()); err != nil {
		return errtrace.Wrap(err)
	}
	if multi {
		c.entries.Append(name, value)
	} else {
		c.entries.Set(name, value)
	}
	return nil
}

// Set replaces all values of the header with the single value.
func (c *Collection) Set(name, value string) error {
	name, info, _, err := c.checkMutation("set", name)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if value, err = checkValue(value); err != nil {
		return errtrace.Wrap(err)
	}

	if err := c.lock.lock(info.Direction()); err != nil {
		return errtrace.Wrap(err)
	}
	c.entries.Set(name, value)
	return nil
}

// Remove removes all values of the header.
// Removing of a missing header is not an error.
// The direction lock is checked but never changed by Remove.
func (c *Collection) Remove(name string) error {
	name, _, _, err := c.checkMutation("remove", name)
	if err != nil {
		return errtrace.Wrap(err)
	}
	c.entries.Del(name)
	return nil
}

// InternalSet stores a raw "name: value" line received from the wire.
// The name and the value characters are not validated and neither the restricted
// header guard nor the direction lock are engaged.
// Values are accumulated if the header is multi-value in the given direction,
// otherwise they replace existing ones.
func (c *Collection) InternalSet(line string, response bool) error {
	name, value, err := SplitColonSeparated(line)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if name = util.TrimSP(name); name == "" {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidName, "empty name in %q", util.Ellipsis(line, 64)))
	}
	if value, err = NormalizeValue(value); err != nil {
		return errtrace.Wrap(err)
	}

	if info, ok := Lookup(name); ok && info.IsMultiValue(response) {
		c.entries.Append(name, value)
	} else {
		c.entries.Set(name, value)
	}
	c.log.Debug("header ingested",
		slog.String("name", name),
		slog.Any("value", log.StringValue(util.Ellipsis(value, 64))),
		slog.Bool("response", response),
	)
	return nil
}

// Clear removes all headers and resets the direction lock.
func (c *Collection) Clear() {
	c.entries.Clear()
	c.lock.reset()
}

// Values returns values of the header in insertion order or nil if the header is missing.
func (c *Collection) Values(name string) []string {
	vals := c.entries.Values(util.TrimSP(name))
	if len(vals) == 0 {
		return nil
	}
	return vals
}

// Get returns values of the header joined with a comma.
func (c *Collection) Get(name string) (string, bool) {
	vals := c.Values(name)
	if vals == nil {
		return "", false
	}
	return strings.Join(vals, ", "), true
}

// Has checks whether the header is in the collection.
func (c *Collection) Has(name string) bool { return c.entries.Has(util.TrimSP(name)) }

// Len returns the number of stored name/value pairs.
func (c *Collection) Len() int { return len(c.entries) }

// Names returns distinct header names as they were first stored.
func (c *Collection) Names() []string { return c.entries.Names() }

// All returns an iterator over all name/value pairs in insertion order.
func (c *Collection) All() iter.Seq2[string, string] { return c.entries.All() }

// Clone returns a deep copy of the collection.
func (c *Collection) Clone() *Collection {
	if c == nil {
		return nil
	}
	return newCollection(c.trusted, c.State(), c.entries.Clone(), WithLogger(c.log))
}

// String renders headers as "Name: Value\r\n" lines in insertion order.
func (c *Collection) String() string {
	if c == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.WriteTo(sb) //nolint:errcheck
	return sb.String()
}

// WriteTo writes the headers rendered as in [Collection.String] to w.
func (c *Collection) WriteTo(w io.Writer) (int64, error) {
	if c == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for name, value := range c.entries.All() {
		if cw.WriteStrings(name, ": ", value, "\r\n").Err() != nil {
			break
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// LogValue implements [slog.LogValuer].
func (c *Collection) LogValue() slog.Value {
	if c == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.Bool("trusted", c.trusted),
		slog.String("state", c.State().String()),
		slog.Int("len", len(c.entries)),
	)
}

// checkMutation validates the name and applies the direction lock check and
// the restricted header guard.
func (c *Collection) checkMutation(op, name string) (string, Info, bool, error) {
	name, err := checkName(name)
	if err != nil {
		return "", Info{}, false, errtrace.Wrap(err)
	}

	info, known := Lookup(name)
	if !known {
		info = Resolve(name)
	}

	if err := c.lock.check(info.Direction()); err != nil {
		c.log.Warn("header rejected", slog.String("op", op), slog.String("name", name), slog.Any("error", err))
		return "", Info{}, false, errtrace.Wrap(err)
	}
	if !c.trusted && info.Restricted {
		err := errorutil.NewWrapperError(ErrRestrictedHeader,
			"%s must be modified by the message layer", info.Name)
		c.log.Warn("header rejected", slog.String("op", op), slog.String("name", name), slog.Any("error", err))
		return "", Info{}, false, errtrace.Wrap(err)
	}
	return name, info, known, nil
}

// resolveDir returns the direction in which the header is evaluated:
// the header's own direction, otherwise the direction of the lock.
func (c *Collection) resolveDir(info Info) Direction {
	if dir := info.Direction(); dir != DirNone {
		return dir
	}
	return c.State().Direction()
}
