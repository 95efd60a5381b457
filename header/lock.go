package header

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

// LockState is the direction lock state of a [Collection].
type LockState int

const (
	// Unspecified means the collection has not stored any direction-specific header yet.
	Unspecified LockState = iota
	// LockedRequest means the collection holds request headers.
	LockedRequest
	// LockedResponse means the collection holds response headers.
	LockedResponse
)

var lockStateNames = [...]string{
	Unspecified:    "unspecified",
	LockedRequest:  "request",
	LockedResponse: "response",
}

func (s LockState) String() string {
	if !s.IsValid() {
		return "unknown"
	}
	return lockStateNames[s]
}

func (s LockState) IsValid() bool { return s >= Unspecified && s <= LockedResponse }

// Direction returns the direction the collection is locked to or [DirNone].
func (s LockState) Direction() Direction {
	switch s {
	case LockedRequest:
		return DirRequest
	case LockedResponse:
		return DirResponse
	default:
		return DirNone
	}
}

func (s LockState) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, errtrace.Wrap(errorutil.Errorf("invalid lock state %d", int(s)))
	}
	return []byte(s.String()), nil
}

func (s *LockState) UnmarshalText(text []byte) error {
	for i, n := range lockStateNames {
		if n == string(text) {
			*s = LockState(i)
			return nil
		}
	}
	return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidSnapshot, "unknown lock state %q", text))
}

type lockTrigger int

const (
	trigRequest lockTrigger = iota
	trigResponse
	trigReset
)

func (t lockTrigger) String() string {
	switch t {
	case trigRequest:
		return "request header"
	case trigResponse:
		return "response header"
	default:
		return "reset"
	}
}

func dirTrigger(dir Direction) (lockTrigger, bool) {
	switch dir {
	case DirRequest:
		return trigRequest, true
	case DirResponse:
		return trigResponse, true
	default:
		return 0, false
	}
}

// dirLock keeps the collection bound to a single message direction.
//
//	Unspecified --request header--> LockedRequest
//	Unspecified --response header--> LockedResponse
//	Locked*     --reset--> Unspecified
//
// A locked state ignores headers of its own direction and refuses the other one.
type dirLock struct {
	state LockState
	fsm   *stateless.StateMachine
}

func newDirLock(state LockState, log *slog.Logger) *dirLock {
	l := &dirLock{state: state}
	l.fsm = stateless.NewStateMachineWithExternalStorage(
		func(context.Context) (stateless.State, error) { return l.state, nil },
		func(_ context.Context, s stateless.State) error {
			l.state = s.(LockState) //nolint:forcetypeassert
			return nil
		},
		stateless.FiringImmediate,
	)
	l.fsm.Configure(Unspecified).
		Permit(trigRequest, LockedRequest).
		Permit(trigResponse, LockedResponse).
		Ignore(trigReset)
	l.fsm.Configure(LockedRequest).
		Ignore(trigRequest).
		Permit(trigReset, Unspecified)
	l.fsm.Configure(LockedResponse).
		Ignore(trigResponse).
		Permit(trigReset, Unspecified)
	l.fsm.OnTransitioned(func(_ context.Context, t stateless.Transition) {
		log.Debug("header collection direction lock changed",
			slog.Any("from", t.Source),
			slog.Any("to", t.Destination),
			slog.Any("trigger", t.Trigger),
		)
	})
	return l
}

// check returns an error if a header of the direction dir can not be stored.
// Headers without a definite direction always pass.
func (l *dirLock) check(dir Direction) error {
	trig, ok := dirTrigger(dir)
	if !ok {
		return nil
	}
	if ok, err := l.fsm.CanFire(trig); err != nil || !ok {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrDirectionConflict,
			"collection already holds %s headers, got %s-only header", l.state, dir))
	}
	return nil
}

// lock binds the collection to the direction dir if it is not bound yet.
func (l *dirLock) lock(dir Direction) error {
	trig, ok := dirTrigger(dir)
	if !ok {
		return nil
	}
	if err := l.fsm.Fire(trig); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrDirectionConflict, err))
	}
	return nil
}

func (l *dirLock) reset() {
	l.fsm.Fire(trigReset) //nolint:errcheck
}
