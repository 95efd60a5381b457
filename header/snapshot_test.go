package header_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/header"
)

func newSnapshotFixtures(t *testing.T) map[string]*header.Collection {
	t.Helper()

	req := header.New(true)
	for _, kv := range [][2]string{
		{"Host", "example.com"},
		{"Upgrade", "websocket"},
		{"Connection", "Upgrade"},
		{"Sec-WebSocket-Protocol", "chat"},
		{"sec-websocket-protocol", "superchat"},
	} {
		if err := req.Add(kv[0], kv[1]); err != nil {
			t.Fatalf("req.Add(%q, %q) error = %v, want nil", kv[0], kv[1], err)
		}
	}

	res := header.New(false)
	for _, kv := range [][2]string{
		{"Server", "srv"},
		{"Set-Cookie", "a=1"},
		{"Set-Cookie", "b=2"},
	} {
		if err := res.Add(kv[0], kv[1]); err != nil {
			t.Fatalf("res.Add(%q, %q) error = %v, want nil", kv[0], kv[1], err)
		}
	}

	ingested := header.New(true)
	ingested.InternalSet("X Odd: raw", false) //nolint:errcheck

	return map[string]*header.Collection{
		"empty":    header.New(false),
		"request":  req,
		"response": res,
		"ingested": ingested,
	}
}

func assertSameCollection(t *testing.T, got, want *header.Collection) {
	t.Helper()

	if got.Trusted() != want.Trusted() {
		t.Errorf("Trusted() = %v, want %v", got.Trusted(), want.Trusted())
	}
	if got.State() != want.State() {
		t.Errorf("State() = %v, want %v", got.State(), want.State())
	}
	if got.String() != want.String() {
		t.Errorf("String() = %q, want %q", got.String(), want.String())
	}
	if diff := cmp.Diff(got.Export(), want.Export(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Export() diff (-got +want):\n%v", diff)
	}
}

func TestCollection_ExportImport(t *testing.T) {
	t.Parallel()

	for name, hdrs := range newSnapshotFixtures(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := header.Import(hdrs.Export())
			if err != nil {
				t.Fatalf("header.Import(snapshot) error = %v, want nil", err)
			}
			assertSameCollection(t, got, hdrs)
		})
	}
}

func TestCollection_ExportImport_KeepsPolicy(t *testing.T) {
	t.Parallel()

	hdrs := header.New(false)
	hdrs.Add("Server", "srv") //nolint:errcheck

	got, err := header.Import(hdrs.Export())
	if err != nil {
		t.Fatalf("header.Import(snapshot) error = %v, want nil", err)
	}
	if err := got.Add("If-Match", "a"); !errors.Is(err, header.ErrDirectionConflict) {
		t.Errorf("imported.Add(\"If-Match\", \"a\") error = %v, want %v", err, header.ErrDirectionConflict)
	}
	if err := got.Add("Content-Length", "1"); !errors.Is(err, header.ErrRestrictedHeader) {
		t.Errorf("imported.Add(\"Content-Length\", \"1\") error = %v, want %v", err, header.ErrRestrictedHeader)
	}
}

func TestSnapshot_JSON(t *testing.T) {
	t.Parallel()

	for name, hdrs := range newSnapshotFixtures(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(hdrs.Export())
			if err != nil {
				t.Fatalf("json.Marshal(snapshot) error = %v, want nil", err)
			}

			var s header.Snapshot
			if err := json.Unmarshal(data, &s); err != nil {
				t.Fatalf("json.Unmarshal(%s) error = %v, want nil", data, err)
			}
			got, err := header.Import(s)
			if err != nil {
				t.Fatalf("header.Import(snapshot) error = %v, want nil", err)
			}
			assertSameCollection(t, got, hdrs)
		})
	}
}

func TestSnapshot_JSONFormat(t *testing.T) {
	t.Parallel()

	hdrs := header.New(true)
	hdrs.Add("Host", "example.com") //nolint:errcheck

	data, err := json.Marshal(hdrs.Export())
	if err != nil {
		t.Fatalf("json.Marshal(snapshot) error = %v, want nil", err)
	}
	want := `{"trusted":true,"state":"request","entries":[{"name":"Host","value":"example.com"}]}`
	if got := string(data); got != want {
		t.Errorf("json.Marshal(snapshot) = %s, want %s", got, want)
	}
}

func TestSnapshot_Binary(t *testing.T) {
	t.Parallel()

	for name, hdrs := range newSnapshotFixtures(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			data, err := hdrs.Export().MarshalBinary()
			if err != nil {
				t.Fatalf("snapshot.MarshalBinary() error = %v, want nil", err)
			}

			var s header.Snapshot
			if err := s.UnmarshalBinary(data); err != nil {
				t.Fatalf("snapshot.UnmarshalBinary(data) error = %v, want nil", err)
			}
			got, err := header.Import(s)
			if err != nil {
				t.Fatalf("header.Import(snapshot) error = %v, want nil", err)
			}
			assertSameCollection(t, got, hdrs)
		})
	}
}

func TestImport_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		snap header.Snapshot
	}{
		{"unknown state", header.Snapshot{State: header.LockState(42)}},
		{"negative state", header.Snapshot{State: header.LockState(-1)}},
		{"empty name", header.Snapshot{Entries: []header.Entry{{Name: "", Value: "v"}}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.Import(c.snap)
			if diff := cmp.Diff(err, header.ErrInvalidSnapshot, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("header.Import(snap) error = %v, want %v\ndiff (-got +want):\n%v", err, header.ErrInvalidSnapshot, diff)
			}
			if got != nil {
				t.Errorf("header.Import(snap) = %v, want nil", got)
			}
		})
	}
}

func TestSnapshot_UnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var s header.Snapshot
	if err := json.Unmarshal([]byte(`{"state":"sideways"}`), &s); err == nil {
		t.Errorf("json.Unmarshal(unknown state) error = nil, want error")
	}
	if err := s.UnmarshalBinary([]byte{0xc1}); err == nil {
		t.Errorf("snapshot.UnmarshalBinary(garbage) error = nil, want error")
	}
}

func TestLockState_Text(t *testing.T) {
	t.Parallel()

	for _, s := range []header.LockState{header.Unspecified, header.LockedRequest, header.LockedResponse} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error = %v, want nil", s, err)
		}
		var got header.LockState
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v, want nil", text, err)
		}
		if got != s {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, s)
		}
	}

	if _, err := header.LockState(7).MarshalText(); err == nil {
		t.Errorf("LockState(7).MarshalText() error = nil, want error")
	}
}
