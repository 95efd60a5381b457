package header_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/header"
)

func TestRead(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		response bool
		wantStr  string
		wantErr  error
	}{
		{
			name:    "empty",
			input:   "",
			wantStr: "",
		},
		{
			name: "request handshake",
			input: "Host: server.example.com\r\n" +
				"Upgrade: websocket\r\n" +
				"Connection: Upgrade\r\n" +
				"Sec-WebSocket-Key: dGhlIHNhbXBsZSBub25jZQ==\r\n" +
				"Sec-WebSocket-Protocol: chat\r\n" +
				"Sec-WebSocket-Protocol: superchat\r\n" +
				"Sec-WebSocket-Version: 13\r\n" +
				"\r\n" +
				"body: ignored\r\n",
			wantStr: "Host: server.example.com\r\n" +
				"Upgrade: websocket\r\n" +
				"Connection: Upgrade\r\n" +
				"Sec-WebSocket-Key: dGhlIHNhbXBsZSBub25jZQ==\r\n" +
				"Sec-WebSocket-Protocol: chat\r\n" +
				"Sec-WebSocket-Protocol: superchat\r\n" +
				"Sec-WebSocket-Version: 13\r\n",
		},
		{
			name:     "response handshake",
			response: true,
			input: "Upgrade: websocket\n" +
				"Connection: Upgrade\n" +
				"Sec-WebSocket-Accept: s3pPLMBiTxaQ9kYGzzhZRbK+xOo=\n" +
				"Sec-WebSocket-Protocol: chat\n" +
				"Sec-WebSocket-Protocol: superchat\n",
			wantStr: "Upgrade: websocket\r\n" +
				"Connection: Upgrade\r\n" +
				"Sec-WebSocket-Accept: s3pPLMBiTxaQ9kYGzzhZRbK+xOo=\r\n" +
				"Sec-WebSocket-Protocol: superchat\r\n",
		},
		{
			name: "folded line",
			input: "X-Folded: a\r\n" +
				" b\r\n" +
				"\tc\r\n" +
				"Host: example.com\r\n",
			wantStr: "X-Folded: a b c\r\n" +
				"Host: example.com\r\n",
		},
		{
			name:    "missing colon",
			input:   "Host: example.com\r\nbroken line\r\n",
			wantErr: header.ErrMissingColon,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdrs, err := header.Read(strings.NewReader(c.input), c.response)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("header.Read(input, %v) error = %v, want %v\ndiff (-got +want):\n%v", c.response, err, c.wantErr, diff)
			}
			if c.wantErr != nil {
				if hdrs != nil {
					t.Errorf("header.Read(input, %v) = %v, want nil", c.response, hdrs)
				}
				return
			}
			if !hdrs.Trusted() {
				t.Errorf("hdrs.Trusted() = false, want true")
			}
			if got := hdrs.State(); got != header.Unspecified {
				t.Errorf("hdrs.State() = %v, want %v", got, header.Unspecified)
			}
			if got := hdrs.String(); got != c.wantStr {
				t.Errorf("hdrs.String() = %q, want %q", got, c.wantStr)
			}
		})
	}
}

func TestRead_LineNumber(t *testing.T) {
	t.Parallel()

	_, err := header.Read(strings.NewReader("Host: a\r\nUpgrade: b\r\nbad\r\n"), false)
	if !errors.Is(err, header.ErrMissingColon) {
		t.Fatalf("header.Read() error = %v, want %v", err, header.ErrMissingColon)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("header.Read() error = %q, want it to mention line 3", err)
	}
}

func TestRead_MaxValueLen(t *testing.T) {
	t.Parallel()

	wide := strings.Repeat("\U0001F600", header.MaxValueLen)
	half := header.MaxValueLen / 2

	cases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "multi-byte value",
			input: "X-A: " + wide + "\r\n\r\n",
			want:  wide,
		},
		{
			name:  "ascii value",
			input: "X-A: " + strings.Repeat("a", header.MaxValueLen) + "\r\n",
			want:  strings.Repeat("a", header.MaxValueLen),
		},
		{
			name:  "folded value",
			input: "X-A: " + wide[:4*half] + "\r\n " + wide[:4*(header.MaxValueLen-half-1)] + "\r\n",
			want:  wide[:4*half] + " " + wide[:4*(header.MaxValueLen-half-1)],
		},
		{
			name:    "too long",
			input:   "X-A: " + wide + "a\r\n",
			wantErr: header.ErrValueTooLong,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdrs, err := header.Read(strings.NewReader(c.input), false)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("header.Read(input, false) error = %v, want %v", err, c.wantErr)
			}
			if c.wantErr != nil {
				if !strings.Contains(err.Error(), "line 1") {
					t.Errorf("header.Read(input, false) error = %q, want it to mention line 1", err)
				}
				return
			}
			if got, _ := hdrs.Get("X-A"); got != c.want {
				t.Errorf("hdrs.Get(X-A) returned %d chars, want %d", len([]rune(got)), len([]rune(c.want)))
			}
		})
	}
}
