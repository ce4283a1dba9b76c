package device

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"

	"github.com/koscakluka/piano/core/notes"
)

// fakeBoard answers newline-delimited commands on conn.
func fakeBoard(t *testing.T, conn net.Conn, reply func(Command) *Reply) <-chan Command {
	t.Helper()

	received := make(chan Command, 16)
	go func() {
		defer conn.Close()

		lines := bufio.NewScanner(conn)
		for lines.Scan() {
			var command Command
			if err := json.Unmarshal(lines.Bytes(), &command); err != nil {
				return
			}
			received <- command

			response := reply(command)
			if response == nil {
				return
			}
			msg, _ := json.Marshal(response)
			// Boards print blank lines now and then.
			if _, err := conn.Write(append([]byte("\n"), append(msg, '\n')...)); err != nil {
				return
			}
		}
	}()
	return received
}

func TestLineTransportRoundTrip(t *testing.T) {
	local, remote := net.Pipe()
	received := fakeBoard(t, remote, func(command Command) *Reply {
		return &Reply{ID: command.ID, Type: replyDone}
	})

	client := newClient(newLineTransport(local))
	defer client.Close()

	results := make(chan error, 1)
	client.Haptic(notes.Selection, func(err error) { results <- err })
	if err := awaitResult(t, results); err != nil {
		t.Fatalf("expected command to succeed, got %v", err)
	}

	command := <-received
	if command.Type != CommandHaptic || command.Feedback != "selection" {
		t.Fatalf("unexpected command %+v", command)
	}
}

func TestLineTransportDisconnectFailsPending(t *testing.T) {
	local, remote := net.Pipe()
	fakeBoard(t, remote, func(Command) *Reply { return nil })

	client := newClient(newLineTransport(local))
	defer client.Close()

	results := make(chan error, 1)
	client.Vibrate(notes.DefaultVibration.ID(), func(err error) { results <- err })
	if err := awaitResult(t, results); !errors.Is(err, ErrDisconnected) {
		t.Fatalf("expected ErrDisconnected, got %v", err)
	}
}

func TestConnectRejectsUnknownURLs(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "unknown scheme", url: "bluetooth://watch"},
		{name: "bad baud rate", url: "serial:///dev/ttyUSB0?baud=fast"},
		{name: "not a url", url: "://"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Connect(context.Background(), test.url); err == nil {
				t.Fatalf("expected %q to be rejected", test.url)
			}
		})
	}
}
