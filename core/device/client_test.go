package device

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/koscakluka/piano/core/notes"
)

// fakeDevice answers every command through reply and records what it got.
func fakeDevice(t *testing.T, reply func(Command) *Reply) (*httptest.Server, chan Command) {
	t.Helper()

	received := make(chan Command, 16)
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			var command Command
			if err := conn.ReadJSON(&command); err != nil {
				return
			}
			received <- command

			response := reply(command)
			if response == nil {
				return
			}
			if err := conn.WriteJSON(response); err != nil {
				return
			}
		}
	}))
	return server, received
}

func dialFake(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	client, err := Dial(context.Background(), "ws"+strings.TrimPrefix(server.URL, "http"), nil)
	if err != nil {
		t.Fatalf("failed to dial fake device: %v", err)
	}
	return client
}

func awaitResult(t *testing.T, results <-chan error) error {
	t.Helper()

	select {
	case err := <-results:
		return err
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for command completion")
		return nil
	}
}

func TestClientCompletesCommandsOnDone(t *testing.T) {
	server, received := fakeDevice(t, func(command Command) *Reply {
		return &Reply{ID: command.ID, Type: replyDone}
	})
	defer server.Close()

	client := dialFake(t, server)
	defer client.Close()

	results := make(chan error, 1)
	client.Vibrate(notes.Pop.ID(), func(err error) { results <- err })

	if err := awaitResult(t, results); err != nil {
		t.Fatalf("expected command to succeed, got %v", err)
	}

	command := <-received
	if command.Type != CommandVibrate || command.Code != uint32(notes.Pop) || command.ID == "" {
		t.Fatalf("unexpected command %+v", command)
	}
}

func TestClientReportsDeviceErrors(t *testing.T) {
	server, _ := fakeDevice(t, func(command Command) *Reply {
		return &Reply{ID: command.ID, Type: replyError, Error: "no haptic engine"}
	})
	defer server.Close()

	client := dialFake(t, server)
	defer client.Close()

	results := make(chan error, 1)
	client.Haptic(notes.ImpactLight, func(err error) { results <- err })

	err := awaitResult(t, results)
	if err == nil || !strings.Contains(err.Error(), "no haptic engine") {
		t.Fatalf("expected device error, got %v", err)
	}
}

func TestClientFailsPendingCommandsOnDisconnect(t *testing.T) {
	server, _ := fakeDevice(t, func(Command) *Reply { return nil })
	defer server.Close()

	client := dialFake(t, server)
	defer client.Close()

	results := make(chan error, 1)
	client.Prepare(func(err error) { results <- err })

	if err := awaitResult(t, results); !errors.Is(err, ErrDisconnected) {
		t.Fatalf("expected ErrDisconnected, got %v", err)
	}

	<-client.Done()
	client.Release(func(err error) { results <- err })
	if err := awaitResult(t, results); !errors.Is(err, ErrDisconnected) {
		t.Fatalf("expected commands after disconnect to fail, got %v", err)
	}
}
