// Package device bridges vibrations, taptic pulses, haptic feedback and
// system sounds to a companion device, over a websocket or a serial line.
//
// Every command carries an id and is completed when the device answers with
// a "done" or "error" message for that id. When the connection drops, all
// outstanding commands complete with ErrDisconnected so callers waiting on
// them never stall.
package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/koscakluka/piano/core/notes"
)

var ErrDisconnected = errors.New("device disconnected")

type CommandType string

const (
	CommandVibrate     CommandType = "vibrate"
	CommandSystemSound CommandType = "system_sound"
	CommandHaptic      CommandType = "haptic"
	CommandPrepare     CommandType = "prepare"
	CommandRelease     CommandType = "release"
)

// Command is the message sent to the device.
type Command struct {
	ID       string      `json:"id"`
	Type     CommandType `json:"type"`
	Code     uint32      `json:"code,omitempty"`
	Feedback string      `json:"feedback,omitempty"`
}

// Reply is the message the device answers a Command with.
type Reply struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`
}

const (
	replyDone  = "done"
	replyError = "error"
)

// transport carries one JSON message per frame.
type transport interface {
	WriteMessage(msg []byte) error
	ReadMessage() ([]byte, error)
	Close() error
}

type Client struct {
	conn    transport
	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]func(error)
	closed  bool

	done chan struct{}
}

// Connect opens the device described by rawURL: ws:// and wss:// URLs are
// dialed as websockets, serial:///dev/ttyUSB0?baud=115200 opens a serial
// port.
func Connect(ctx context.Context, rawURL string) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid device url %q: %w", rawURL, err)
	}

	switch parsed.Scheme {
	case "ws", "wss":
		return Dial(ctx, rawURL, nil)
	case "serial":
		baudRate := defaultBaudRate
		if baud := parsed.Query().Get("baud"); baud != "" {
			if baudRate, err = strconv.Atoi(baud); err != nil {
				return nil, fmt.Errorf("invalid baud rate %q: %w", baud, err)
			}
		}
		return OpenSerial(parsed.Path, baudRate)
	default:
		return nil, fmt.Errorf("unsupported device url scheme %q", parsed.Scheme)
	}
}

// Dial connects to the device at url over a websocket.
func Dial(ctx context.Context, url string, header http.Header) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to device: %w", err)
	}

	return NewClient(conn), nil
}

// NewClient takes ownership of an open websocket connection.
func NewClient(conn *websocket.Conn) *Client {
	return newClient(wsTransport{conn: conn})
}

func newClient(conn transport) *Client {
	c := &Client{
		conn:    conn,
		pending: map[string]func(error){},
		done:    make(chan struct{}),
	}
	go c.processIncomingMessages()
	return c
}

// Vibrate plays a standard vibration or taptic pulse.
func (c *Client) Vibrate(id notes.SystemSoundID, done func(error)) {
	c.send(Command{Type: CommandVibrate, Code: uint32(id)}, done)
}

// PlaySystemSound plays a predefined system sound.
func (c *Client) PlaySystemSound(id notes.SystemSoundID, done func(error)) {
	c.send(Command{Type: CommandSystemSound, Code: uint32(id)}, done)
}

func (c *Client) Haptic(kind notes.FeedbackKind, done func(error)) {
	c.send(Command{Type: CommandHaptic, Feedback: kind.String()}, done)
}

// Prepare asks the device to warm its haptic generators.
func (c *Client) Prepare(done func(error)) {
	c.send(Command{Type: CommandPrepare}, done)
}

// Release lets the device put its haptic generators to sleep.
func (c *Client) Release(done func(error)) {
	c.send(Command{Type: CommandRelease}, done)
}

func (c *Client) Close() error {
	c.writeMu.Lock()
	err := c.conn.Close()
	c.writeMu.Unlock()

	<-c.done
	return err
}

// Done is closed once the connection is gone.
func (c *Client) Done() <-chan struct{} { return c.done }

func (c *Client) send(command Command, done func(error)) {
	if done == nil {
		done = func(error) {}
	}
	command.ID = uuid.NewString()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		done(ErrDisconnected)
		return
	}
	c.pending[command.ID] = done
	c.mu.Unlock()

	msg, err := json.Marshal(command)
	if err == nil {
		c.writeMu.Lock()
		err = c.conn.WriteMessage(msg)
		c.writeMu.Unlock()
	}
	if err != nil {
		if callback := c.take(command.ID); callback != nil {
			callback(fmt.Errorf("failed to send %s command: %w", command.Type, err))
		}
	}
}

func (c *Client) take(id string) func(error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	callback, ok := c.pending[id]
	if !ok {
		return nil
	}
	delete(c.pending, id)
	return callback
}

func (c *Client) processIncomingMessages() {
	defer close(c.done)

	for {
		msg, err := c.conn.ReadMessage()
		if err != nil {
			if !isClosed(err) {
				logger.Warn("device read error", "error", err)
			}
			c.failPending()
			return
		}

		var reply Reply
		if err := json.Unmarshal(msg, &reply); err != nil {
			logger.Warn("failed to parse device reply", "error", err)
			continue
		}

		callback := c.take(reply.ID)
		if callback == nil {
			logger.Debug("device reply for unknown command", "id", reply.ID, "type", reply.Type)
			continue
		}

		switch reply.Type {
		case replyDone:
			callback(nil)
		case replyError:
			callback(fmt.Errorf("device: %s", reply.Error))
		default:
			callback(fmt.Errorf("device: unexpected reply type %q", reply.Type))
		}
	}
}

func (c *Client) failPending() {
	c.mu.Lock()
	c.closed = true
	pending := c.pending
	c.pending = map[string]func(error){}
	c.mu.Unlock()

	for _, callback := range pending {
		callback(ErrDisconnected)
	}
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, net.ErrClosed) ||
		websocket.IsCloseError(err, websocket.CloseNormalClosure)
}

type wsTransport struct {
	conn *websocket.Conn
}

func (t wsTransport) WriteMessage(msg []byte) error {
	return t.conn.WriteMessage(websocket.TextMessage, msg)
}

// ReadMessage skips binary frames.
func (t wsTransport) ReadMessage() ([]byte, error) {
	for {
		msgType, msg, err := t.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if msgType == websocket.TextMessage {
			return msg, nil
		}
	}
}

func (t wsTransport) Close() error {
	_ = t.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return t.conn.Close()
}
