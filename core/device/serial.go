package device

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"go.bug.st/serial.v1"
)

const defaultBaudRate = 115200

// OpenSerial opens a companion board attached to a serial port. Commands and
// replies are newline-delimited JSON.
func OpenSerial(portName string, baudRate int) (*Client, error) {
	if baudRate <= 0 {
		baudRate = defaultBaudRate
	}

	port, err := serial.Open(portName, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}
	if err := port.ResetInputBuffer(); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to reset serial port %s: %w", portName, err)
	}

	return newClient(newLineTransport(port)), nil
}

// lineTransport frames messages as lines on a byte stream.
type lineTransport struct {
	rwc   io.ReadWriteCloser
	lines *bufio.Scanner
}

func newLineTransport(rwc io.ReadWriteCloser) *lineTransport {
	return &lineTransport{rwc: rwc, lines: bufio.NewScanner(rwc)}
}

func (t *lineTransport) WriteMessage(msg []byte) error {
	_, err := t.rwc.Write(append(bytes.TrimRight(msg, "\n"), '\n'))
	return err
}

// ReadMessage skips blank lines; boards tend to print them on reset.
func (t *lineTransport) ReadMessage() ([]byte, error) {
	for t.lines.Scan() {
		line := bytes.TrimSpace(t.lines.Bytes())
		if len(line) == 0 {
			continue
		}
		return bytes.Clone(line), nil
	}
	if err := t.lines.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (t *lineTransport) Close() error {
	return t.rwc.Close()
}
