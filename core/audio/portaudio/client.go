package portaudio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/koscakluka/piano/core/audio"
)

// Client plays mono PCM through the default PortAudio output device.
//
// Writes are blocking in PortAudio, so a worker goroutine drains the queued
// audio one buffer at a time and runs marks once the audio before them has
// been written.
type Client struct {
	bufferSize int
	sampleRate int
	stream     *portaudio.Stream
	out        []int16

	mu            sync.Mutex
	leftoverAudio []byte
	marks         []playbackMark

	updateSignal chan struct{}
	closeCh      chan struct{}
	done         chan struct{}
	closeOnce    sync.Once
}

type playbackMark struct {
	name     string
	position int
	callback func(string)
}

func NewClient(bufferSize int) (*Client, error) {
	if bufferSize <= 0 {
		return nil, fmt.Errorf("buffer size must be positive, got %d", bufferSize)
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}

	out := make([]int16, bufferSize)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(audio.DefaultSampleRate), bufferSize, out)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("failed to open PortAudio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("failed to start PortAudio stream: %w", err)
	}

	c := &Client{
		bufferSize:   bufferSize,
		sampleRate:   audio.DefaultSampleRate,
		stream:       stream,
		out:          out,
		updateSignal: make(chan struct{}, 1),
		closeCh:      make(chan struct{}),
		done:         make(chan struct{}),
	}
	go c.writeLoop()

	return c, nil
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closeCh)
		<-c.done
		_ = c.stream.Stop()
		_ = c.stream.Close()
		_ = portaudio.Terminate()
	})
}

func (c *Client) SendAudio(audio []byte) error {
	c.mu.Lock()
	c.leftoverAudio = append(c.leftoverAudio, audio...)
	c.mu.Unlock()
	c.signalUpdate()
	return nil
}

func (c *Client) ClearBuffer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leftoverAudio = make([]byte, 0)
	c.marks = nil
}

// Mark registers callback to run once everything sent so far has been
// written to the device.
func (c *Client) Mark(mark string, callback func(string)) error {
	c.mu.Lock()
	c.marks = append(c.marks, playbackMark{name: mark, position: len(c.leftoverAudio), callback: callback})
	c.mu.Unlock()
	c.signalUpdate()
	return nil
}

func (c *Client) EncodingInfo() audio.EncodingInfo {
	return audio.EncodingInfo{
		SampleRate: c.sampleRate,
		Format:     audio.EncodingLinear16,
	}
}

func (c *Client) writeLoop() {
	defer close(c.done)

	bufferBytes := c.bufferSize * 2
	for {
		chunk, reached := c.nextChunk(bufferBytes)
		if chunk != nil {
			c.write(chunk)
		}
		for _, mark := range reached {
			mark.callback(mark.name)
		}

		if chunk == nil && len(reached) == 0 {
			select {
			case <-c.closeCh:
				return
			case <-c.updateSignal:
				continue
			}
		}

		select {
		case <-c.closeCh:
			return
		default:
		}
	}
}

func (c *Client) write(chunk []byte) {
	clear(c.out)
	if err := binary.Read(bytes.NewReader(chunk), binary.LittleEndian, c.out[:len(chunk)/2]); err != nil {
		logger.Warn("failed to convert audio chunk", "error", err)
		return
	}
	if err := c.stream.Write(); err != nil {
		logger.Warn("failed to write to PortAudio stream", "error", err)
	}
}

// nextChunk takes up to size bytes of queued audio and returns the marks
// that are reached once that chunk has been written. A nil chunk means
// nothing is queued.
func (c *Client) nextChunk(size int) ([]byte, []playbackMark) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := min(size, len(c.leftoverAudio)) &^ 1
	var chunk []byte
	if n > 0 {
		chunk = make([]byte, n)
		copy(chunk, c.leftoverAudio[:n])
		c.leftoverAudio = c.leftoverAudio[n:]
	} else if len(c.leftoverAudio) == 1 {
		// A dangling odd byte can never form a sample.
		c.leftoverAudio = c.leftoverAudio[:0]
	}

	passed := 0
	for passed < len(c.marks) && c.marks[passed].position <= n {
		passed++
	}
	reached := c.marks[:passed:passed]
	c.marks = c.marks[passed:]
	for i := range c.marks {
		c.marks[i].position = max(0, c.marks[i].position-n)
	}
	return chunk, reached
}

func (c *Client) signalUpdate() {
	select {
	case c.updateSignal <- struct{}{}:
	default:
	}
}
