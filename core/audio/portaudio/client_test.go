package portaudio

import (
	"testing"

	piano "github.com/koscakluka/piano/core"
)

var _ piano.AudioOutput = (*Client)(nil)

func TestNextChunkReachesMarksAtChunkBoundaries(t *testing.T) {
	c := &Client{}
	c.leftoverAudio = make([]byte, 10)
	c.marks = []playbackMark{{name: "first", position: 6}, {name: "second", position: 10}}

	chunk, reached := c.nextChunk(4)
	if len(chunk) != 4 || len(reached) != 0 {
		t.Fatalf("expected 4 byte chunk and no marks, got %d bytes and %d marks", len(chunk), len(reached))
	}

	chunk, reached = c.nextChunk(4)
	if len(chunk) != 4 || len(reached) != 1 || reached[0].name != "first" {
		t.Fatalf("expected the chunk covering byte 6 to reach the first mark, got %d bytes and %v", len(chunk), reached)
	}

	chunk, reached = c.nextChunk(4)
	if len(chunk) != 2 || len(reached) != 1 || reached[0].name != "second" {
		t.Fatalf("expected the final chunk to reach the second mark, got %d bytes and %v", len(chunk), reached)
	}
}

func TestNextChunkDrainsMarksOnEmptyQueue(t *testing.T) {
	c := &Client{}
	c.marks = []playbackMark{{name: "end", position: 0}}

	chunk, reached := c.nextChunk(4)
	if chunk != nil {
		t.Fatalf("expected no chunk, got %d bytes", len(chunk))
	}
	if len(reached) != 1 || reached[0].name != "end" {
		t.Fatalf("expected end mark to be reached, got %v", reached)
	}
}

func TestClearBufferDropsMarks(t *testing.T) {
	c := &Client{}
	c.leftoverAudio = make([]byte, 10)
	c.marks = []playbackMark{{name: "dropped", position: 10}}

	c.ClearBuffer()

	if _, reached := c.nextChunk(20); len(reached) != 0 {
		t.Fatalf("expected cleared marks never to be reached, got %d", len(reached))
	}
}
