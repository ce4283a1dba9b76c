package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
	"github.com/koscakluka/piano/core/notes"
)

const resampleQuality = 4

var errUnsupportedContainer = errors.New("unsupported audio container")

// Decode turns an encoded resource into mono PCM in the given encoding.
//
// WAV and MP3 are supported. When the resource carries no type hint the
// container is sniffed from its header.
func Decode(resource *Resource, encodingInfo EncodingInfo) ([]byte, error) {
	if resource == nil {
		return nil, RenderFailed("<nil>", errors.New("no resource"))
	}
	if encodingInfo.IsZero() {
		encodingInfo = GetDefaultEncodingInfo()
	}
	if encodingInfo.Format != EncodingLinear16 {
		return nil, RenderFailed(resource.Name, fmt.Errorf("unsupported output encoding %q", encodingInfo.Format.Name()))
	}

	streamer, format, err := decodeStreamer(resource)
	if err != nil {
		return nil, RenderFailed(resource.Name, err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if int(format.SampleRate) != encodingInfo.SampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, beep.SampleRate(encodingInfo.SampleRate), streamer)
	}

	pcm, err := encodeLinear16(source)
	if err != nil {
		return nil, RenderFailed(resource.Name, err)
	}
	if streamErr := streamer.Err(); streamErr != nil {
		return nil, RenderFailed(resource.Name, streamErr)
	}
	return pcm, nil
}

func decodeStreamer(resource *Resource) (beep.StreamSeekCloser, beep.Format, error) {
	reader := io.NopCloser(bytes.NewReader(resource.Data))

	switch sniffContainer(resource) {
	case notes.AudioTypeWAV:
		return wav.Decode(reader)
	case notes.AudioTypeMP3:
		return mp3.Decode(reader)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", errUnsupportedContainer, resource.Type)
	}
}

func sniffContainer(resource *Resource) notes.AudioType {
	if container := resource.Type.Container(); container != notes.AudioTypeOther {
		return container
	}

	data := resource.Data
	switch {
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE":
		return notes.AudioTypeWAV
	case len(data) >= 3 && string(data[0:3]) == "ID3":
		return notes.AudioTypeMP3
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		return notes.AudioTypeMP3
	}
	return notes.AudioTypeOther
}

// encodeLinear16 drains the streamer, downmixing to mono signed 16-bit
// little endian samples.
func encodeLinear16(streamer beep.Streamer) ([]byte, error) {
	out := bytes.Buffer{}
	samples := make([][2]float64, 1024)
	frame := make([]byte, 2)
	for {
		n, ok := streamer.Stream(samples)
		for _, sample := range samples[:n] {
			mono := (sample[0] + sample[1]) / 2
			mono = math.Max(-1, math.Min(1, mono))
			binary.LittleEndian.PutUint16(frame, uint16(int16(mono*math.MaxInt16)))
			out.Write(frame)
		}
		if !ok {
			break
		}
	}
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
