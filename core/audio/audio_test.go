package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/koscakluka/piano/core/notes"
)

func TestEncodingInfoDuration(t *testing.T) {
	info := EncodingInfo{SampleRate: 10, Format: EncodingLinear16}

	if got := info.Duration(make([]byte, 20)); got != time.Second {
		t.Fatalf("expected 1s, got %s", got)
	}
	if got := (EncodingInfo{}).Duration(make([]byte, 20)); got != 0 {
		t.Fatalf("expected zero encoding to report 0, got %s", got)
	}
}

func TestErrorsWrapSentinels(t *testing.T) {
	if err := NotFound("chime"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected %v to wrap ErrNotFound", err)
	}

	cause := errors.New("device busy")
	err := RenderFailed("chime", cause)
	if !errors.Is(err, ErrRenderFailed) || !errors.Is(err, cause) {
		t.Fatalf("expected %v to wrap ErrRenderFailed and its cause", err)
	}
}

func TestLocatorFindsFilesThenFallsBackToAssets(t *testing.T) {
	locator := NewLocator(WithAssetFS(fstest.MapFS{
		"chime.wav": {Data: []byte("wav")},
		"bell.mp3":  {Data: []byte("mp3")},
		"notes.txt": {Data: []byte("txt")},
	}))

	resource, err := locator.Locate(context.Background(), notes.File{FileName: "chime", Type: notes.AudioTypeWAV})
	if err != nil {
		t.Fatalf("expected file to be found, got %v", err)
	}
	if resource.Type != notes.AudioTypeWAV || string(resource.Data) != "wav" {
		t.Fatalf("unexpected resource %+v", resource)
	}

	resource, err = locator.Locate(context.Background(), notes.File{FileName: "bell", Type: notes.AudioTypeAIFF})
	if err != nil {
		t.Fatalf("expected asset fallback to find bell, got %v", err)
	}
	if resource.Type != notes.AudioTypeMP3 {
		t.Fatalf("expected asset fallback to report its real type, got %q", resource.Type)
	}

	resource, err = locator.Locate(context.Background(), notes.Asset{AssetName: "chime"})
	if err != nil || resource.Name != "chime.wav" {
		t.Fatalf("expected asset lookup to find chime.wav, got %+v, %v", resource, err)
	}

	if _, err := locator.Locate(context.Background(), notes.Asset{AssetName: "notes"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected non-audio asset to be not found, got %v", err)
	}
	if _, err := locator.Locate(context.Background(), notes.Asset{AssetName: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected missing asset to be not found, got %v", err)
	}
}

func TestLocatorFetchesURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/chime":
			w.Header().Set("Content-Type", "audio/mpeg")
			_, _ = w.Write([]byte("mp3"))
		case "/broken.wav":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	locator := NewLocator(WithHTTPClient(server.Client()))

	resource, err := locator.Locate(context.Background(), notes.URL{URL: server.URL + "/chime"})
	if err != nil {
		t.Fatalf("expected url to be fetched, got %v", err)
	}
	if resource.Type != notes.AudioTypeMP3 || string(resource.Data) != "mp3" {
		t.Fatalf("unexpected resource %+v", resource)
	}

	if _, err := locator.Locate(context.Background(), notes.URL{URL: server.URL + "/missing.wav"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected 404 to be not found, got %v", err)
	}
	if _, err := locator.Locate(context.Background(), notes.URL{URL: server.URL + "/broken.wav"}); !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("expected 500 to be a render failure, got %v", err)
	}
}

func TestLocatorRejectsOversizedResources(t *testing.T) {
	locator := NewLocator(
		WithAssetFS(fstest.MapFS{"big.wav": {Data: make([]byte, 64)}}),
		WithMaxBytes(16),
	)

	if _, err := locator.Locate(context.Background(), notes.Asset{AssetName: "big"}); !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("expected oversized resource to fail rendering, got %v", err)
	}
}

func TestDecodeWAV(t *testing.T) {
	samples := []int16{0, 1000, -1000, 32767, -32768, 0, 0, 0}
	resource := &Resource{Name: "tone", Data: buildWAV(8000, samples)}

	pcm, err := Decode(resource, EncodingInfo{SampleRate: 8000, Format: EncodingLinear16})
	if err != nil {
		t.Fatalf("expected wav to decode, got %v", err)
	}
	if len(pcm) != len(samples)*2 {
		t.Fatalf("expected %d bytes of pcm, got %d", len(samples)*2, len(pcm))
	}
}

func TestDecodeRejectsUnknownContainers(t *testing.T) {
	_, err := Decode(&Resource{Name: "noise", Data: []byte("not audio")}, GetDefaultEncodingInfo())
	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("expected render failure, got %v", err)
	}
}

func buildWAV(sampleRate int, samples []int16) []byte {
	data := bytes.Buffer{}
	_ = binary.Write(&data, binary.LittleEndian, samples)

	out := bytes.Buffer{}
	out.WriteString("RIFF")
	_ = binary.Write(&out, binary.LittleEndian, uint32(36+data.Len()))
	out.WriteString("WAVE")
	out.WriteString("fmt ")
	_ = binary.Write(&out, binary.LittleEndian, uint32(16))
	_ = binary.Write(&out, binary.LittleEndian, uint16(1))
	_ = binary.Write(&out, binary.LittleEndian, uint16(1))
	_ = binary.Write(&out, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&out, binary.LittleEndian, uint32(sampleRate*2))
	_ = binary.Write(&out, binary.LittleEndian, uint16(2))
	_ = binary.Write(&out, binary.LittleEndian, uint16(16))
	out.WriteString("data")
	_ = binary.Write(&out, binary.LittleEndian, uint32(data.Len()))
	out.Write(data.Bytes())
	return out.Bytes()
}
