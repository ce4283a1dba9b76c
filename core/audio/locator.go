package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/koscakluka/piano/core/notes"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Resource is located, still encoded audio.
type Resource struct {
	Name string
	// Type is the container hint, AudioTypeOther when unknown.
	Type notes.AudioType
	Data []byte
}

// Locator resolves sound sources to encoded audio.
//
// Assets and files are searched for in the configured directories, in
// order. URLs are fetched over HTTP(S) or read from disk for file:// URLs.
type Locator struct {
	dirs       []fs.FS
	httpClient *http.Client
	maxBytes   int64
}

type LocatorOption func(*Locator)

// WithAssetDirs adds directories on disk to search for assets and files.
func WithAssetDirs(dirs ...string) LocatorOption {
	return func(l *Locator) {
		for _, dir := range dirs {
			if strings.TrimSpace(dir) == "" {
				continue
			}
			l.dirs = append(l.dirs, os.DirFS(dir))
		}
	}
}

// WithAssetFS adds a file system, e.g. an embed.FS, to search for assets and
// files.
func WithAssetFS(fsys fs.FS) LocatorOption {
	return func(l *Locator) {
		if fsys != nil {
			l.dirs = append(l.dirs, fsys)
		}
	}
}

func WithHTTPClient(client *http.Client) LocatorOption {
	return func(l *Locator) {
		if client != nil {
			l.httpClient = client
		}
	}
}

// WithMaxBytes limits how much audio a single resource may contain.
func WithMaxBytes(maxBytes int64) LocatorOption {
	return func(l *Locator) {
		if maxBytes > 0 {
			l.maxBytes = maxBytes
		}
	}
}

const defaultMaxResourceBytes = 32 << 20

func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		maxBytes:   defaultMaxResourceBytes,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate returns the encoded audio for source. Missing resources are
// reported with ErrNotFound, everything else with ErrRenderFailed.
func (l *Locator) Locate(ctx context.Context, source notes.Source) (*Resource, error) {
	switch s := source.(type) {
	case notes.File:
		if resource, err := l.openFile(s.FileName+extension(s.Type), s.Type); err == nil {
			return resource, nil
		} else if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		// Fall back to an asset of the same name, keeping the type hint.
		resource, err := l.openAsset(s.FileName)
		if err != nil {
			return nil, NotFound(s.Name())
		}
		if resource.Type == notes.AudioTypeOther {
			resource.Type = s.Type
		}
		return resource, nil
	case notes.Asset:
		return l.openAsset(s.AssetName)
	case notes.URL:
		return l.fetch(ctx, s)
	case notes.System:
		return nil, RenderFailed(s.Name(), errors.New("system sounds have no audio data"))
	case nil:
		return nil, NotFound("<nil>")
	default:
		return nil, RenderFailed(source.Name(), fmt.Errorf("unsupported source %T", source))
	}
}

func (l *Locator) openFile(name string, audioType notes.AudioType) (*Resource, error) {
	for _, dir := range l.dirs {
		data, err := l.readFS(dir, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, RenderFailed(name, err)
		}
		return &Resource{Name: name, Type: audioType, Data: data}, nil
	}
	return nil, NotFound(name)
}

func (l *Locator) openAsset(name string) (*Resource, error) {
	for _, dir := range l.dirs {
		if data, err := l.readFS(dir, name); err == nil {
			return &Resource{Name: name, Type: notes.ParseAudioType(path.Ext(name)), Data: data}, nil
		}

		matches, err := fs.Glob(dir, escapeGlob(name)+".*")
		if err != nil {
			continue
		}
		for _, match := range matches {
			audioType := notes.ParseAudioType(path.Ext(match))
			if audioType == notes.AudioTypeOther {
				continue
			}
			data, err := l.readFS(dir, match)
			if err != nil {
				return nil, RenderFailed(match, err)
			}
			return &Resource{Name: match, Type: audioType, Data: data}, nil
		}
	}
	return nil, NotFound(name)
}

func (l *Locator) readFS(dir fs.FS, name string) ([]byte, error) {
	file, err := dir.Open(filepath.ToSlash(name))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fs.ErrNotExist
	}
	return l.readLimited(file)
}

func (l *Locator) fetch(ctx context.Context, source notes.URL) (*Resource, error) {
	parsed, err := url.Parse(source.URL)
	if err != nil {
		return nil, NotFound(source.URL)
	}

	switch parsed.Scheme {
	case "file":
		data, err := os.ReadFile(parsed.Path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFound(source.URL)
		} else if err != nil {
			return nil, RenderFailed(source.URL, err)
		}
		return &Resource{Name: source.Name(), Type: notes.ParseAudioType(path.Ext(parsed.Path)), Data: data}, nil
	case "http", "https":
	default:
		return nil, NotFound(source.URL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, RenderFailed(source.URL, err)
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, RenderFailed(source.URL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, NotFound(source.URL)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, RenderFailed(source.URL, fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := l.readLimited(resp.Body)
	if err != nil {
		return nil, RenderFailed(source.URL, err)
	}

	audioType := notes.ParseAudioType(path.Ext(parsed.Path))
	if audioType == notes.AudioTypeOther {
		audioType = audioTypeFromContentType(resp.Header.Get("Content-Type"))
	}
	return &Resource{Name: source.Name(), Type: audioType, Data: data}, nil
}

func (l *Locator) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("resource exceeds %d bytes", l.maxBytes)
	}
	return data, nil
}

func audioTypeFromContentType(contentType string) notes.AudioType {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return notes.AudioTypeOther
	}
	switch mediaType {
	case "audio/wav", "audio/wave", "audio/x-wav", "audio/vnd.wave":
		return notes.AudioTypeWAV
	case "audio/mpeg", "audio/mp3":
		return notes.AudioTypeMP3
	}
	return notes.AudioTypeOther
}

func extension(audioType notes.AudioType) string {
	if audioType == notes.AudioTypeOther {
		return ""
	}
	return "." + string(audioType)
}

func escapeGlob(name string) string {
	replacer := strings.NewReplacer(`*`, `\*`, `?`, `\?`, `[`, `\[`, `\`, `\\`)
	return replacer.Replace(name)
}
