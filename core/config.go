package piano

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/koscakluka/piano/core/audio"
	"github.com/koscakluka/piano/core/device"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var _ HapticDevice = (*device.Client)(nil)

// Config controls how the default renderer finds sounds and reaches the
// haptic device.
type Config struct {
	AssetDirs        []string      `env:"PIANO_ASSET_DIRS"          envSeparator:","`
	HTTPTimeout      time.Duration `env:"PIANO_HTTP_TIMEOUT"        envDefault:"10s"`
	MaxResourceBytes int64         `env:"PIANO_MAX_RESOURCE_BYTES"  envDefault:"33554432"`
	DeviceURL        string        `env:"PIANO_DEVICE_URL"`
}

const (
	defaultHTTPTimeout      = 10 * time.Second
	defaultMaxResourceBytes = 32 << 20
)

// LoadConfigFromEnv returns renderer configuration with defaults.
func LoadConfigFromEnv() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		logger.Warn("failed to parse piano configuration, using defaults", "error", err)
		return Config{
			AssetDirs:        []string{"."},
			HTTPTimeout:      defaultHTTPTimeout,
			MaxResourceBytes: defaultMaxResourceBytes,
		}
	}
	if len(cfg.AssetDirs) == 0 {
		cfg.AssetDirs = []string{"."}
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.MaxResourceBytes <= 0 {
		cfg.MaxResourceBytes = defaultMaxResourceBytes
	}
	return cfg
}

// NewLocator builds the source locator described by the configuration.
func (c Config) NewLocator() *audio.Locator {
	return audio.NewLocator(
		audio.WithAssetDirs(c.AssetDirs...),
		audio.WithHTTPClient(&http.Client{
			Timeout:   c.HTTPTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
		audio.WithMaxBytes(c.MaxResourceBytes),
	)
}

// NewRendererFromConfig builds a DefaultRenderer from the configuration. When
// a device URL is configured the device is connected and closed together
// with the renderer. opts are applied after the configuration.
func NewRendererFromConfig(ctx context.Context, cfg Config, opts ...RendererOption) (*DefaultRenderer, error) {
	configured := []RendererOption{WithLocator(cfg.NewLocator())}

	var client *device.Client
	if cfg.DeviceURL != "" {
		var err error
		if client, err = device.Connect(ctx, cfg.DeviceURL); err != nil {
			return nil, fmt.Errorf("failed to connect to haptic device: %w", err)
		}
		configured = append(configured, WithHapticDevice(client))
	}

	r := NewRenderer(append(configured, opts...)...)
	r.ownDevice = client
	return r, nil
}
