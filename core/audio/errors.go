package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that a named asset, file or URL could not be
	// located.
	ErrNotFound = errors.New("resource not found")
	// ErrRenderFailed reports that playback could not be constructed or
	// started.
	ErrRenderFailed = errors.New("render failed")
)

// NotFound wraps ErrNotFound with the name of the missing resource.
func NotFound(name string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}

// RenderFailed wraps ErrRenderFailed with the name of the resource and the
// underlying cause, if any.
func RenderFailed(name string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrRenderFailed, name)
	}
	return fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, cause)
}
