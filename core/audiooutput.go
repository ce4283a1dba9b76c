package piano

import (
	"github.com/koscakluka/piano/core/audio"
)

// audioOutput wraps the configured AudioOutput so the renderer can route
// sounds without checking for a missing or typed-nil client at every call.
type audioOutput struct {
	base AudioOutput
}

func newAudioOutput(client AudioOutput) *audioOutput {
	output := audioOutput{}
	output.Set(client)
	return &output
}

// Set replaces the configured output client. Nil and typed-nil clients are
// treated as unconfigured.
func (a *audioOutput) Set(client AudioOutput) {
	if a == nil {
		return
	}

	a.base = nil
	if isNilValue(client) {
		return
	}
	a.base = client
}

func (a *audioOutput) isConfigured() bool {
	return a != nil && a.base != nil
}

// SendAudio forwards pcm to the configured client. Without one, the audio is
// dropped.
func (a *audioOutput) SendAudio(pcm []byte) error {
	if !a.isConfigured() {
		return nil
	}
	return a.base.SendAudio(pcm)
}

// Mark registers callback with the configured client. Without output
// configured, the callback is invoked immediately so the caller keeps
// progressing.
func (a *audioOutput) Mark(mark string, callback func(string)) error {
	if !a.isConfigured() {
		callback(mark)
		return nil
	}
	return a.base.Mark(mark, callback)
}

// Clear flushes buffered output on the configured client.
func (a *audioOutput) Clear() {
	if a.isConfigured() {
		a.base.ClearBuffer()
	}
}

// EncodingInfo returns the output encoding, or the project default when no
// output is configured.
func (a *audioOutput) EncodingInfo() audio.EncodingInfo {
	if a.isConfigured() {
		if info := a.base.EncodingInfo(); !info.IsZero() {
			return info
		}
	}
	return audio.GetDefaultEncodingInfo()
}
