package miniaudio

import "sync"

type playbackMark struct {
	name     string
	position int
	callback func(string)
}

// pendingAudio is the audio queued for the device plus the marks that fall
// inside it. Mark positions are byte offsets into audio.
type pendingAudio struct {
	mu      sync.Mutex
	audio   []byte
	marks   []playbackMark
	silence byte
}

func (p *pendingAudio) Append(audio []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.audio = append(p.audio, audio...)
}

func (p *pendingAudio) Mark(name string, callback func(string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.marks = append(p.marks, playbackMark{
		name:     name,
		position: len(p.audio),
		callback: callback,
	})
}

func (p *pendingAudio) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.audio = nil
	p.marks = nil
}

// Consume fills out with queued audio, padding with silence, and returns the
// marks whose position was reached.
func (p *pendingAudio) Consume(out []byte) []playbackMark {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := copy(out, p.audio)
	for i := n; i < len(out); i++ {
		out[i] = p.silence
	}
	p.audio = p.audio[n:]
	if len(p.audio) == 0 {
		p.audio = nil
	}

	passed := 0
	for passed < len(p.marks) && p.marks[passed].position <= n {
		passed++
	}
	reached := p.marks[:passed:passed]
	p.marks = p.marks[passed:]
	for i := range p.marks {
		p.marks[i].position -= n
	}
	return reached
}
