// Package piano plays symphonies: ordered sequences of sounds, vibrations,
// taptic pulses and haptic feedback interleaved with delays and barriers.
//
// A symphony is split into segments at every WaitUntilFinished barrier. The
// notes of a segment are scheduled at cumulative offsets built from the Wait
// notes before them. The last note of a segment gates the next one: only once
// it has finished rendering (or, for a Wait, once its delay has elapsed) is
// the rest of the symphony scheduled. Starting a new symphony supersedes the
// active one; nothing belonging to a superseded symphony runs afterwards.
package piano

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/koscakluka/piano/core/clock"
	"github.com/koscakluka/piano/core/notes"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Piano schedules one symphony at a time on a Renderer.
type Piano struct {
	renderer Renderer
	clock    clock.Clock
	// ownClock is set when the Piano created its clock and has to stop it
	// on Close.
	ownClock *clock.Real
	logger   *slog.Logger

	generation generation
	haptics    hapticSession

	mu     sync.Mutex
	active *symphony

	closeOnce sync.Once
}

// symphony is the state of the symphony currently being played.
type symphony struct {
	id         string
	generation int64
	// pending is the part of the normalized symphony after the barrier that
	// gates the current segment.
	pending    []notes.Note
	segments   int
	timers     []clock.Timer
	completion func()

	ctx  context.Context
	span trace.Span
}

// NewPiano returns an idle Piano. Without WithRenderer notes are silent.
func NewPiano(opts ...PianoOption) *Piano {
	p := &Piano{
		renderer: silentRenderer{},
		logger:   logger,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.clock == nil {
		p.ownClock = clock.NewReal()
		p.clock = p.ownClock
	}
	p.haptics.renderer = p.renderer

	return p
}

// Play starts sequence, superseding whatever is playing. It does not block.
//
// completion, which may be nil, runs exactly once when the symphony has
// finished. When the sequence normalizes to nothing, completion runs before
// Play returns. It never runs for a symphony that was superseded or
// cancelled.
func (p *Piano) Play(sequence []notes.Note, completion func()) {
	if p == nil {
		return
	}

	normalized := notes.Normalize(sequence)

	p.mu.Lock()
	previous := p.detachLocked()
	gen := p.generation.Bump()
	var current *symphony
	if len(normalized) > 0 {
		current = p.newSymphony(gen, normalized, completion)
		p.active = current
	}
	p.mu.Unlock()

	p.stopped(previous, "superseded")

	if current == nil {
		if completion != nil {
			completion()
		}
		return
	}

	symphoniesStarted.Add(current.ctx, 1)
	p.startSegment(current, normalized)
}

// Cancel stops the active symphony without running its completion. It is a
// no-op when nothing is playing.
func (p *Piano) Cancel() {
	if p == nil {
		return
	}

	p.mu.Lock()
	previous := p.detachLocked()
	p.mu.Unlock()

	p.stopped(previous, "cancelled")
}

// Playing reports whether a symphony is active.
func (p *Piano) Playing() bool {
	if p == nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active != nil
}

// Generation returns the generation of the most recent Play.
func (p *Piano) Generation() int64 {
	if p == nil {
		return 0
	}
	return p.generation.Current()
}

// Close cancels the active symphony and stops the clock the Piano created.
func (p *Piano) Close() {
	if p == nil {
		return
	}

	p.closeOnce.Do(func() {
		p.Cancel()
		if p.ownClock != nil {
			p.ownClock.Stop()
			p.ownClock.AwaitDone()
		}
	})
}

func (p *Piano) newSymphony(gen int64, normalized []notes.Note, completion func()) *symphony {
	s := &symphony{
		id:         uuid.NewString(),
		generation: gen,
		completion: completion,
	}
	if notes.ContainsHapticFeedback(normalized) {
		s.completion = p.haptics.wrap(gen, completion)
	}

	s.ctx, s.span = tracer.Start(context.Background(), "play symphony",
		trace.WithAttributes(
			attribute.String("symphony.id", s.id),
			attribute.Int64("symphony.generation", gen),
			attribute.Int("symphony.notes", len(normalized)),
			attribute.Int("symphony.segments", len(notes.Segments(normalized))),
		),
	)
	return s
}

// detachLocked stops every timer of the active symphony and clears the slot.
func (p *Piano) detachLocked() *symphony {
	s := p.active
	if s == nil {
		return nil
	}

	for _, timer := range s.timers {
		timer.Stop()
	}
	s.timers = nil
	p.active = nil
	return s
}

// stopped releases what a detached symphony held on the renderer.
func (p *Piano) stopped(s *symphony, reason string) {
	if s == nil {
		return
	}

	if clearer, ok := p.renderer.(RendererWithClear); ok {
		clearer.Clear()
	}
	p.haptics.release(s.generation)

	symphoniesSuperseded.Add(s.ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	s.span.AddEvent(reason)
	s.span.End()
	p.logger.Debug("symphony stopped", "symphony", s.id, "generation", s.generation, "reason", reason)
}

// currentLocked returns the active symphony if it still belongs to gen.
func (p *Piano) currentLocked(gen int64) *symphony {
	if p.active == nil || p.active.generation != gen || !p.generation.IsCurrent(gen) {
		return nil
	}
	return p.active
}

func errUnsupportedNote(note notes.Note) error {
	return fmt.Errorf("unsupported note %T", note)
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
