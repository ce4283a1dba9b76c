package piano

import (
	"errors"
	"time"

	"github.com/koscakluka/piano/core/audio"
	"github.com/koscakluka/piano/core/notes"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// gateRole tells what happens once a scheduled note has finished.
type gateRole int

const (
	// roleNone notes are not waited on.
	roleNone gateRole = iota
	// roleGate notes schedule the rest of the symphony.
	roleGate
	// roleFinal notes finish the symphony.
	roleFinal
)

// startSegment schedules the first segment of remaining for s. Haptic
// generators are warmed before any timer of a segment with haptic feedback
// exists.
func (p *Piano) startSegment(s *symphony, remaining []notes.Note) {
	segment, _, _ := notes.NextSegment(remaining)
	if notes.ContainsHapticFeedback(segment) {
		p.mu.Lock()
		stale := p.currentLocked(s.generation) != s
		p.mu.Unlock()
		if stale {
			return
		}
		p.haptics.ensureWarm(s.generation)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.currentLocked(s.generation) != s {
		return
	}
	p.scheduleSegmentLocked(s, remaining)
}

// segmentGate holds back the next segment until every note gating it has
// finished.
type segmentGate struct {
	remaining int
}

// scheduleSegmentLocked arms a timer for every playable note of the first
// segment of remaining, at its cumulative offset, and one for a Wait that
// gates or ends the symphony. A barrier after a Wait waits for both the
// delay and the last playable note before it.
func (p *Piano) scheduleSegmentLocked(s *symphony, remaining []notes.Note) {
	segment, gated, rest := notes.NextSegment(remaining)
	s.pending = rest
	s.segments++
	s.span.AddEvent("segment scheduled", trace.WithAttributes(
		attribute.Int("segment.index", s.segments),
		attribute.Int("segment.notes", len(segment)),
		attribute.Bool("segment.gated", gated),
	))

	lastRole := roleFinal
	if gated {
		lastRole = roleGate
	}

	gen := s.generation
	if len(segment) == 0 {
		s.timers = append(s.timers, p.clock.AfterFunc(0, func() { p.complete(gen, lastRole, nil) }))
		return
	}

	last := len(segment) - 1
	lastPlayable := -1
	for i, note := range segment {
		if notes.IsPlayable(note) {
			lastPlayable = i
		}
	}
	var gate *segmentGate
	if _, endsWithWait := segment[last].(notes.Wait); gated && endsWithWait && lastPlayable >= 0 {
		gate = &segmentGate{remaining: 2}
	}

	var offset time.Duration
	for i, note := range segment {
		role := roleNone
		var joint *segmentGate
		switch {
		case i == last:
			role, joint = lastRole, gate
		case gate != nil && i == lastPlayable:
			role, joint = roleGate, gate
		}

		if wait, ok := note.(notes.Wait); ok {
			offset += wait.Delay()
			if role != roleNone {
				s.timers = append(s.timers, p.clock.AfterFunc(offset, func() { p.complete(gen, role, joint) }))
			}
			continue
		}
		if !notes.IsPlayable(note) {
			continue
		}

		s.timers = append(s.timers, p.clock.AfterFunc(offset, func() { p.fire(gen, note, role, joint) }))
	}
}

// fire renders note if gen is still playing.
func (p *Piano) fire(gen int64, note notes.Note, role gateRole, joint *segmentGate) {
	p.mu.Lock()
	s := p.currentLocked(gen)
	p.mu.Unlock()
	if s == nil {
		return
	}

	_, span := tracer.Start(s.ctx, "render note", trace.WithAttributes(
		attribute.String("note.kind", string(note.Kind())),
		attribute.String("note", describe(note)),
	))

	rendered := false
	done := func(err error) {
		if rendered {
			p.logger.Warn("renderer completed a note twice", "note", describe(note))
			return
		}
		rendered = true

		if err != nil {
			p.renderFailed(s, span, note, err)
		}
		span.End()

		p.complete(gen, role, joint)
	}

	render(p.renderer, note, p.serialized(done))
}

// serialized delivers done on the clock's execution context, whichever
// goroutine the renderer calls it from.
func (p *Piano) serialized(done func(error)) func(error) {
	return func(err error) {
		p.clock.Post(func() { done(err) })
	}
}

// renderFailed logs a failed render. The note still counts as finished.
func (p *Piano) renderFailed(s *symphony, span trace.Span, note notes.Note, err error) {
	rendersFailed.Add(s.ctx, 1)
	recordError(span, err)

	switch {
	case errors.Is(err, audio.ErrNotFound):
		p.logger.Warn("could not find note resource", "symphony", s.id, "note", describe(note), "error", err)
	default:
		p.logger.Warn("could not play note", "symphony", s.id, "note", describe(note), "error", err)
	}
}

// complete runs what follows a finished note. With a joint gate, only the
// last of its notes to finish does.
func (p *Piano) complete(gen int64, role gateRole, joint *segmentGate) {
	if role == roleNone {
		return
	}
	if joint != nil && !p.arrive(gen, joint) {
		return
	}

	switch role {
	case roleGate:
		p.advance(gen)
	case roleFinal:
		p.finish(gen)
	}
}

func (p *Piano) arrive(gen int64, joint *segmentGate) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.currentLocked(gen) == nil {
		return false
	}
	joint.remaining--
	return joint.remaining == 0
}

// advance schedules the segment after the barrier that gen was waiting on.
func (p *Piano) advance(gen int64) {
	p.mu.Lock()
	s := p.currentLocked(gen)
	if s == nil {
		p.mu.Unlock()
		return
	}
	rest := s.pending
	p.mu.Unlock()

	if len(rest) == 0 {
		p.finish(gen)
		return
	}
	p.startSegment(s, rest)
}

// finish runs the completion of gen, once.
func (p *Piano) finish(gen int64) {
	p.mu.Lock()
	s := p.currentLocked(gen)
	if s == nil {
		p.mu.Unlock()
		return
	}
	p.active = nil
	p.mu.Unlock()

	symphoniesCompleted.Add(s.ctx, 1)
	s.span.End()
	p.logger.Debug("symphony finished", "symphony", s.id, "generation", gen, "segments", s.segments)

	if s.completion != nil {
		s.completion()
	}
}

func describe(note notes.Note) string {
	if stringer, ok := note.(interface{ String() string }); ok {
		return stringer.String()
	}
	return string(note.Kind())
}
