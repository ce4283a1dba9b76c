package notes

import (
	"reflect"
	"testing"
	"time"
)

var (
	soundA  = NewSound(Asset{AssetName: "a"})
	soundB  = NewSound(Asset{AssetName: "b"})
	barrier = NewWaitUntilFinished()
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    []Note
		expected []Note
	}{
		{name: "empty", input: nil, expected: nil},
		{name: "lone barrier", input: []Note{barrier}, expected: nil},
		{name: "only barriers", input: []Note{barrier, barrier, barrier}, expected: nil},
		{name: "leading barriers", input: []Note{barrier, barrier, soundA}, expected: []Note{soundA}},
		{name: "trailing barriers", input: []Note{soundA, barrier, barrier}, expected: []Note{soundA}},
		{name: "collapsed run", input: []Note{soundA, barrier, barrier, barrier, soundB}, expected: []Note{soundA, barrier, soundB}},
		{
			name:     "waits are kept",
			input:    []Note{barrier, NewWait(time.Second), soundA, barrier, NewWait(0), barrier},
			expected: []Note{NewWait(time.Second), soundA, barrier, NewWait(0)},
		},
		{name: "already canonical", input: []Note{soundA, barrier, soundB}, expected: []Note{soundA, barrier, soundB}},
		{name: "nil notes dropped", input: []Note{nil, soundA, nil, barrier, nil}, expected: []Note{soundA}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := Normalize(testCase.input)
			if !reflect.DeepEqual(got, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, got)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	alphabet := []Note{soundA, barrier, NewWait(100 * time.Millisecond), NewHapticFeedback(Selection)}

	// Every sequence of up to five notes drawn from the alphabet.
	var walk func(prefix []Note, depth int)
	walk = func(prefix []Note, depth int) {
		once := Normalize(prefix)
		twice := Normalize(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("normalize is not idempotent for %v: %v then %v", prefix, once, twice)
		}
		assertCanonical(t, once)

		if depth == 0 {
			return
		}
		for _, note := range alphabet {
			walk(append(append([]Note(nil), prefix...), note), depth-1)
		}
	}
	walk(nil, 5)
}

func assertCanonical(t *testing.T, normalized []Note) {
	t.Helper()

	if len(normalized) == 0 {
		return
	}
	if IsBarrier(normalized[0]) {
		t.Fatalf("expected no leading barrier in %v", normalized)
	}
	if IsBarrier(normalized[len(normalized)-1]) {
		t.Fatalf("expected no trailing barrier in %v", normalized)
	}
	for i := 1; i < len(normalized); i++ {
		if IsBarrier(normalized[i]) && IsBarrier(normalized[i-1]) {
			t.Fatalf("expected no consecutive barriers in %v", normalized)
		}
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	input := []Note{barrier, soundA, barrier, barrier, soundB, barrier}
	snapshot := append([]Note(nil), input...)

	_ = Normalize(input)

	if !reflect.DeepEqual(input, snapshot) {
		t.Fatalf("expected input to stay %v, got %v", snapshot, input)
	}
}

func TestSegmentsSplitsAtBarriers(t *testing.T) {
	wait := NewWait(200 * time.Millisecond)
	segments := Segments([]Note{soundA, wait, barrier, soundB})

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if !reflect.DeepEqual(segments[0], []Note{soundA, wait}) {
		t.Fatalf("unexpected first segment %v", segments[0])
	}
	if !reflect.DeepEqual(segments[1], []Note{soundB}) {
		t.Fatalf("unexpected second segment %v", segments[1])
	}
}

func TestNextSegment(t *testing.T) {
	segment, gated, rest := NextSegment([]Note{soundA, barrier, soundB, barrier, soundA})
	if !gated {
		t.Fatalf("expected first segment to be gated")
	}
	if !reflect.DeepEqual(segment, []Note{soundA}) {
		t.Fatalf("unexpected segment %v", segment)
	}
	if !reflect.DeepEqual(rest, []Note{soundB, barrier, soundA}) {
		t.Fatalf("unexpected rest %v", rest)
	}

	segment, gated, rest = NextSegment([]Note{soundB})
	if gated || rest != nil || !reflect.DeepEqual(segment, []Note{soundB}) {
		t.Fatalf("expected ungated final segment, got segment=%v gated=%t rest=%v", segment, gated, rest)
	}
}
