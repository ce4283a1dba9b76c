package notes

// Normalize rewrites a symphony into its canonical form:
//
//   - runs of consecutive WaitUntilFinished collapse into one,
//   - leading and trailing WaitUntilFinished are removed,
//   - a symphony made of a single WaitUntilFinished becomes empty.
//
// Nil notes are dropped.
//
// The input is never modified. Normalize is idempotent.
func Normalize(symphony []Note) []Note {
	normalized := make([]Note, 0, len(symphony))
	for _, note := range symphony {
		if note == nil {
			continue
		}
		if IsBarrier(note) {
			if len(normalized) == 0 || IsBarrier(normalized[len(normalized)-1]) {
				continue
			}
		}
		normalized = append(normalized, note)
	}

	for len(normalized) > 0 && IsBarrier(normalized[len(normalized)-1]) {
		normalized = normalized[:len(normalized)-1]
	}

	if len(normalized) == 0 {
		return nil
	}
	return normalized
}

// Segments splits a normalized symphony at its barriers. The barriers
// themselves are not part of any segment.
func Segments(normalized []Note) [][]Note {
	if len(normalized) == 0 {
		return nil
	}

	var segments [][]Note
	start := 0
	for i, note := range normalized {
		if IsBarrier(note) {
			segments = append(segments, normalized[start:i:i])
			start = i + 1
		}
	}
	return append(segments, normalized[start:len(normalized):len(normalized)])
}

// NextSegment returns the first segment of a normalized symphony, whether a
// barrier follows it, and the notes after that barrier.
func NextSegment(normalized []Note) (segment []Note, gated bool, rest []Note) {
	for i, note := range normalized {
		if IsBarrier(note) {
			return normalized[:i:i], true, normalized[i+1:]
		}
	}
	return normalized, false, nil
}
