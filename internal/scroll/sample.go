package scroll

// DefaultThreshold is the offset, in pixels, past which the header compacts.
const DefaultThreshold = 50

// Sample is one reading of the scroll source, in pixels.
type Sample struct {
	Offset   int
	Viewport int
	Document int
}

// Range returns the scrollable distance, Document - Viewport. It is zero or
// negative when the whole document fits in the viewport.
func (s Sample) Range() int {
	return s.Document - s.Viewport
}

// Flags are the view state derived from a Sample.
type Flags struct {
	PastThreshold bool
	Progress      float64
}

// Clamp bounds the offset to [0, max(Range, 0)].
func Clamp(s Sample) Sample {
	limit := max(s.Range(), 0)
	s.Offset = min(max(s.Offset, 0), limit)
	return s
}

// Derive computes Flags for s. Progress is Offset/Range clamped to [0, 1],
// and 0 when nothing can scroll. PastThreshold is Offset > threshold.
func Derive(s Sample, threshold int) Flags {
	flags := Flags{PastThreshold: s.Offset > threshold}

	r := s.Range()
	if r <= 0 {
		return flags
	}
	progress := float64(s.Offset) / float64(r)
	switch {
	case progress < 0:
		progress = 0
	case progress > 1:
		progress = 1
	}
	flags.Progress = progress
	return flags
}
