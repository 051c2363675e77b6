package ui

import (
	"sync"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/five82/folio/internal/scroll"
)

// viewportSource reports the body viewport's position to the scroll sampler.
// The model calls Observe after anything that may move the viewport; a
// Sample is emitted only when the position or extent actually changed.
type viewportSource struct {
	mu       sync.Mutex
	listener func(scroll.Sample)
	attached uint64
	last     scroll.Sample
	seen     bool
}

// Attach implements scroll.Source. Only one listener is kept.
func (s *viewportSource) Attach(fn func(scroll.Sample)) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached++
	id := s.attached
	s.listener = fn
	s.seen = false
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.attached == id {
			s.listener = nil
		}
	}, nil
}

// Observe converts the viewport's rows to pixels and emits a Sample if it
// differs from the last one.
func (s *viewportSource) Observe(vp viewport.Model) {
	sample := sampleFromViewport(vp)

	s.mu.Lock()
	if s.listener == nil || (s.seen && sample == s.last) {
		s.mu.Unlock()
		return
	}
	s.last = sample
	s.seen = true
	fn := s.listener
	s.mu.Unlock()

	fn(sample)
}

func sampleFromViewport(vp viewport.Model) scroll.Sample {
	return scroll.Clamp(scroll.Sample{
		Offset:   vp.YOffset * RowPixels,
		Viewport: vp.Height * RowPixels,
		Document: vp.TotalLineCount() * RowPixels,
	})
}
