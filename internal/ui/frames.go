package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg marks the start of a rendering frame.
type frameMsg time.Time

// frameQueue is the scroll sampler's Scheduler. Callbacks queue up until the
// next frameMsg, which the model drains from Update before drawing.
type frameQueue struct {
	mu      sync.Mutex
	pending []func()
}

// RequestFrame implements scroll.Scheduler.
func (q *frameQueue) RequestFrame(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Pending reports whether any callback waits for a frame.
func (q *frameQueue) Pending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) > 0
}

// Drain runs every queued callback once and returns how many ran. Callbacks
// queued while draining wait for the next frame.
func (q *frameQueue) Drain() int {
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
