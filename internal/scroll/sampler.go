package scroll

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/five82/folio/internal/state"
)

// ErrNoScrollSource reports that no scroll source can be attached, for
// example when output is not an interactive terminal.
var ErrNoScrollSource = errors.New("scroll source unavailable")

// Source is the scroll position sensor. Attach registers fn for every scroll
// event and returns a function that removes it.
type Source interface {
	Attach(fn func(Sample)) (detach func(), err error)
}

// Scheduler runs fn once, before the next frame is drawn.
type Scheduler interface {
	RequestFrame(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

// RequestFrame implements Scheduler.
func (f SchedulerFunc) RequestFrame(fn func()) { f(fn) }

// Option configures a Sampler.
type Option func(*Sampler)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(px int) Option {
	return func(s *Sampler) { s.threshold = px }
}

// WithLogger sets the logger used for attach failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Sampler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Sampler turns scroll events into Flags, computing at most once per frame.
//
// The first event after a frame requests the next one; events arriving before
// it runs only replace the pending sample. Subscribers must not call Stop.
type Sampler struct {
	src       Source
	sched     Scheduler
	threshold int
	logger    *zap.Logger

	// deliver serializes frame delivery against Stop.
	deliver sync.Mutex

	mu           sync.Mutex
	started      bool
	generation   uint64
	detach       func()
	pending      Sample
	framePending bool

	flags *state.Value[Flags]
}

// NewSampler creates a stopped Sampler. A nil src leaves it inert.
func NewSampler(src Source, sched Scheduler, opts ...Option) *Sampler {
	s := &Sampler{
		src:       src,
		sched:     sched,
		threshold: DefaultThreshold,
		logger:    zap.NewNop(),
		flags:     state.NewValue(Flags{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start attaches to the source. Calling Start on a started Sampler does
// nothing. Start never fails: without a source the Sampler stays inert and
// Sample keeps returning the zero Flags.
func (s *Sampler) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	if s.src == nil || s.sched == nil {
		s.logger.Debug("scroll sampler inert", zap.Error(ErrNoScrollSource))
		return
	}

	detach, err := s.src.Attach(func(sample Sample) { s.onScroll(gen, sample) })
	if err != nil {
		s.logger.Debug("scroll sampler inert", zap.Error(err))
		return
	}

	s.mu.Lock()
	if s.generation != gen {
		// Stopped while attaching.
		s.mu.Unlock()
		if detach != nil {
			detach()
		}
		return
	}
	s.detach = detach
	s.mu.Unlock()
}

// Stop detaches from the source. It is idempotent and safe before Start.
// Once Stop returns no subscriber is notified again, including by a frame
// requested earlier.
func (s *Sampler) Stop() {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.generation++
	s.framePending = false
	detach := s.detach
	s.detach = nil
	s.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// Sample returns the most recently computed Flags.
func (s *Sampler) Sample() Flags {
	return s.flags.Get()
}

// Subscribe registers fn for every computed Flags.
func (s *Sampler) Subscribe(fn func(Flags)) (unsubscribe func()) {
	return s.flags.Subscribe(fn)
}

func (s *Sampler) onScroll(gen uint64, sample Sample) {
	s.mu.Lock()
	if !s.started || s.generation != gen {
		s.mu.Unlock()
		return
	}
	s.pending = sample
	if s.framePending {
		s.mu.Unlock()
		return
	}
	s.framePending = true
	s.mu.Unlock()

	s.sched.RequestFrame(func() { s.frame(gen) })
}

func (s *Sampler) frame(gen uint64) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	if !s.started || s.generation != gen || !s.framePending {
		s.mu.Unlock()
		return
	}
	s.framePending = false
	flags := Derive(s.pending, s.threshold)
	s.mu.Unlock()

	s.flags.Set(flags)
}
