package state

import (
	"slices"
	"sync"
)

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Value holds the latest value of T and notifies subscribers on every change.
type Value[T any] struct {
	mu         sync.RWMutex
	current    T
	subs       []subscriber[T]
	nextID     uint64
	pending    []T
	delivering bool
}

// NewValue returns a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

// Get returns the latest value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set stores next and notifies every subscriber in subscription order.
//
// A Set issued while notifications are being delivered (from a subscriber or
// another goroutine) is queued and delivered once the current round completes,
// so subscribers always observe changes in the order they happened.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	v.current = next
	v.pending = append(v.pending, next)
	if v.delivering {
		v.mu.Unlock()
		return
	}
	v.delivering = true

	for len(v.pending) > 0 {
		item := v.pending[0]
		v.pending = v.pending[1:]
		subs := slices.Clone(v.subs)
		v.mu.Unlock()

		for _, s := range subs {
			s.fn(item)
		}

		v.mu.Lock()
	}

	v.pending = nil
	v.delivering = false
	v.mu.Unlock()
}

// Subscribe registers fn to be called with every new value. The returned
// function removes the subscription and is safe to call more than once.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	v.mu.Lock()
	v.nextID++
	id := v.nextID
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			v.subs = slices.DeleteFunc(v.subs, func(s subscriber[T]) bool {
				return s.id == id
			})
		})
	}
}

// Subscribers reports how many subscriptions are active.
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}
