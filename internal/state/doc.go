// Package state provides the observable value shared by folio's theme
// manager, scroll sampler, and content reloader.
//
// # Overview
//
// Value[T] holds one value behind a readers-writer lock and pushes every
// change to its subscribers. It replaces ambient globals: whoever owns a Value
// decides who may call Set, and everyone else only reads or subscribes.
//
//	Producer:                      Consumers:
//	┌────────────────┐            ┌──────────────────┐
//	│ value.Set(x)   │───────────→│ fn(x) per        │
//	│                │  (ordered) │ subscription     │
//	└────────────────┘            │ value.Get()      │
//	                              └──────────────────┘
//
// # Ordering
//
// Subscribers are called synchronously, in the order they subscribed, with
// the value that was set. A Set issued during delivery is queued rather than
// delivered recursively:
//
//	v.Subscribe(func(n int) { if n == 1 { v.Set(2) } })
//	v.Set(1)
//	→ every subscriber sees 1, then every subscriber sees 2
//
// Get always returns the latest stored value, so a subscriber that calls Get
// while a queued change is pending may see a newer value than its argument.
//
// # Unsubscribing
//
// Subscribe returns an idempotent unsubscribe function. A round of
// notifications that is already being delivered uses the subscriber list as
// it was when the round started.
//
// # Zero Value
//
// The zero Value is ready to use and holds the zero T:
//
//	var mode state.Value[theme.Mode]
package state
