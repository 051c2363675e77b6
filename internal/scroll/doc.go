// Package scroll derives header and progress-bar state from the scroll
// position of the page.
//
// A Source reports raw Samples (offset, viewport height, document height, all
// in pixels). The Sampler coalesces them to one computation per frame using
// the Scheduler: the first event after a frame requests the next frame, later
// events only replace the pending sample. Each frame publishes Flags:
//
//	Progress      = clamp(Offset / (Document - Viewport), 0, 1), 0 if nothing scrolls
//	PastThreshold = Offset > 50
//
// Every Start must be paired with a Stop. Stop is idempotent and guarantees
// no notification after it returns.
package scroll
