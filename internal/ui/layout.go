package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutMobileWidth is the width below which the navigation collapses
	// into the menu toggle.
	LayoutMobileWidth = 80

	// LayoutMaxContentWidth caps the markdown wrap width on wide terminals.
	LayoutMaxContentWidth = 100
)

// Fixed rows around the body viewport.
const (
	progressRows = 1
	headerRows   = 2
	commandRows  = 1
	chromeRows   = progressRows + headerRows + commandRows
)

// RowPixels is the nominal cell height used to report scroll offsets in
// pixels. At 16px the 50px header threshold is crossed on the fourth row.
const RowPixels = 16

// Timing constants.
const (
	// FrameInterval is the rendering frame the scroll sampler is aligned to.
	FrameInterval = time.Second / 60

	// SplashDuration is how long the loading splash stays up.
	SplashDuration = 1500 * time.Millisecond

	// ThanksDuration is how long the contact thank-you notice shows.
	ThanksDuration = 3 * time.Second

	// SearchDebounce delays applying the project search query.
	SearchDebounce = 300 * time.Millisecond

	// TypeInterval is the per-character delay of the typed tagline.
	TypeInterval = 60 * time.Millisecond

	// TypePause is how long a fully typed role stays before it is erased.
	TypePause = 2 * time.Second
)
