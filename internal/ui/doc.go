// Package ui implements the portfolio's Bubble Tea interface.
//
// The page is one glamour-rendered document in a viewport, framed by a
// reading-progress bar, a header that turns compact once the reader scrolls
// past the threshold, and a command bar. Scroll positions reach the
// scroll.Sampler through a viewport source and are computed at most once
// per frame; the header and progress bar draw from the sampled flags.
//
// Themes are applied through the renderer passed in Options, so the same
// model serves both the local terminal and SSH sessions.
//
// # Event Flow
//
//  1. New starts the sampler against the viewport source
//  2. Key, mouse, and resize messages move the viewport, then Observe
//  3. The sampler requests a frame; the model schedules a frameMsg
//  4. frameMsg drains the queue, which runs at most one computation
//  5. Close (or Run returning) stops the sampler
//
// # Key Bindings
//
//   - 1-8: Jump to a section
//   - m: Section menu (the only navigation on narrow terminals)
//   - f and /: Project category filter and search
//   - c: Contact form
//   - t: Toggle light/dark
//   - ?: Help
//   - q or Ctrl+C: Exit
package ui
