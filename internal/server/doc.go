// Package server serves the portfolio over SSH with wish.
//
// Middleware, outermost first: connection logging, per-IP rate limiting, an
// active-terminal check, and Bubble Tea. Each session runs its own ui.Model
// with a renderer bound to the client's terminal.
package server
