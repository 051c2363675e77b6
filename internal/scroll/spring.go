package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	springFPS       = 60
	springFrequency = 12.0
	springDamping   = 1.0 // critically damped
	settleEpsilon   = 0.001
)

// Spring smooths the displayed progress towards its target. It only affects
// what is drawn; Flags.Progress stays exact.
type Spring struct {
	spring   harmonica.Spring
	pos, vel float64
	target   float64
}

// NewSpring returns a critically damped Spring stepping at 60 fps.
func NewSpring() *Spring {
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping)}
}

// Step advances one frame towards target and returns the new position.
func (s *Spring) Step(target float64) float64 {
	s.target = target
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	if s.Settled() {
		s.pos, s.vel = target, 0
	}
	return s.pos
}

// Position returns the current smoothed value.
func (s *Spring) Position() float64 { return s.pos }

// Settled reports whether the position has reached the last target.
func (s *Spring) Settled() bool {
	return math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon
}
