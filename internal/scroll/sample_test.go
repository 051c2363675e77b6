package scroll

import (
	"math"
	"testing"
)

func TestDeriveProgress(t *testing.T) {
	tests := []struct {
		name   string
		sample Sample
		want   float64
	}{
		{"top", Sample{Offset: 0, Viewport: 100, Document: 500}, 0},
		{"quarter", Sample{Offset: 100, Viewport: 100, Document: 500}, 0.25},
		{"bottom", Sample{Offset: 400, Viewport: 100, Document: 500}, 1},
		{"overscroll", Sample{Offset: 450, Viewport: 100, Document: 500}, 1},
		{"negative offset", Sample{Offset: -20, Viewport: 100, Document: 500}, 0},
		{"fits in viewport", Sample{Offset: 10, Viewport: 500, Document: 500}, 0},
		{"shorter than viewport", Sample{Offset: 10, Viewport: 600, Document: 500}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.sample, DefaultThreshold).Progress
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Derive(%+v).Progress = %v, want %v", tt.sample, got, tt.want)
			}
		})
	}
}

func TestDeriveProgressMatchesRatio(t *testing.T) {
	for r := 1; r <= 40; r += 3 {
		for o := -5; o <= r+5; o++ {
			s := Sample{Offset: o, Viewport: 30, Document: 30 + r}
			want := math.Min(math.Max(float64(o)/float64(r), 0), 1)
			if got := Derive(s, DefaultThreshold).Progress; math.Abs(got-want) > 1e-9 {
				t.Fatalf("Derive(%+v).Progress = %v, want %v", s, got, want)
			}
		}
	}
}

func TestDerivePastThresholdBoundary(t *testing.T) {
	tests := []struct {
		offset int
		want   bool
	}{
		{0, false},
		{49, false},
		{50, false},
		{51, true},
		{1000, true},
	}
	for _, tt := range tests {
		s := Sample{Offset: tt.offset, Viewport: 100, Document: 5000}
		if got := Derive(s, DefaultThreshold).PastThreshold; got != tt.want {
			t.Fatalf("Derive(offset=%d).PastThreshold = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   Sample
		want int
	}{
		{Sample{Offset: -3, Viewport: 10, Document: 40}, 0},
		{Sample{Offset: 12, Viewport: 10, Document: 40}, 12},
		{Sample{Offset: 99, Viewport: 10, Document: 40}, 30},
		{Sample{Offset: 5, Viewport: 50, Document: 40}, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in).Offset; got != tt.want {
			t.Fatalf("Clamp(%+v).Offset = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSpringSettlesOnTarget(t *testing.T) {
	s := NewSpring()
	if !s.Settled() {
		t.Fatal("new spring should be settled at zero")
	}

	var last float64
	for i := 0; i < 600 && !(i > 0 && s.Settled()); i++ {
		pos := s.Step(0.8)
		if pos > 0.8+1e-6 {
			t.Fatalf("critically damped spring overshot: %v", pos)
		}
		if pos+1e-9 < last {
			t.Fatalf("spring moved backwards: %v after %v", pos, last)
		}
		last = pos
	}
	if !s.Settled() || s.Position() != 0.8 {
		t.Fatalf("spring did not settle: pos=%v settled=%v", s.Position(), s.Settled())
	}
}
