package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/five82/folio/internal/content"
	"github.com/five82/folio/internal/scroll"
)

func TestNavLayout(t *testing.T) {
	if slots := navLayout(LayoutMobileWidth-1, "MH"); slots != nil {
		t.Fatalf("navLayout on mobile width = %v, want nil", slots)
	}

	wide := navLayout(140, "MH")
	if len(wide) != len(content.SectionIDs) {
		t.Fatalf("slots = %d, want %d", len(wide), len(content.SectionIDs))
	}
	if wide[0].X != 6 {
		t.Fatalf("first slot X = %d, want 6", wide[0].X)
	}
	for i := 1; i < len(wide); i++ {
		prev := wide[i-1]
		if wide[i].X != prev.X+len(prev.Label)+2 {
			t.Fatalf("slot %d at %d, want %d", i, wide[i].X, prev.X+len(prev.Label)+2)
		}
	}
	if wide[2].Label != "Education" {
		t.Fatalf("wide label = %q, want Education", wide[2].Label)
	}

	if accented := navLayout(140, "ÉÖ"); accented[0].X != 6 {
		t.Fatalf("first slot X with accented logo = %d, want 6", accented[0].X)
	}

	narrow := navLayout(LayoutMobileWidth, "MH")
	if narrow[2].Label != "Edu" || narrow[4].Label != "Certs" {
		t.Fatalf("narrow labels = %q %q, want short labels", narrow[2].Label, narrow[4].Label)
	}
}

func TestMenuRect(t *testing.T) {
	r := menuRect(60)
	if r.Y != progressRows+headerRows {
		t.Fatalf("menu Y = %d, want %d", r.Y, progressRows+headerRows)
	}
	if r.X+r.W != 59 {
		t.Fatalf("menu right edge = %d, want 59", r.X+r.W)
	}
	if r.H != len(content.SectionIDs)+2 {
		t.Fatalf("menu H = %d, want %d", r.H, len(content.SectionIDs)+2)
	}

	if _, ok := menuItemAt(60, r.X, r.Y); ok {
		t.Fatalf("top border mapped to an entry")
	}
	idx, ok := menuItemAt(60, r.X+1, r.Y+1)
	if !ok || idx != 0 {
		t.Fatalf("first row = %d,%v, want 0,true", idx, ok)
	}
	if _, ok := menuItemAt(60, 0, r.Y+1); ok {
		t.Fatalf("click left of menu mapped to an entry")
	}
}

func TestMenuRenderMatchesRect(t *testing.T) {
	tm := newTestModel(t, 60, 30)
	r := menuRect(60)
	box := tm.renderMenu()
	lines := strings.Split(box, "\n")
	if len(lines) != r.H {
		t.Fatalf("menu lines = %d, want %d", len(lines), r.H)
	}
	for i, line := range lines {
		if w := len([]rune(line)); w != r.W {
			t.Fatalf("menu line %d width = %d, want %d: %q", i, w, r.W, line)
		}
	}
}

func TestActiveSection(t *testing.T) {
	anchors := map[content.SectionID]int{
		content.SectionHome:   0,
		content.SectionAbout:  10,
		content.SectionSkills: 25,
	}
	tests := []struct {
		offset int
		want   content.SectionID
	}{
		{0, content.SectionHome},
		{9, content.SectionHome},
		{10, content.SectionAbout},
		{24, content.SectionAbout},
		{100, content.SectionSkills},
	}
	for _, tt := range tests {
		if got := activeSection(anchors, tt.offset); got != tt.want {
			t.Fatalf("activeSection(%d) = %s, want %s", tt.offset, got, tt.want)
		}
	}
}

func TestOverlay(t *testing.T) {
	base := "aaaaaa\nbbbbbb\ncccccc"
	got := overlay(base, "XY\nZW", 2, 1)
	want := "aaaaaa\nbbXY\nccZW"
	if got != want {
		t.Fatalf("overlay = %q, want %q", got, want)
	}

	got = overlay("ab", "X", 4, 2)
	want = "ab\n\n    X"
	if got != want {
		t.Fatalf("overlay past end = %q, want %q", got, want)
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := truncate("hello world", 6); got != "hello…" {
		t.Fatalf("truncate = %q, want hello…", got)
	}
	if got := truncate("hi", 6); got != "hi" {
		t.Fatalf("truncate short = %q", got)
	}
	if got := truncate("hi", 0); got != "" {
		t.Fatalf("truncate zero = %q", got)
	}
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
}

func TestFitLines(t *testing.T) {
	if got := fitLines("a\nb\nc\n", 2); got != "a\nb" {
		t.Fatalf("fitLines cut = %q", got)
	}
	if got := fitLines("a", 3); got != "a\n\n" {
		t.Fatalf("fitLines pad = %q", got)
	}
}

func TestTypewriter(t *testing.T) {
	tw := newTypewriter([]string{"Go", "Dev"}, 0)
	if tw.Text() != "" {
		t.Fatalf("initial text = %q", tw.Text())
	}
	if d := tw.step(); d != TypeInterval || tw.Text() != "G" {
		t.Fatalf("step 1 = %v %q", d, tw.Text())
	}
	if d := tw.step(); d != TypePause || tw.Text() != "Go" {
		t.Fatalf("step 2 = %v %q, want pause after full role", d, tw.Text())
	}
	tw.step()
	tw.step()
	if tw.Text() != "" {
		t.Fatalf("text after erase = %q", tw.Text())
	}
	tw.step()
	tw.step()
	if tw.Text() != "D" {
		t.Fatalf("next role text = %q, want D", tw.Text())
	}

	empty := newTypewriter(nil, 0)
	if empty.step() != 0 || empty.tick(TypeInterval) != nil {
		t.Fatalf("empty typewriter should not tick")
	}
}

func TestFrameQueue(t *testing.T) {
	var q frameQueue
	if q.Pending() {
		t.Fatalf("new queue pending")
	}
	ran := 0
	q.RequestFrame(func() {
		ran++
		q.RequestFrame(func() { ran += 10 })
	})
	if n := q.Drain(); n != 1 || ran != 1 {
		t.Fatalf("Drain = %d ran = %d, want 1 1", n, ran)
	}
	if !q.Pending() {
		t.Fatalf("callback queued during drain should wait for the next frame")
	}
	q.Drain()
	if ran != 11 {
		t.Fatalf("ran = %d, want 11", ran)
	}
}

func TestViewportSourceEmitsOnChange(t *testing.T) {
	vp := viewport.New(20, 5)
	vp.SetContent(strings.Repeat("line\n", 30))

	var src viewportSource
	var got []scroll.Sample
	detach, err := src.Attach(func(s scroll.Sample) { got = append(got, s) })
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}

	src.Observe(vp)
	src.Observe(vp)
	if len(got) != 1 {
		t.Fatalf("samples = %d, want 1 for an unchanged viewport", len(got))
	}
	want := scroll.Sample{Offset: 0, Viewport: 5 * RowPixels, Document: vp.TotalLineCount() * RowPixels}
	if got[0] != want {
		t.Fatalf("sample = %+v, want %+v", got[0], want)
	}

	vp.SetYOffset(2)
	src.Observe(vp)
	if len(got) != 2 || got[1].Offset != 2*RowPixels {
		t.Fatalf("samples = %+v, want a second sample at offset %d", got, 2*RowPixels)
	}

	detach()
	vp.SetYOffset(4)
	src.Observe(vp)
	if len(got) != 2 {
		t.Fatalf("sample delivered after detach")
	}

	// A stale detach must not remove a newer listener.
	calls := 0
	if _, err := src.Attach(func(scroll.Sample) { calls++ }); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	detach()
	vp.SetYOffset(1)
	src.Observe(vp)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestWrapWidth(t *testing.T) {
	tests := map[int]int{
		10:  20,
		60:  56,
		100: 96,
		200: 96,
	}
	for width, want := range tests {
		if got := wrapWidth(width); got != want {
			t.Fatalf("wrapWidth(%d) = %d, want %d", width, got, want)
		}
	}
}
