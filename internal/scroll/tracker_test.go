package scroll

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajithkoli/portfolio/internal/layout"
	"github.com/ajithkoli/portfolio/internal/sections"
)

// page is a stacked single-column document: each section has a height and
// they are laid out top to bottom starting at offset 0.
type page struct {
	scrollY float64
	order   []string
	heights map[string]float64
	missing map[string]bool
}

func newPage() *page {
	return &page{
		order: []string{"about", "education", "skills", "projects", "activities", "contact"},
		heights: map[string]float64{
			"about": 600, "education": 500, "skills": 400,
			"projects": 900, "activities": 500, "contact": 700,
		},
		missing: map[string]bool{},
	}
}

func (p *page) ScrollY() float64 { return p.scrollY }

func (p *page) ElementRect(id string) (layout.Rect, bool) {
	if p.missing[id] {
		return layout.Rect{}, false
	}
	// Hero occupies the first 400px.
	y := 400.0
	for _, cur := range p.order {
		h := p.heights[cur]
		if cur == id {
			top := y - p.scrollY
			return layout.Rect{Top: top, Bottom: top + h, Right: 1280}, true
		}
		y += h
	}
	return layout.Rect{}, false
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTracker(doc Document, opts ...Option) *Tracker {
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	return New(sections.Default(), doc, opts...)
}

func TestThresholdBoundary(t *testing.T) {
	p := newPage()
	tr := newTracker(p)

	for _, y := range []float64{0, 1, 49.9, 50} {
		p.scrollY = y
		tr.HandleScroll()
		assert.False(t, tr.State().ScrolledPastThreshold, "offset %v", y)
	}
	for _, y := range []float64{50.1, 51, 300, 5000} {
		p.scrollY = y
		tr.HandleScroll()
		assert.True(t, tr.State().ScrolledPastThreshold, "offset %v", y)
	}
}

func TestActiveSectionFollowsDetectionLine(t *testing.T) {
	p := newPage()
	tr := newTracker(p)

	tests := []struct {
		scrollY float64
		want    string
	}{
		{0, ""},           // hero under the line
		{299, ""},         // about top at 101
		{300, "about"},    // about top exactly at 100
		{899, "about"},    // about bottom at 101
		{900, "about"},    // about bottom at 100 and education top at 100: registry order wins
		{901, "education"},
		{1450, "skills"},
		{2500, "projects"},
		{3200, "activities"},
		{3500, "contact"},
		{10000, ""},       // scrolled past everything
	}
	for _, tt := range tests {
		p.scrollY = tt.scrollY
		tr.HandleScroll()
		assert.Equal(t, tt.want, tr.State().ActiveAnchorID, "scrollY %v", tt.scrollY)
	}
}

func TestActiveSectionIsAlwaysStraddling(t *testing.T) {
	p := newPage()
	tr := newTracker(p)
	reg := sections.Default()

	for y := 0.0; y <= 5000; y += 7 {
		p.scrollY = y
		tr.HandleScroll()
		st := tr.State()
		if !st.HasActive() {
			for _, id := range reg.AnchorIDs() {
				r, _ := p.ElementRect(id)
				assert.False(t, r.Straddles(DefaultDetectionLine), "y=%v: %s straddles but none active", y, id)
			}
			continue
		}
		require.True(t, reg.Contains(st.ActiveAnchorID))
		r, ok := p.ElementRect(st.ActiveAnchorID)
		require.True(t, ok)
		assert.True(t, r.Straddles(DefaultDetectionLine), "y=%v active=%s", y, st.ActiveAnchorID)
		for _, id := range reg.AnchorIDs() {
			if id == st.ActiveAnchorID {
				break
			}
			prev, _ := p.ElementRect(id)
			assert.False(t, prev.Straddles(DefaultDetectionLine), "earlier section %s should have won", id)
		}
	}
}

func TestMissingAnchorIsSkipped(t *testing.T) {
	p := newPage()
	p.missing["about"] = true
	tr := newTracker(p)

	p.scrollY = 500
	require.NotPanics(t, tr.HandleScroll)
	assert.Equal(t, "", tr.State().ActiveAnchorID)

	p.scrollY = 1000
	tr.HandleScroll()
	assert.Equal(t, "education", tr.State().ActiveAnchorID)
}

func TestPublishesOnlyOnChange(t *testing.T) {
	p := newPage()
	tr := newTracker(p)

	var got []State
	cancel := tr.Subscribe(func(s State) { got = append(got, s) })
	defer cancel()

	p.scrollY = 10
	tr.HandleScroll()
	tr.HandleScroll()
	assert.Empty(t, got, "zero state above threshold must not publish")

	p.scrollY = 60
	tr.HandleScroll()
	p.scrollY = 70
	tr.HandleScroll()
	require.Len(t, got, 1)
	assert.Equal(t, State{ScrolledPastThreshold: true}, got[0])

	p.scrollY = 300
	tr.HandleScroll()
	require.Len(t, got, 2)
	assert.Equal(t, State{ScrolledPastThreshold: true, ActiveAnchorID: "about"}, got[1])
}

func TestSubscribeCancel(t *testing.T) {
	p := newPage()
	tr := newTracker(p)

	calls := 0
	cancel := tr.Subscribe(func(State) { calls++ })
	cancel()

	p.scrollY = 400
	tr.HandleScroll()
	assert.Zero(t, calls)
}

func TestAttachRelease(t *testing.T) {
	p := newPage()
	tr := newTracker(p)
	var bus Bus

	release := tr.Attach(&bus)
	assert.True(t, tr.Attached())
	assert.Equal(t, 1, bus.Listeners())

	// A second attach does not register another listener.
	noop := tr.Attach(&bus)
	assert.Equal(t, 1, bus.Listeners())
	noop()
	assert.True(t, tr.Attached())

	p.scrollY = 300
	bus.Emit()
	assert.Equal(t, "about", tr.State().ActiveAnchorID)

	release()
	release()
	assert.False(t, tr.Attached())
	assert.Zero(t, bus.Listeners())

	p.scrollY = 1000
	bus.Emit()
	assert.Equal(t, "about", tr.State().ActiveAnchorID, "detached tracker must not update")
}

func TestReleaseOnPanic(t *testing.T) {
	p := newPage()
	tr := newTracker(p)
	var bus Bus

	render := func() {
		release := tr.Attach(&bus)
		defer release()
		panic("render failed")
	}
	assert.Panics(t, render)
	assert.Zero(t, bus.Listeners())
}

func TestCustomLines(t *testing.T) {
	p := newPage()
	tr := newTracker(p, WithThreshold(0), WithDetectionLine(0))

	p.scrollY = 1
	tr.HandleScroll()
	assert.True(t, tr.State().ScrolledPastThreshold)

	p.scrollY = 400
	tr.HandleScroll()
	assert.Equal(t, "about", tr.State().ActiveAnchorID)
}
