package navbar

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajithkoli/portfolio/internal/layout"
	"github.com/ajithkoli/portfolio/internal/scroll"
	"github.com/ajithkoli/portfolio/internal/sections"
)

type recordingScroller struct {
	calls []string
	err   error
}

func (r *recordingScroller) ScrollIntoView(id string) error {
	r.calls = append(r.calls, id)
	return r.err
}

type fixedDoc struct {
	y     float64
	rects map[string]layout.Rect
}

func (d *fixedDoc) ScrollY() float64 { return d.y }

func (d *fixedDoc) ElementRect(id string) (layout.Rect, bool) {
	r, ok := d.rects[id]
	return r, ok
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLinksFollowRegistryOrder(t *testing.T) {
	reg := sections.Default()
	v := New(reg, &recordingScroller{}).View()

	require.Len(t, v.Links, reg.Len())
	for i, d := range reg.All() {
		assert.Equal(t, d.Label, v.Links[i].Label)
		assert.Equal(t, "#"+d.AnchorID, v.Links[i].Href)
		assert.False(t, v.Links[i].Active)
	}
	assert.False(t, v.Chrome)
}

func TestMountReflectsScrollState(t *testing.T) {
	reg := sections.Default()
	doc := &fixedDoc{rects: map[string]layout.Rect{
		"about":  {Top: 400, Bottom: 1000},
		"skills": {Top: 50, Bottom: 500},
	}}
	tracker := scroll.New(reg, doc, scroll.WithLogger(quiet()))
	var bus scroll.Bus

	bar := New(reg, &recordingScroller{}, WithLogger(quiet()))
	unmount := bar.Mount(tracker, &bus)
	defer unmount()

	doc.y = 120
	bus.Emit()

	v := bar.View()
	assert.True(t, v.Chrome)
	for _, l := range v.Links {
		assert.Equal(t, l.AnchorID == "skills", l.Active, l.AnchorID)
	}

	unmount()
	assert.Zero(t, bus.Listeners())
	assert.False(t, tracker.Attached())
}

func TestActivateScrollsAndClosesOverlay(t *testing.T) {
	s := &recordingScroller{}
	bar := New(sections.Default(), s, WithLogger(quiet()))
	bar.SetWidth(375)
	require.True(t, bar.Mobile())

	bar.Toggle()
	require.True(t, bar.OverlayOpen())

	require.NoError(t, bar.Activate("projects"))
	assert.Equal(t, []string{"projects"}, s.calls)
	assert.False(t, bar.OverlayOpen())
}

func TestActivateClosesOverlayWhenScrollFails(t *testing.T) {
	s := &recordingScroller{err: errors.New("element detached")}
	bar := New(sections.Default(), s, WithLogger(quiet()))
	bar.SetWidth(375)
	bar.Toggle()

	err := bar.Activate("contact")
	assert.Error(t, err)
	assert.False(t, bar.OverlayOpen())
}

func TestActivateUnknownSection(t *testing.T) {
	s := &recordingScroller{}
	bar := New(sections.Default(), s, WithLogger(quiet()))
	bar.SetWidth(375)
	bar.Toggle()

	err := bar.Activate("home")
	assert.ErrorIs(t, err, ErrUnknownSection)
	assert.Empty(t, s.calls)
	assert.False(t, bar.OverlayOpen())
}

func TestOverlayIndependentOfScroll(t *testing.T) {
	reg := sections.Default()
	doc := &fixedDoc{rects: map[string]layout.Rect{}}
	tracker := scroll.New(reg, doc, scroll.WithLogger(quiet()))
	var bus scroll.Bus

	bar := New(reg, &recordingScroller{}, WithLogger(quiet()))
	defer bar.Mount(tracker, &bus)()
	bar.SetWidth(600)
	bar.Toggle()

	doc.y = 900
	bus.Emit()
	assert.True(t, bar.OverlayOpen())
	assert.True(t, bar.View().Chrome)
}

func TestWideningClosesOverlay(t *testing.T) {
	bar := New(sections.Default(), &recordingScroller{})
	bar.SetWidth(500)
	bar.Toggle()
	bar.SetWidth(1280)
	assert.False(t, bar.Mobile())
	assert.False(t, bar.OverlayOpen())
}

func TestStatic(t *testing.T) {
	v := Static(sections.Default(), scroll.State{ActiveAnchorID: "about"},
		WithBrand("Ajith Koli"), WithResume("/resume.pdf"))
	assert.Equal(t, "Ajith Koli", v.Brand)
	assert.Equal(t, "/resume.pdf", v.ResumeHref)
	assert.True(t, v.Links[0].Active)
	assert.False(t, v.Mobile)
}
