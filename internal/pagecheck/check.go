// Package pagecheck drives the scroll tracker, navbar and entrance observers
// against a rendered page. It sweeps the page top to bottom, then jumps to
// every section through the navbar, and reports what each component saw.
package pagecheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/ajithkoli/portfolio/internal/layout"
	"github.com/ajithkoli/portfolio/internal/navbar"
	"github.com/ajithkoli/portfolio/internal/scroll"
	"github.com/ajithkoli/portfolio/internal/sections"
	"github.com/ajithkoli/portfolio/internal/viewport"
)

// HeroID is the landing section. It has entrance animations but no nav link.
const HeroID = "home"

// Sweep defaults, in CSS pixels.
const (
	DefaultStep   = 200
	DefaultWidth  = 1280
	DefaultHeight = 800
)

// ErrNoElement is returned when an anchor has no element on the page.
var ErrNoElement = errors.New("pagecheck: no element with that id")

// Frame is one measurement of the page.
type Frame struct {
	ScrollY   float64                `json:"scrollY"`
	Width     float64                `json:"width"`
	Height    float64                `json:"height"`
	DocHeight float64                `json:"docHeight"`
	Rects     map[string]layout.Rect `json:"rects"`
}

func (f Frame) Viewport() layout.Viewport {
	return layout.Viewport{Width: f.Width, Height: f.Height}
}

// MaxScroll is the largest reachable scroll offset.
func (f Frame) MaxScroll() float64 {
	return max(0, f.DocHeight-f.Height)
}

// Page is a live document that can be scrolled and measured.
type Page interface {
	ScrollTo(ctx context.Context, y float64) error
	ScrollIntoView(ctx context.Context, id string) error
	Measure(ctx context.Context, ids []string) (Frame, error)
}

// Step is the state after scrolling to ScrollY.
type Step struct {
	ScrollY  float64  `json:"scrollY"`
	Scrolled bool     `json:"scrolled"`
	Active   string   `json:"active"`
	Visible  []string `json:"visible"`
}

// Jump is the result of activating one nav link.
type Jump struct {
	Target        string `json:"target"`
	Active        string `json:"active"`
	OverlayClosed bool   `json:"overlayClosed"`
	Err           string `json:"error,omitempty"`
}

// OK reports whether the link landed on its section with the overlay shut.
func (j Jump) OK() bool {
	return j.Err == "" && j.Active == j.Target && j.OverlayClosed
}

type Report struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Mobile bool `json:"mobile"`

	Steps []Step `json:"steps"`
	Jumps []Jump `json:"jumps"`

	// Missing lists registry anchors with no element on the page.
	Missing     []string `json:"missing,omitempty"`
	// NeverActive lists sections the sweep never highlighted.
	NeverActive []string `json:"neverActive,omitempty"`
	// Unrevealed lists sections whose entrance never latched.
	Unrevealed  []string `json:"unrevealed,omitempty"`
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	if len(r.Missing) > 0 || len(r.NeverActive) > 0 || len(r.Unrevealed) > 0 {
		return false
	}
	for _, j := range r.Jumps {
		if !j.OK() {
			return false
		}
	}
	return true
}

type Options struct {
	Step   float64
	Width  int
	Height int
	Logger *slog.Logger
}

// Run sweeps page and activates every registry link in turn.
func Run(ctx context.Context, page Page, reg *sections.Registry, opts Options) (Report, error) {
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	log := opts.Logger

	ids := append([]string{HeroID}, reg.AnchorIDs()...)
	doc := &frameDoc{}
	bus := &scroll.Bus{}
	feed := viewport.NewFeed()

	tracker := scroll.New(reg, doc, scroll.WithLogger(log))
	bar := navbar.New(reg, pageScroller{ctx: ctx, page: page}, navbar.WithLogger(log))
	bar.SetWidth(opts.Width)
	unmount := bar.Mount(tracker, bus)
	defer unmount()

	arena := viewport.NewArena(feed, log)
	defer arena.Close()
	for _, id := range ids {
		if _, err := arena.Mount(id, viewport.DefaultConfig); err != nil {
			return Report{}, fmt.Errorf("pagecheck: observe %q: %w", id, err)
		}
	}

	refresh := func() (Frame, error) {
		f, err := page.Measure(ctx, ids)
		if err != nil {
			return Frame{}, fmt.Errorf("pagecheck: measure: %w", err)
		}
		doc.set(f)
		bus.Emit()
		feed.Measure(f.Viewport(), doc.ElementRect)
		return f, nil
	}

	rep := Report{Width: opts.Width, Height: opts.Height, Mobile: bar.Mobile()}

	if err := page.ScrollTo(ctx, 0); err != nil {
		return rep, fmt.Errorf("pagecheck: scroll to top: %w", err)
	}
	first, err := refresh()
	if err != nil {
		return rep, err
	}
	for _, id := range ids {
		if _, ok := first.Rects[id]; !ok {
			rep.Missing = append(rep.Missing, id)
		}
	}

	seen := make(map[string]bool)
	for _, y := range offsets(first.MaxScroll(), opts.Step) {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if err := page.ScrollTo(ctx, y); err != nil {
			return rep, fmt.Errorf("pagecheck: scroll to %v: %w", y, err)
		}
		f, err := refresh()
		if err != nil {
			return rep, err
		}
		st := tracker.State()
		if st.HasActive() {
			seen[st.ActiveAnchorID] = true
		}
		step := Step{ScrollY: f.ScrollY, Scrolled: st.ScrolledPastThreshold, Active: st.ActiveAnchorID}
		for _, id := range ids {
			if arena.Visible(id) {
				step.Visible = append(step.Visible, id)
			}
		}
		rep.Steps = append(rep.Steps, step)
	}

	for _, id := range reg.AnchorIDs() {
		if !seen[id] && !slices.Contains(rep.Missing, id) {
			rep.NeverActive = append(rep.NeverActive, id)
		}
	}
	for _, id := range ids {
		if !arena.Visible(id) && !slices.Contains(rep.Missing, id) {
			rep.Unrevealed = append(rep.Unrevealed, id)
		}
	}

	for _, id := range reg.AnchorIDs() {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if bar.Mobile() && !bar.OverlayOpen() {
			bar.Toggle()
		}
		j := Jump{Target: id}
		if err := bar.Activate(id); err != nil {
			j.Err = err.Error()
		}
		if _, err := refresh(); err != nil {
			return rep, err
		}
		j.Active = tracker.State().ActiveAnchorID
		j.OverlayClosed = !bar.OverlayOpen()
		if !j.OK() {
			log.Warn("pagecheck: link did not land", "target", id, "active", j.Active, "error", j.Err)
		}
		rep.Jumps = append(rep.Jumps, j)
	}

	return rep, nil
}

// offsets lists sweep positions from 0 to maxY, always ending on maxY.
func offsets(maxY, step float64) []float64 {
	var out []float64
	for y := 0.0; y < maxY; y += step {
		out = append(out, y)
	}
	return append(out, maxY)
}

// frameDoc serves the latest Frame as a scroll.Document.
type frameDoc struct {
	mu    sync.Mutex
	frame Frame
}

func (d *frameDoc) set(f Frame) {
	d.mu.Lock()
	d.frame = f
	d.mu.Unlock()
}

func (d *frameDoc) ScrollY() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame.ScrollY
}

func (d *frameDoc) ElementRect(id string) (layout.Rect, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, ok := d.frame.Rects[id]
	return r, ok
}

// pageScroller adapts Page to navbar.Scroller.
type pageScroller struct {
	ctx  context.Context
	page Page
}

func (s pageScroller) ScrollIntoView(id string) error {
	return s.page.ScrollIntoView(s.ctx, id)
}
