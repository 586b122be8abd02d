// Package scroll tracks the page scroll position and derives the navbar
// state from it: whether the page has left the top, and which section sits
// under the detection line.
//
// The Tracker is the only writer of State. Consumers subscribe and receive
// copies.
package scroll

import (
	"log/slog"
	"sync"

	"github.com/ajithkoli/portfolio/internal/layout"
	"github.com/ajithkoli/portfolio/internal/sections"
)

const (
	// DefaultThreshold is the scroll offset, in pixels, past which the navbar
	// switches to its opaque chrome. An offset equal to it is not past.
	DefaultThreshold = 50.0
	// DefaultDetectionLine is the offset from the viewport top that a section
	// must straddle to be active.
	DefaultDetectionLine = 100.0
)

// Document is the page the tracker measures.
type Document interface {
	ScrollY() float64
	// ElementRect returns the bounding box of the element with the given id.
	// ok is false when no such element is mounted.
	ElementRect(id string) (r layout.Rect, ok bool)
}

// Signal is the page-wide scroll event stream.
type Signal interface {
	// OnScroll registers fn and returns a function removing it.
	OnScroll(fn func()) (remove func())
}

// State is the derived scroll state. ActiveAnchorID is empty when no
// section straddles the detection line.
type State struct {
	ScrolledPastThreshold bool   `json:"scrolledPastThreshold"`
	ActiveAnchorID        string `json:"activeAnchorId"`
}

// HasActive reports whether a section is highlighted.
func (s State) HasActive() bool {
	return s.ActiveAnchorID != ""
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(px float64) Option {
	return func(t *Tracker) { t.threshold = px }
}

// WithDetectionLine overrides DefaultDetectionLine.
func WithDetectionLine(px float64) Option {
	return func(t *Tracker) { t.detectionLine = px }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

type Tracker struct {
	registry      *sections.Registry
	doc           Document
	threshold     float64
	detectionLine float64
	logger        *slog.Logger

	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	nextID int
	remove func()
}

// New creates a detached tracker. Call Attach to start listening.
func New(registry *sections.Registry, doc Document, opts ...Option) *Tracker {
	t := &Tracker{
		registry:      registry,
		doc:           doc,
		threshold:     DefaultThreshold,
		detectionLine: DefaultDetectionLine,
		logger:        slog.Default(),
		subs:          make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Attach registers the tracker's single listener on sig and returns the
// release function. Attaching an already attached tracker returns a release
// that does nothing; the first release wins. The release is safe to call more
// than once, so callers can defer it on every exit path.
func (t *Tracker) Attach(sig Signal) (release func()) {
	t.mu.Lock()
	if t.remove != nil {
		t.mu.Unlock()
		return func() {}
	}
	remove := sig.OnScroll(t.HandleScroll)
	t.remove = remove
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if t.remove != nil {
				t.remove()
				t.remove = nil
			}
		})
	}
}

// Attached reports whether the scroll listener is registered.
func (t *Tracker) Attached() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remove != nil
}

// HandleScroll recomputes the state from the document and publishes it to
// subscribers when it changed.
func (t *Tracker) HandleScroll() {
	next := State{
		ScrolledPastThreshold: t.doc.ScrollY() > t.threshold,
		ActiveAnchorID:        t.activeSection(),
	}

	t.mu.Lock()
	if next == t.state {
		t.mu.Unlock()
		return
	}
	t.state = next
	subs := make([]func(State), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// activeSection walks the registry in order and returns the first section
// straddling the detection line. Unmounted anchors are skipped.
func (t *Tracker) activeSection() string {
	for _, d := range t.registry.All() {
		rect, ok := t.doc.ElementRect(d.AnchorID)
		if !ok {
			t.logger.Debug("scroll: anchor not mounted", "anchor", d.AnchorID)
			continue
		}
		if rect.Straddles(t.detectionLine) {
			return d.AnchorID
		}
	}
	return ""
}

// State returns the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Subscribe registers fn for state changes and returns a cancel function.
// fn is not called with the current state; read State for that.
func (t *Tracker) Subscribe(fn func(State)) (cancel func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}
