// Package navbar is the navigation bar's view model. It renders the section
// registry as links, reflects the scroll tracker's state, and handles link
// activation and the mobile overlay.
package navbar

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ajithkoli/portfolio/internal/scroll"
	"github.com/ajithkoli/portfolio/internal/sections"
)

// ErrUnknownSection is returned by Activate for an anchor not in the registry.
var ErrUnknownSection = errors.New("navbar: unknown section")

// DefaultBreakpoint is the width below which links collapse into the overlay.
const DefaultBreakpoint = 900

// Scroller moves the page to an anchor.
type Scroller interface {
	// ScrollIntoView smooth-scrolls to the element with the given id.
	ScrollIntoView(anchorID string) error
}

// Link is one rendered nav entry.
type Link struct {
	Label    string
	AnchorID string
	Href     string
	Active   bool
}

// View is everything a template needs to draw the bar.
type View struct {
	Brand       string
	ResumeHref  string
	Chrome      bool
	Mobile      bool
	OverlayOpen bool
	Links       []Link
}

// Option configures a Bar.
type Option func(*Bar)

// WithBreakpoint overrides DefaultBreakpoint.
func WithBreakpoint(px int) Option {
	return func(b *Bar) { b.breakpoint = px }
}

// WithBrand sets the logo text.
func WithBrand(name string) Option {
	return func(b *Bar) { b.brand = name }
}

// WithResume sets the résumé link.
func WithResume(href string) Option {
	return func(b *Bar) { b.resume = href }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Bar) { b.logger = l }
}

type Bar struct {
	registry   *sections.Registry
	scroller   Scroller
	breakpoint int
	brand      string
	resume     string
	logger     *slog.Logger

	mu          sync.Mutex
	state       scroll.State
	width       int
	overlayOpen bool
}

// New creates an unmounted bar. Until Mount it shows the zero scroll state.
func New(registry *sections.Registry, scroller Scroller, opts ...Option) *Bar {
	b := &Bar{
		registry:   registry,
		scroller:   scroller,
		breakpoint: DefaultBreakpoint,
		width:      DefaultBreakpoint,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Mount attaches tracker to sig and follows its state. The returned unmount
// detaches the listener and the subscription; defer it.
func (b *Bar) Mount(tracker *scroll.Tracker, sig scroll.Signal) (unmount func()) {
	cancel := tracker.Subscribe(b.apply)
	release := tracker.Attach(sig)
	b.apply(tracker.State())

	var once sync.Once
	return func() {
		once.Do(func() {
			release()
			cancel()
		})
	}
}

func (b *Bar) apply(s scroll.State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

// SetWidth records the viewport width. Crossing up past the breakpoint
// closes the overlay since it is no longer reachable.
func (b *Bar) SetWidth(px int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width = px
	if px >= b.breakpoint {
		b.overlayOpen = false
	}
}

// Mobile reports whether links are collapsed into the overlay.
func (b *Bar) Mobile() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width < b.breakpoint
}

// Toggle opens or closes the mobile overlay.
func (b *Bar) Toggle() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.overlayOpen = !b.overlayOpen
}

// OverlayOpen reports whether the mobile overlay is showing.
func (b *Bar) OverlayOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.overlayOpen
}

// Activate handles a click on the link for anchorID: it scrolls to the
// section and closes the overlay. The overlay closes even when the scroll
// fails or the anchor is unknown.
func (b *Bar) Activate(anchorID string) error {
	b.mu.Lock()
	b.overlayOpen = false
	b.mu.Unlock()

	if !b.registry.Contains(anchorID) {
		return fmt.Errorf("%w: %q", ErrUnknownSection, anchorID)
	}
	if err := b.scroller.ScrollIntoView(anchorID); err != nil {
		b.logger.Warn("navbar: scroll to section failed", "anchor", anchorID, "error", err)
		return fmt.Errorf("navbar: scroll to %q: %w", anchorID, err)
	}
	return nil
}

// View snapshots the bar for rendering.
func (b *Bar) View() View {
	b.mu.Lock()
	state := b.state
	v := View{
		Brand:       b.brand,
		ResumeHref:  b.resume,
		Chrome:      state.ScrolledPastThreshold,
		Mobile:      b.width < b.breakpoint,
		OverlayOpen: b.overlayOpen,
	}
	b.mu.Unlock()

	for _, d := range b.registry.All() {
		v.Links = append(v.Links, Link{
			Label:    d.Label,
			AnchorID: d.AnchorID,
			Href:     d.Href(),
			Active:   d.AnchorID == state.ActiveAnchorID,
		})
	}
	return v
}

// Static renders a view for a given state without mounting, as the server
// does for the first paint.
func Static(registry *sections.Registry, state scroll.State, opts ...Option) View {
	b := New(registry, nil, opts...)
	b.apply(state)
	return b.View()
}
