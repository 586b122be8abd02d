// Package viewport gates entrance animations on visibility. An Observer
// turns a generic intersection signal into an "in view" flag; with
// TriggerOnce the flag latches on the first hit and the underlying
// subscription is dropped.
package viewport

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ajithkoli/portfolio/internal/layout"
)

var (
	// ErrUnsupported is returned by a Source that cannot detect visibility in
	// the current environment. Observers treat it as "never visible".
	ErrUnsupported    = errors.New("viewport: intersection detection unsupported")
	ErrBadThreshold   = errors.New("viewport: threshold must be within [0,1]")
	ErrAlreadyMounted = errors.New("viewport: section already mounted")
)

// DefaultConfig is what every content section uses.
var DefaultConfig = Config{TriggerOnce: true, Threshold: 0.1}

// Config controls one observer.
type Config struct {
	TriggerOnce bool
	// Threshold is the minimum visible fraction of the target's area.
	Threshold float64
}

func (c Config) validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: %v", ErrBadThreshold, c.Threshold)
	}
	return nil
}

// Entry is one intersection report for a target.
type Entry struct {
	Target string
	Ratio  float64
}

// EntryFor measures target against the viewport.
func EntryFor(target string, r layout.Rect, vp layout.Viewport) Entry {
	return Entry{Target: target, Ratio: layout.VisibleRatio(r, vp)}
}

// Source delivers intersection entries for a target element.
type Source interface {
	// Observe starts reporting entries for target. cancel stops it.
	Observe(target string, fn func(Entry)) (cancel func(), err error)
}

// State is the latch state of an observer.
type State int

const (
	NotYetVisible State = iota
	Visible
)

func (s State) String() string {
	switch s {
	case NotYetVisible:
		return "not-yet-visible"
	case Visible:
		return "visible"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Observer reports whether its target is in view.
type Observer struct {
	target   string
	cfg      Config
	logger   *slog.Logger
	onChange func(bool)

	mu       sync.Mutex
	inView   bool
	state    State
	cancel   func()
	degraded bool
	closed   bool
}

// ObserverOption configures an Observer.
type ObserverOption func(*Observer)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) ObserverOption {
	return func(o *Observer) { o.logger = l }
}

// OnChange registers a callback fired whenever InView changes.
func OnChange(fn func(inView bool)) ObserverOption {
	return func(o *Observer) { o.onChange = fn }
}

// NewObserver subscribes to src for target. A nil src, or one returning
// ErrUnsupported, yields an observer that never reports visible; any other
// subscription error is returned.
func NewObserver(src Source, target string, cfg Config, opts ...ObserverOption) (*Observer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	o := &Observer{
		target: target,
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if src == nil {
		o.degrade()
		return o, nil
	}
	cancel, err := src.Observe(target, o.handle)
	if errors.Is(err, ErrUnsupported) {
		o.degrade()
		return o, nil
	}
	if err != nil {
		return nil, fmt.Errorf("viewport: observe %q: %w", target, err)
	}

	o.mu.Lock()
	if o.closed {
		// Latched synchronously during Observe.
		o.mu.Unlock()
		cancel()
		return o, nil
	}
	o.cancel = cancel
	o.mu.Unlock()
	return o, nil
}

func (o *Observer) degrade() {
	o.degraded = true
	o.logger.Debug("viewport: detection unavailable, entrance animation disabled", "target", o.target)
}

func (o *Observer) qualifies(ratio float64) bool {
	if o.cfg.Threshold == 0 {
		return ratio > 0
	}
	return ratio >= o.cfg.Threshold
}

func (o *Observer) handle(e Entry) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	next := o.qualifies(e.Ratio)
	if next == o.inView {
		o.mu.Unlock()
		return
	}
	o.inView = next
	var cancel func()
	if next {
		o.state = Visible
		if o.cfg.TriggerOnce {
			o.closed = true
			cancel, o.cancel = o.cancel, nil
		}
	}
	onChange := o.onChange
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if onChange != nil {
		onChange(next)
	}
}

// InView reports the current flag. With TriggerOnce it never returns to
// false once true.
func (o *Observer) InView() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inView
}

// State returns the latch state. It records whether the target has ever been
// visible, regardless of TriggerOnce.
func (o *Observer) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Degraded reports whether the observer runs without a detection source.
func (o *Observer) Degraded() bool {
	return o.degraded
}

// Active reports whether the observer still holds a subscription.
func (o *Observer) Active() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cancel != nil
}

// Close drops the subscription. The flag keeps its last value.
func (o *Observer) Close() {
	o.mu.Lock()
	o.closed = true
	cancel := o.cancel
	o.cancel = nil
	o.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
