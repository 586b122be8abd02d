package viewport

import (
	"fmt"
	"log/slog"
	"sync"
)

// Arena owns one observer per mounted section, keyed by anchor id.
type Arena struct {
	src    Source
	logger *slog.Logger

	mu    sync.Mutex
	slots map[string]*Observer
}

// NewArena creates an arena backed by src. A nil src degrades every
// observer to "never visible".
func NewArena(src Source, logger *slog.Logger) *Arena {
	if logger == nil {
		logger = slog.Default()
	}
	return &Arena{src: src, logger: logger, slots: make(map[string]*Observer)}
}

// Mount creates the observer for a section. Mounting a section twice
// without unmounting it is an error. The observer is built without the
// arena lock held, so callbacks fired during subscription may call back
// into the arena.
func (a *Arena) Mount(id string, cfg Config, opts ...ObserverOption) (*Observer, error) {
	if _, ok := a.Observer(id); ok {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyMounted, id)
	}
	opts = append([]ObserverOption{WithLogger(a.logger)}, opts...)
	o, err := NewObserver(a.src, id, cfg, opts...)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	if _, ok := a.slots[id]; ok {
		a.mu.Unlock()
		o.Close()
		return nil, fmt.Errorf("%w: %q", ErrAlreadyMounted, id)
	}
	a.slots[id] = o
	a.mu.Unlock()
	return o, nil
}

// Unmount closes and forgets the section's observer. Unknown ids are ignored.
func (a *Arena) Unmount(id string) {
	a.mu.Lock()
	o, ok := a.slots[id]
	delete(a.slots, id)
	a.mu.Unlock()
	if ok {
		o.Close()
	}
}

// Observer returns the mounted observer for id.
func (a *Arena) Observer(id string) (*Observer, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	o, ok := a.slots[id]
	return o, ok
}

// Visible reports whether the section has played its entrance animation.
// Unmounted sections report false.
func (a *Arena) Visible(id string) bool {
	o, ok := a.Observer(id)
	return ok && o.InView()
}

// Mounted returns the number of live slots.
func (a *Arena) Mounted() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.slots)
}

// Close unmounts everything.
func (a *Arena) Close() {
	a.mu.Lock()
	slots := a.slots
	a.slots = make(map[string]*Observer)
	a.mu.Unlock()
	for _, o := range slots {
		o.Close()
	}
}
