package viewport

import (
	"sync"

	"github.com/ajithkoli/portfolio/internal/layout"
)

// Feed is an in-process Source. Callers push measurements with Publish or
// Measure; the feed routes them to the observers registered for each target.
type Feed struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func(Entry)
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[string]map[int]func(Entry))}
}

func (f *Feed) Observe(target string, fn func(Entry)) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	if f.subs[target] == nil {
		f.subs[target] = make(map[int]func(Entry))
	}
	f.subs[target][id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs[target], id)
		if len(f.subs[target]) == 0 {
			delete(f.subs, target)
		}
	}, nil
}

// Publish delivers e to every observer of e.Target.
func (f *Feed) Publish(e Entry) {
	f.mu.Lock()
	fns := make([]func(Entry), 0, len(f.subs[e.Target]))
	for _, fn := range f.subs[e.Target] {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(e)
	}
}

// Measure computes an entry for every observed target from rectOf and
// publishes it. Targets rectOf cannot find are skipped.
func (f *Feed) Measure(vp layout.Viewport, rectOf func(id string) (layout.Rect, bool)) {
	for _, target := range f.Targets() {
		r, ok := rectOf(target)
		if !ok {
			continue
		}
		f.Publish(EntryFor(target, r, vp))
	}
}

// Targets lists targets with at least one observer.
func (f *Feed) Targets() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.subs))
	for t := range f.subs {
		out = append(out, t)
	}
	return out
}

// Unsupported is a Source for environments without intersection detection.
type Unsupported struct{}

func (Unsupported) Observe(string, func(Entry)) (func(), error) {
	return nil, ErrUnsupported
}
