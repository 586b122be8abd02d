package scroll

import "sync"

// Bus is an in-process Signal. Emit fans a scroll event out to every
// registered listener in registration order.
type Bus struct {
	mu        sync.Mutex
	listeners []*listener
}

type listener struct {
	fn func()
}

func (b *Bus) OnScroll(fn func()) (remove func()) {
	l := &listener{fn: fn}
	b.mu.Lock()
	b.listeners = append(b.listeners, l)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, cur := range b.listeners {
			if cur == l {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers one scroll event.
func (b *Bus) Emit() {
	b.mu.Lock()
	fns := make([]func(), len(b.listeners))
	for i, l := range b.listeners {
		fns[i] = l.fn
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Listeners returns the number of registered listeners.
func (b *Bus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
