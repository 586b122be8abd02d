// Package sections holds the ordered list of navigable page sections. The
// navigation bar renders it and the scroll tracker walks it; both must see
// the same order.
package sections

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyAnchor     = errors.New("sections: empty anchor id")
	ErrDuplicateAnchor = errors.New("sections: duplicate anchor id")
)

// Descriptor names one section: the nav label and the element id it scrolls to.
type Descriptor struct {
	Label    string `json:"label"`
	AnchorID string `json:"anchorId"`
}

// Href returns the in-page link for the section.
func (d Descriptor) Href() string {
	return "#" + d.AnchorID
}

// Registry is an immutable, ordered set of descriptors. The order is both
// display order and the tie-break order for active-section detection.
type Registry struct {
	items []Descriptor
	index map[string]int
}

// New builds a registry. Anchor ids must be non-empty and unique.
func New(items ...Descriptor) (*Registry, error) {
	r := &Registry{
		items: make([]Descriptor, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, d := range items {
		if d.AnchorID == "" {
			return nil, fmt.Errorf("%w: label %q", ErrEmptyAnchor, d.Label)
		}
		if _, ok := r.index[d.AnchorID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAnchor, d.AnchorID)
		}
		r.index[d.AnchorID] = len(r.items)
		r.items = append(r.items, d)
	}
	return r, nil
}

// MustNew is New for static registries known to be valid.
func MustNew(items ...Descriptor) *Registry {
	r, err := New(items...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the portfolio's six sections.
func Default() *Registry {
	return MustNew(
		Descriptor{Label: "About", AnchorID: "about"},
		Descriptor{Label: "Education", AnchorID: "education"},
		Descriptor{Label: "Skills", AnchorID: "skills"},
		Descriptor{Label: "Projects", AnchorID: "projects"},
		Descriptor{Label: "Activities", AnchorID: "activities"},
		Descriptor{Label: "Contact", AnchorID: "contact"},
	)
}

// All returns a copy of the descriptors in registry order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of sections.
func (r *Registry) Len() int {
	return len(r.items)
}

// Lookup finds a section by anchor id.
func (r *Registry) Lookup(anchorID string) (Descriptor, bool) {
	i, ok := r.index[anchorID]
	if !ok {
		return Descriptor{}, false
	}
	return r.items[i], true
}

// Contains reports whether anchorID names a registered section.
func (r *Registry) Contains(anchorID string) bool {
	_, ok := r.index[anchorID]
	return ok
}

// AnchorIDs returns the ids in registry order.
func (r *Registry) AnchorIDs() []string {
	ids := make([]string, len(r.items))
	for i, d := range r.items {
		ids[i] = d.AnchorID
	}
	return ids
}
