// Package layout holds the page geometry shared by the scroll tracker and
// the viewport observers. All values are CSS pixels relative to the
// viewport's top-left corner, the same space getBoundingClientRect uses.
package layout

// Rect is an element's bounding box.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
}

// Width returns the horizontal extent, never negative.
func (r Rect) Width() float64 {
	if r.Right < r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the vertical extent, never negative.
func (r Rect) Height() float64 {
	if r.Bottom < r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// Area returns Width*Height.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Area() == 0
}

// Intersect returns the overlap of r and o. The result is empty when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Top:    max(r.Top, o.Top),
		Left:   max(r.Left, o.Left),
		Bottom: min(r.Bottom, o.Bottom),
		Right:  min(r.Right, o.Right),
	}
	if out.Bottom < out.Top || out.Right < out.Left {
		return Rect{}
	}
	return out
}

// Straddles reports whether the horizontal line at y crosses the rect,
// edges included.
func (r Rect) Straddles(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// Viewport is the visible window size.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect returns the viewport as a rect anchored at the origin.
func (v Viewport) Rect() Rect {
	return Rect{Right: v.Width, Bottom: v.Height}
}

// VisibleRatio returns the fraction of target's area inside the viewport,
// in [0,1]. A zero-area target is fully visible when its position lies inside
// the viewport, matching how browsers report zero-size elements.
func VisibleRatio(target Rect, vp Viewport) float64 {
	view := vp.Rect()
	if target.Empty() {
		if target.Top >= view.Top && target.Top <= view.Bottom &&
			target.Left >= view.Left && target.Left <= view.Right {
			return 1
		}
		return 0
	}
	visible := target.Intersect(view).Area()
	ratio := visible / target.Area()
	if ratio > 1 {
		return 1
	}
	return ratio
}
