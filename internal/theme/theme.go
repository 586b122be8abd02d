// Package theme defines every visual token the templates consume as typed
// fields. Templates read them from the generated stylesheet's custom
// properties; Go code reads the struct directly (for example the navbar's
// mobile breakpoint).
package theme

import "fmt"

// ColorSet is one palette role with its tonal variants.
type ColorSet struct {
	Main  string
	Light string
	Dark  string
}

type Background struct {
	Default string
	Paper   string
}

type Text struct {
	Primary   string
	Secondary string
}

type Palette struct {
	Primary    ColorSet
	Secondary  ColorSet
	Background Background
	Text       Text
	Error      string
	Warning    string
	Info       string
	Success    string
	// Border is the translucent slate used on cards and inputs.
	Border string
}

// Heading styles one of h1..h6.
type Heading struct {
	Weight        int
	LetterSpacing string
	Color         string
}

type Typography struct {
	FontFamily        string
	MonoFontFamily    string
	Headings          [6]Heading
	BodyLetterSpacing string
	BodyColor         string
}

type Shape struct {
	BorderRadius     int
	CardBorderRadius int
}

// Breakpoints are minimum widths in pixels.
type Breakpoints struct {
	SM int
	MD int
	LG int
	XL int
}

type Motion struct {
	// EntranceMs is the duration of section entrance animations.
	EntranceMs int
	// NavbarMs is the chrome transition when the page leaves the top.
	NavbarMs int
	// ToastMs is how long a notification stays up.
	ToastMs int
}

type Theme struct {
	Palette     Palette
	Typography  Typography
	Shape       Shape
	SpacingUnit int
	Breakpoints Breakpoints
	Motion      Motion
}

// Default is the portfolio's light theme.
func Default() Theme {
	const (
		slate900 = "#0f172a"
		slate700 = "#334155"
	)
	return Theme{
		Palette: Palette{
			Primary:    ColorSet{Main: "#2563eb", Light: "#3b82f6", Dark: "#1d4ed8"},
			Secondary:  ColorSet{Main: "#7c3aed", Light: "#8b5cf6", Dark: "#6d28d9"},
			Background: Background{Default: "#f8fafc", Paper: "#ffffff"},
			Text:       Text{Primary: slate900, Secondary: slate700},
			Error:      "#dc2626",
			Warning:    "#d97706",
			Info:       "#0284c7",
			Success:    "#059669",
			Border:     "rgba(203, 213, 225, 0.4)",
		},
		Typography: Typography{
			FontFamily:     `"Inter", "Plus Jakarta Sans", "Roboto", "Helvetica", "Arial", sans-serif`,
			MonoFontFamily: `"Fira Code", monospace`,
			Headings: [6]Heading{
				{Weight: 700, LetterSpacing: "-0.02em", Color: slate900},
				{Weight: 600, LetterSpacing: "-0.01em", Color: slate900},
				{Weight: 600, LetterSpacing: "-0.01em", Color: slate900},
				{Weight: 500, LetterSpacing: "normal", Color: slate900},
				{Weight: 500, LetterSpacing: "normal", Color: slate900},
				{Weight: 500, LetterSpacing: "normal", Color: slate900},
			},
			BodyLetterSpacing: "0.01em",
			BodyColor:         slate700,
		},
		Shape:       Shape{BorderRadius: 8, CardBorderRadius: 12},
		SpacingUnit: 8,
		Breakpoints: Breakpoints{SM: 600, MD: 900, LG: 1200, XL: 1536},
		Motion:      Motion{EntranceMs: 500, NavbarMs: 300, ToastMs: 6000},
	}
}

// Spacing returns n spacing units as a CSS length.
func (t Theme) Spacing(n float64) string {
	return fmt.Sprintf("%gpx", n*float64(t.SpacingUnit))
}

// IsMobile reports whether a viewport width falls below the MD breakpoint,
// where the navbar collapses into an overlay.
func (t Theme) IsMobile(width int) bool {
	return width < t.Breakpoints.MD
}
