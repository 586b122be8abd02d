package contact

import "time"

// Severity selects the notification style.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is the toast shown after a submit attempt.
type Notification struct {
	Open     bool
	Message  string
	Severity Severity
	ShownAt  time.Time
	// AutoHide is how long after ShownAt the toast closes by itself.
	AutoHide time.Duration
}

// ExpiresAt returns when the toast closes on its own.
func (n Notification) ExpiresAt() time.Time {
	return n.ShownAt.Add(n.AutoHide)
}

// Visible reports whether the toast is open at now.
func (n Notification) Visible(now time.Time) bool {
	return n.Open && now.Before(n.ExpiresAt())
}

// show must be called with f.mu held.
func (f *Form) show(message string, sev Severity) {
	f.note = Notification{
		Open:     true,
		Message:  message,
		Severity: sev,
		ShownAt:  f.now(),
		AutoHide: f.autoHide,
	}
}

// Notification returns the current toast. An expired toast is reported
// closed.
func (f *Form) Notification() Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.note
	if !n.Visible(f.now()) {
		n.Open = false
	}
	return n
}

// Dismiss closes the toast early.
func (f *Form) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.note.Open = false
}
