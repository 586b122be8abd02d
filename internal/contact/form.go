// Package contact implements the contact form: local field state,
// validation, the hand-off to the email-delivery collaborator and the
// transient notification shown afterwards.
//
// A submission moves Editing → Validating → Sending → Editing. Validation
// failures return to Editing without sending. A successful send clears the
// fields and a failed one keeps them so the visitor can retry.
package contact

//go:generate mockgen -source=form.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StatusOK is the collaborator's success status.
const StatusOK = "OK"

// DefaultAutoHide is how long a notification stays open.
const DefaultAutoHide = 6 * time.Second

const (
	msgEmpty   = "Please fill in all fields"
	msgInvalid = "Please enter a valid email address"
	msgSent    = "Message sent successfully!"
	msgFailed  = "Failed to send message. Please try again."
)

// Message is what gets handed to the Sender.
type Message struct {
	// ID correlates logs for one submission.
	ID string
	Values
}

// Sender delivers a message and returns the provider's status text.
type Sender interface {
	Send(ctx context.Context, msg Message) (status string, err error)
}

// Phase is the form's position in the submission cycle.
type Phase int

const (
	Editing Phase = iota
	Validating
	Sending
)

func (p Phase) String() string {
	switch p {
	case Editing:
		return "editing"
	case Validating:
		return "validating"
	case Sending:
		return "sending"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Outcome is how a Submit call ended.
type Outcome int

const (
	// Ignored means another submission was in flight.
	Ignored Outcome = iota
	Rejected
	Sent
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Rejected:
		return "rejected"
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Recorder observes submission outcomes, for metrics.
type Recorder interface {
	RecordSubmission(outcome Outcome, sendDuration time.Duration)
}

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) { f.logger = l }
}

// WithClock replaces time.Now, for notification expiry.
func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.now = now }
}

// WithAutoHide overrides DefaultAutoHide.
func WithAutoHide(d time.Duration) Option {
	return func(f *Form) { f.autoHide = d }
}

// WithRecorder attaches a Recorder.
func WithRecorder(r Recorder) Option {
	return func(f *Form) { f.recorder = r }
}

// WithIDs replaces the submission id generator.
func WithIDs(next func() string) Option {
	return func(f *Form) { f.newID = next }
}

// WithValues seeds the fields, as when a form post arrives.
func WithValues(v Values) Option {
	return func(f *Form) { f.values = v }
}

type Form struct {
	sender   Sender
	logger   *slog.Logger
	now      func() time.Time
	autoHide time.Duration
	recorder Recorder
	newID    func() string

	mu     sync.Mutex
	values Values
	phase  Phase
	note   Notification
}

// New returns an empty form in the Editing phase.
func New(sender Sender, opts ...Option) (*Form, error) {
	if sender == nil {
		return nil, errors.New("contact: sender is required")
	}
	f := &Form{
		sender:   sender,
		logger:   slog.Default(),
		now:      time.Now,
		autoHide: DefaultAutoHide,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Set updates one field.
func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.set(field, value)
}

// Values returns the current field values.
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Phase returns the current phase.
func (f *Form) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// Pending reports whether a submission is being validated or sent. The
// submit control should be disabled while it is.
func (f *Form) Pending() bool {
	return f.Phase() != Editing
}

// Submit validates the fields and, if they pass, sends them exactly as
// entered. Escaping is left to whatever renders them. Only one
// submission runs at a time: a call made while another is pending returns
// Ignored and ErrSubmitPending without touching the sender or the
// notification. The send is not retried and not cancelled beyond ctx.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	if f.phase != Editing {
		f.mu.Unlock()
		return Ignored, ErrSubmitPending
	}
	f.phase = Validating
	values := f.values
	f.mu.Unlock()

	if err := Validate(values); err != nil {
		msg := msgEmpty
		if errors.Is(err, ErrInvalidEmail) {
			msg = msgInvalid
		}
		f.finish(func() { f.show(msg, SeverityError) })
		f.record(Rejected, 0)
		return Rejected, err
	}

	f.mu.Lock()
	f.phase = Sending
	f.mu.Unlock()

	msg := Message{ID: f.newID(), Values: values}
	start := f.now()
	status, err := f.send(ctx, msg)
	elapsed := f.now().Sub(start)

	if err == nil && status == StatusOK {
		f.finish(func() {
			f.values = Values{}
			f.show(msgSent, SeveritySuccess)
		})
		f.logger.Info("contact: message sent", "submission", msg.ID, "duration", elapsed)
		f.record(Sent, elapsed)
		return Sent, nil
	}

	if err == nil {
		err = fmt.Errorf("%w: status %q", ErrSendFailed, status)
	} else {
		err = fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	f.finish(func() { f.show(msgFailed, SeverityError) })
	f.logger.Error("contact: send failed", "submission", msg.ID, "error", err)
	f.record(Failed, elapsed)
	return Failed, err
}

// send calls the collaborator, turning a panic into an error so the form
// always returns to Editing.
func (f *Form) send(ctx context.Context, msg Message) (status string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sender panicked: %v", r)
		}
	}()
	return f.sender.Send(ctx, msg)
}

func (f *Form) finish(update func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	update()
	f.phase = Editing
}

func (f *Form) record(o Outcome, d time.Duration) {
	if f.recorder != nil {
		f.recorder.RecordSubmission(o, d)
	}
}
