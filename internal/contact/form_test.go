package contact_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ajithkoli/portfolio/internal/contact"
	"github.com/ajithkoli/portfolio/internal/contact/mocks"
)

// =============================================================================
// Contact Form Test Suite
// =============================================================================
// Covers the submission cycle against a mocked delivery collaborator:
// pre-flight rejection never reaches the sender, a success clears the
// fields, a failure keeps them, and a pending send blocks re-entry.

type FormSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	sender   *mocks.MockSender
	recorder *mocks.MockRecorder
	now      time.Time
	form     *contact.Form
}

func TestFormSuite(t *testing.T) {
	suite.Run(t, new(FormSuite))
}

func (s *FormSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sender = mocks.NewMockSender(s.ctrl)
	s.recorder = mocks.NewMockRecorder(s.ctrl)
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.form = s.newForm()
}

func (s *FormSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FormSuite) newForm(opts ...contact.Option) *contact.Form {
	base := []contact.Option{
		contact.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		contact.WithClock(func() time.Time { return s.now }),
		contact.WithIDs(func() string { return "sub-1" }),
		contact.WithRecorder(s.recorder),
	}
	f, err := contact.New(s.sender, append(base, opts...)...)
	s.Require().NoError(err)
	return f
}

func validValues() contact.Values {
	return contact.Values{
		Name:    "Priya Shah",
		Email:   "priya@example.com",
		Subject: "Internship",
		Message: "Would love to chat about your IoT work.",
	}
}

func (s *FormSuite) fill(v contact.Values) {
	for _, f := range contact.Fields {
		s.Require().NoError(s.form.Set(f, v.Get(f)))
	}
}

// =============================================================================
// Validation
// =============================================================================

func (s *FormSuite) TestEmptyFieldNeverSends() {
	for _, missing := range contact.Fields {
		s.Run(string(missing), func() {
			s.SetupTest()
			v := validValues()
			s.fill(v)
			s.Require().NoError(s.form.Set(missing, ""))

			s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
			s.recorder.EXPECT().RecordSubmission(contact.Rejected, time.Duration(0))

			outcome, err := s.form.Submit(context.Background())
			s.Equal(contact.Rejected, outcome)
			s.ErrorIs(err, contact.ErrEmptyField)

			var fe *contact.FieldError
			s.Require().ErrorAs(err, &fe)
			s.Equal(missing, fe.Field)

			n := s.form.Notification()
			s.True(n.Open)
			s.Equal(contact.SeverityError, n.Severity)
			s.Equal("Please fill in all fields", n.Message)
			s.Equal(contact.Editing, s.form.Phase())
			s.Equal(missing, firstEmpty(s.form.Values()))
		})
	}
}

func firstEmpty(v contact.Values) contact.Field {
	for _, f := range contact.Fields {
		if v.Get(f) == "" {
			return f
		}
	}
	return ""
}

func (s *FormSuite) TestInvalidEmailNeverSends() {
	v := validValues()
	v.Email = "not-an-email"
	s.fill(v)

	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
	s.recorder.EXPECT().RecordSubmission(contact.Rejected, time.Duration(0))

	outcome, err := s.form.Submit(context.Background())
	s.Equal(contact.Rejected, outcome)
	s.ErrorIs(err, contact.ErrInvalidEmail)
	s.Equal("Please enter a valid email address", s.form.Notification().Message)
	s.Equal(v, s.form.Values())
}

func (s *FormSuite) TestMarkupOnlyFieldIsNotEmpty() {
	v := validValues()
	v.Subject = "<b></b>"
	s.fill(v)

	s.sender.EXPECT().
		Send(gomock.Any(), gomock.Eq(contact.Message{ID: "sub-1", Values: v})).
		Return(contact.StatusOK, nil)
	s.recorder.EXPECT().RecordSubmission(contact.Sent, gomock.Any())

	outcome, err := s.form.Submit(context.Background())
	s.Require().NoError(err)
	s.Equal(contact.Sent, outcome)
}

func (s *FormSuite) TestEmailWithSurroundingSpaceIsInvalid() {
	for _, email := range []string{" bo@x.io", "bo@x.io "} {
		s.Run(email, func() {
			s.form = s.newForm()
			v := validValues()
			v.Email = email
			s.fill(v)

			s.recorder.EXPECT().RecordSubmission(contact.Rejected, time.Duration(0))

			outcome, err := s.form.Submit(context.Background())
			s.Equal(contact.Rejected, outcome)
			s.ErrorIs(err, contact.ErrInvalidEmail)
			s.Equal(v, s.form.Values())
		})
	}
}

// =============================================================================
// Sending
// =============================================================================

func (s *FormSuite) TestSuccessClearsFields() {
	v := validValues()
	s.fill(v)

	s.sender.EXPECT().
		Send(gomock.Any(), contact.Message{ID: "sub-1", Values: v}).
		Return(contact.StatusOK, nil)
	s.recorder.EXPECT().RecordSubmission(contact.Sent, gomock.Any())

	outcome, err := s.form.Submit(context.Background())
	s.Require().NoError(err)
	s.Equal(contact.Sent, outcome)
	s.True(s.form.Values().IsZero())

	n := s.form.Notification()
	s.True(n.Open)
	s.Equal(contact.SeveritySuccess, n.Severity)
	s.Equal("Message sent successfully!", n.Message)
	s.Equal(contact.Editing, s.form.Phase())
}

func (s *FormSuite) TestNonOKStatusKeepsFields() {
	v := validValues()
	s.fill(v)

	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("Bad Request", nil)
	s.recorder.EXPECT().RecordSubmission(contact.Failed, gomock.Any())

	outcome, err := s.form.Submit(context.Background())
	s.Equal(contact.Failed, outcome)
	s.ErrorIs(err, contact.ErrSendFailed)
	s.Equal(v, s.form.Values())

	n := s.form.Notification()
	s.Equal(contact.SeverityError, n.Severity)
	s.Equal("Failed to send message. Please try again.", n.Message)
}

func (s *FormSuite) TestSenderErrorKeepsFields() {
	v := validValues()
	s.fill(v)
	boom := errors.New("connection reset")

	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", boom)
	s.recorder.EXPECT().RecordSubmission(contact.Failed, gomock.Any())

	outcome, err := s.form.Submit(context.Background())
	s.Equal(contact.Failed, outcome)
	s.ErrorIs(err, contact.ErrSendFailed)
	s.ErrorIs(err, boom)
	s.Equal(v, s.form.Values())
	s.Equal(contact.Editing, s.form.Phase())
}

func (s *FormSuite) TestSenderPanicIsAFailure() {
	s.fill(validValues())

	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, contact.Message) (string, error) { panic("sdk bug") })
	s.recorder.EXPECT().RecordSubmission(contact.Failed, gomock.Any())

	outcome, err := s.form.Submit(context.Background())
	s.Equal(contact.Failed, outcome)
	s.ErrorIs(err, contact.ErrSendFailed)
	s.Equal(contact.Editing, s.form.Phase())
}

func (s *FormSuite) TestSenderGetsValuesVerbatim() {
	v := contact.Values{
		Name:    "  Priya <script>alert(1)</script>Shah ",
		Email:   "priya@example.com",
		Subject: "Tom & Jerry",
		Message: "func Map[T any](xs []T) uses <T any> and a<b && c>d",
	}
	s.fill(v)

	s.sender.EXPECT().
		Send(gomock.Any(), gomock.Eq(contact.Message{ID: "sub-1", Values: v})).
		Return(contact.StatusOK, nil)
	s.recorder.EXPECT().RecordSubmission(contact.Sent, gomock.Any())

	outcome, err := s.form.Submit(context.Background())
	s.Require().NoError(err)
	s.Equal(contact.Sent, outcome)
}

// =============================================================================
// Re-entrance
// =============================================================================

func (s *FormSuite) TestSecondSubmitWhilePendingIsIgnored() {
	s.fill(validValues())

	entered := make(chan struct{})
	release := make(chan struct{})
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, contact.Message) (string, error) {
			close(entered)
			<-release
			return contact.StatusOK, nil
		}).Times(1)
	s.recorder.EXPECT().RecordSubmission(contact.Sent, gomock.Any())

	done := make(chan contact.Outcome)
	go func() {
		o, _ := s.form.Submit(context.Background())
		done <- o
	}()
	<-entered

	s.True(s.form.Pending())
	outcome, err := s.form.Submit(context.Background())
	s.Equal(contact.Ignored, outcome)
	s.ErrorIs(err, contact.ErrSubmitPending)

	close(release)
	s.Equal(contact.Sent, <-done)
	s.False(s.form.Pending())
}

// =============================================================================
// Notification
// =============================================================================

func (s *FormSuite) TestNotificationAutoHides() {
	s.recorder.EXPECT().RecordSubmission(contact.Rejected, time.Duration(0))
	_, _ = s.form.Submit(context.Background())
	s.True(s.form.Notification().Open)

	s.now = s.now.Add(contact.DefaultAutoHide - time.Millisecond)
	s.True(s.form.Notification().Open)

	s.now = s.now.Add(time.Millisecond)
	s.False(s.form.Notification().Open)
}

func (s *FormSuite) TestNotificationDismiss() {
	s.recorder.EXPECT().RecordSubmission(contact.Rejected, time.Duration(0))
	_, _ = s.form.Submit(context.Background())
	s.form.Dismiss()
	s.False(s.form.Notification().Open)
}

func (s *FormSuite) TestNewRequiresSender() {
	_, err := contact.New(nil)
	s.Error(err)
}

func (s *FormSuite) TestUnknownField() {
	s.ErrorIs(s.form.Set("phone", "123"), contact.ErrUnknownField)
}
