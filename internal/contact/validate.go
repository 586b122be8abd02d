package contact

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrEmptyField    = errors.New("contact: empty field")
	ErrInvalidEmail  = errors.New("contact: invalid email")
	ErrSendFailed    = errors.New("contact: send failed")
	ErrSubmitPending = errors.New("contact: submission already in flight")
	ErrUnknownField  = errors.New("contact: unknown field")
)

// Field names a form input. The values double as the posted form keys.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// FieldError reports the first empty field. It matches ErrEmptyField.
type FieldError struct {
	Field Field
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("contact: %s is required", e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrEmptyField
}

// emailPattern is deliberately loose: something@something.something with no
// whitespace and a single @ per part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Values are the four inputs.
type Values struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

// Get returns the value of f.
func (v Values) Get(f Field) string {
	switch f {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldSubject:
		return v.Subject
	case FieldMessage:
		return v.Message
	}
	return ""
}

func (v *Values) set(f Field, value string) error {
	switch f {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldSubject:
		v.Subject = value
	case FieldMessage:
		v.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}

// IsZero reports whether every field is empty.
func (v Values) IsZero() bool {
	return v == Values{}
}

// Validate checks that every field is filled and the email looks like one.
// Empty fields are reported before a malformed email.
func Validate(v Values) error {
	for _, f := range Fields {
		if v.Get(f) == "" {
			return &FieldError{Field: f}
		}
	}
	if !emailPattern.MatchString(v.Email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, v.Email)
	}
	return nil
}
