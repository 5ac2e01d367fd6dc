package services

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"signup-cards/pkg/models"
)

// Kind names the rule a draft violated
type Kind string

const (
	InvalidFirstName   Kind = "InvalidFirstName"
	InvalidLastName    Kind = "InvalidLastName"
	InvalidEmail       Kind = "InvalidEmail"
	InvalidPhoneNumber Kind = "InvalidPhoneNumber"
)

var (
	ErrInvalidFirstName   = errors.New("invalid first name")
	ErrInvalidLastName    = errors.New("invalid last name")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Title is the heading of the notice shown for this kind
func (k Kind) Title() string {
	switch k {
	case InvalidFirstName:
		return "Invalid First Name"
	case InvalidLastName:
		return "Invalid Last Name"
	case InvalidEmail:
		return "Invalid Email"
	case InvalidPhoneNumber:
		return "Invalid Phone Number"
	}
	return string(k)
}

// Message explains the rule to the user
func (k Kind) Message() string {
	switch k {
	case InvalidFirstName:
		return "First name should contain only alphabets and must not start with a space."
	case InvalidLastName:
		return "Last name should contain only alphabets and must not start with a space."
	case InvalidEmail:
		return "Email must contain @gmail.com."
	case InvalidPhoneNumber:
		return "Phone number must be 10 digits."
	}
	return ""
}

func (k Kind) sentinel() error {
	switch k {
	case InvalidFirstName:
		return ErrInvalidFirstName
	case InvalidLastName:
		return ErrInvalidLastName
	case InvalidEmail:
		return ErrInvalidEmail
	case InvalidPhoneNumber:
		return ErrInvalidPhoneNumber
	}
	return nil
}

// ValidationError reports the first rule a draft failed
type ValidationError struct {
	Kind  Kind
	Field models.Field
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.Title(), e.Kind.Message())
}

// Is lets errors.Is match the per-kind sentinel errors
func (e *ValidationError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf extracts the validation kind from err, if any
func KindOf(err error) (Kind, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind, true
	}
	return "", false
}

type rule struct {
	field models.Field
	tag   string
	kind  Kind
}

// Order matters: the first failing rule decides the notice shown.
var rules = []rule{
	{field: models.FirstName, tag: "personname", kind: InvalidFirstName},
	{field: models.LastName, tag: "personname", kind: InvalidLastName},
	{field: models.Email, tag: "endswith=@gmail.com", kind: InvalidEmail},
	{field: models.PhoneNumber, tag: "phone10", kind: InvalidPhoneNumber},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks a draft against the form rules and returns nil when it may be
// submitted. It stops at the first failing rule.
func Validate(draft models.DraftRecord) error {
	for _, r := range rules {
		if err := validate.Var(draft.Get(r.field), r.tag); err != nil {
			return &ValidationError{Kind: r.kind, Field: r.field}
		}
	}
	return nil
}
