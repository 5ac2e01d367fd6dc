package models

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name is not one of the four form fields
var ErrUnknownField = errors.New("unknown form field")

// Field identifies one of the sign-up form inputs
type Field string

const (
	FirstName   Field = "firstName"
	LastName    Field = "lastName"
	Email       Field = "email"
	PhoneNumber Field = "phoneNumber"
)

// Fields lists the form inputs in the order they appear on screen
var Fields = []Field{FirstName, LastName, Email, PhoneNumber}

// ParseField maps a wire name to a Field
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Label is the text shown next to the field on a card
func (f Field) Label() string {
	switch f {
	case FirstName:
		return "First Name"
	case LastName:
		return "Last Name"
	case Email:
		return "Email"
	case PhoneNumber:
		return "Phone Number"
	}
	return string(f)
}

// Placeholder is the hint shown in an empty input
func (f Field) Placeholder() string {
	return "Enter " + f.Label()
}

// DraftRecord holds the values currently typed into the form
type DraftRecord struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Get returns the current value of a field
func (d DraftRecord) Get(f Field) string {
	switch f {
	case FirstName:
		return d.FirstName
	case LastName:
		return d.LastName
	case Email:
		return d.Email
	case PhoneNumber:
		return d.PhoneNumber
	}
	return ""
}

// Set overwrites a field. Unknown fields are ignored.
func (d *DraftRecord) Set(f Field, value string) {
	switch f {
	case FirstName:
		d.FirstName = value
	case LastName:
		d.LastName = value
	case Email:
		d.Email = value
	case PhoneNumber:
		d.PhoneNumber = value
	}
}

// IsEmpty reports whether every field is blank
func (d DraftRecord) IsEmpty() bool {
	return d == DraftRecord{}
}

// SubmittedRecord is an accepted submission. It is stored by value so later
// draft edits never reach it.
type SubmittedRecord struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// RecordFromDraft snapshots a draft
func RecordFromDraft(d DraftRecord) SubmittedRecord {
	return SubmittedRecord{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
	}
}

// CardLines returns the text lines of the card displaying this record
func (r SubmittedRecord) CardLines() []string {
	return []string{
		"First Name: " + r.FirstName,
		"Last Name: " + r.LastName,
		"Email: " + r.Email,
		"Phone No: " + r.PhoneNumber,
	}
}

// Snapshot is the read-only state handed to a presentation layer after each operation
type Snapshot struct {
	Draft   DraftRecord       `json:"draft"`
	Records []SubmittedRecord `json:"records"`
}
