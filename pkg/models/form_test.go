package models

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(string(f))
		if err != nil || got != f {
			t.Fatalf("ParseField(%q) = %q, %v", f, got, err)
		}
	}

	for _, name := range []string{"", "firstname", "FirstName", "submittedData", "phone"} {
		if _, err := ParseField(name); !errors.Is(err, ErrUnknownField) {
			t.Fatalf("ParseField(%q): expected ErrUnknownField, got %v", name, err)
		}
	}
}

func TestDraftGetSet(t *testing.T) {
	var d DraftRecord
	if !d.IsEmpty() {
		t.Fatalf("zero draft should be empty")
	}

	d.Set(FirstName, "a")
	d.Set(LastName, "b")
	d.Set(Email, "c")
	d.Set(PhoneNumber, "d")
	d.Set(Field("nope"), "ignored")

	want := DraftRecord{FirstName: "a", LastName: "b", Email: "c", PhoneNumber: "d"}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Fatalf("draft mismatch (-want +got):\n%s", diff)
	}
	for _, f := range Fields {
		if d.Get(f) == "" {
			t.Fatalf("Get(%s) empty", f)
		}
	}
	if d.Get(Field("nope")) != "" {
		t.Fatalf("unknown field should read as empty")
	}
}

func TestCardLines(t *testing.T) {
	r := RecordFromDraft(DraftRecord{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john@gmail.com",
		PhoneNumber: "1234567890",
	})

	want := []string{
		"First Name: John",
		"Last Name: Doe",
		"Email: john@gmail.com",
		"Phone No: 1234567890",
	}
	if diff := cmp.Diff(want, r.CardLines()); diff != "" {
		t.Fatalf("card lines mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceholder(t *testing.T) {
	if got := PhoneNumber.Placeholder(); got != "Enter Phone Number" {
		t.Fatalf("Placeholder() = %q", got)
	}
}
