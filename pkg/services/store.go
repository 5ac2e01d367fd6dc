package services

import (
	"errors"
	"fmt"
	"log"

	"signup-cards/pkg/models"
	"signup-cards/pkg/utils"
)

// ErrOutOfRange is returned by DeleteAt for a position outside the record list
var ErrOutOfRange = errors.New("record index out of range")

// FormRecordStore owns the form draft and the list of accepted records for one
// UI session. It is not safe for concurrent use; callers run one operation at a
// time.
type FormRecordStore struct {
	draft   models.DraftRecord
	records []models.SubmittedRecord
}

// NewFormRecordStore creates a store with an empty draft and no records
func NewFormRecordStore() *FormRecordStore {
	return &FormRecordStore{}
}

// SetField overwrites a draft field without validating it
func (s *FormRecordStore) SetField(field models.Field, value string) {
	s.draft.Set(field, value)
}

// Submit validates the draft. A valid draft is appended to the record list and
// the draft is cleared; an invalid one is left exactly as typed.
func (s *FormRecordStore) Submit() (models.SubmittedRecord, error) {
	if err := Validate(s.draft); err != nil {
		return models.SubmittedRecord{}, err
	}

	record := models.RecordFromDraft(s.draft)
	s.records = append(s.records, record)
	s.draft = models.DraftRecord{}

	log.Printf("Submitted record %d for %s %s (%s)",
		len(s.records)-1, record.FirstName, record.LastName, utils.ShortHash(record.PhoneNumber))
	return record, nil
}

// Refresh clears the draft. Records are untouched.
func (s *FormRecordStore) Refresh() {
	s.draft = models.DraftRecord{}
}

// DeleteAt removes the record at index, keeping the order of the rest
func (s *FormRecordStore) DeleteAt(index int) error {
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(s.records))
	}

	updated := make([]models.SubmittedRecord, 0, len(s.records)-1)
	updated = append(updated, s.records[:index]...)
	updated = append(updated, s.records[index+1:]...)
	s.records = updated
	return nil
}

// Draft returns a copy of the current draft
func (s *FormRecordStore) Draft() models.DraftRecord {
	return s.draft
}

// Records returns a copy of the record list
func (s *FormRecordStore) Records() []models.SubmittedRecord {
	out := make([]models.SubmittedRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records
func (s *FormRecordStore) Len() int {
	return len(s.records)
}

// Snapshot returns the state a presentation layer renders from
func (s *FormRecordStore) Snapshot() models.Snapshot {
	return models.Snapshot{
		Draft:   s.Draft(),
		Records: s.Records(),
	}
}
