package model

import (
	"encoding/json"
	"fmt"

	"github.com/mpyw/smkit/internal/hashcode"
)

// ValidationErrorsEntry is one failed check of a resource policy validation.
type ValidationErrorsEntry struct {
	checkName    *string
	errorMessage *string
}

// NewValidationErrorsEntry returns an empty ValidationErrorsEntry.
func NewValidationErrorsEntry() *ValidationErrorsEntry {
	return &ValidationErrorsEntry{}
}

// CheckName returns the name of the failed check, or nil if absent.
func (e *ValidationErrorsEntry) CheckName() *string {
	return clonePtr(e.checkName)
}

// SetCheckName sets CheckName. A nil value clears it.
func (e *ValidationErrorsEntry) SetCheckName(v *string) {
	e.checkName = clonePtr(v)
}

// WithCheckName sets CheckName and returns e.
func (e *ValidationErrorsEntry) WithCheckName(v string) *ValidationErrorsEntry {
	e.checkName = &v

	return e
}

// ErrorMessage returns the reason the check failed, or nil if absent.
func (e *ValidationErrorsEntry) ErrorMessage() *string {
	return clonePtr(e.errorMessage)
}

// SetErrorMessage sets ErrorMessage. A nil value clears it.
func (e *ValidationErrorsEntry) SetErrorMessage(v *string) {
	e.errorMessage = clonePtr(v)
}

// WithErrorMessage sets ErrorMessage and returns e.
func (e *ValidationErrorsEntry) WithErrorMessage(v string) *ValidationErrorsEntry {
	e.errorMessage = &v

	return e
}

// Equal reports whether e and other hold the same fields.
func (e *ValidationErrorsEntry) Equal(other *ValidationErrorsEntry) bool {
	if e == nil || other == nil {
		return e == other
	}

	return equalPtr(e.checkName, other.checkName) &&
		equalPtr(e.errorMessage, other.errorMessage)
}

// HashCode returns a structural hash consistent with Equal.
func (e *ValidationErrorsEntry) HashCode() int32 {
	h := hashcode.Seed
	h = hashcode.Combine(h, hashcode.String(e.checkName))
	h = hashcode.Combine(h, hashcode.String(e.errorMessage))

	return h
}

// String renders the present fields for debugging.
func (e *ValidationErrorsEntry) String() string {
	var w fieldWriter

	if e.checkName != nil {
		w.field("CheckName", *e.checkName)
	}

	if e.errorMessage != nil {
		w.field("ErrorMessage", *e.errorMessage)
	}

	return w.String()
}

type validationErrorsEntryWire struct {
	CheckName    *string `json:"CheckName,omitempty"`
	ErrorMessage *string `json:"ErrorMessage,omitempty"`
}

// MarshalJSON encodes e using the service wire keys.
func (e *ValidationErrorsEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(validationErrorsEntryWire{
		CheckName:    e.checkName,
		ErrorMessage: e.errorMessage,
	})
}

// UnmarshalJSON decodes the service wire representation into e.
func (e *ValidationErrorsEntry) UnmarshalJSON(data []byte) error {
	var wire validationErrorsEntryWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode ValidationErrorsEntry: %w", err)
	}

	*e = ValidationErrorsEntry{
		checkName:    wire.CheckName,
		errorMessage: wire.ErrorMessage,
	}

	return nil
}
