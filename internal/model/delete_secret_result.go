package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mpyw/smkit/internal/hashcode"
)

// DeleteSecretResult is the response of a DeleteSecret call.
type DeleteSecretResult struct {
	arn          *string
	name         *string
	deletionDate *time.Time
}

// NewDeleteSecretResult returns an empty DeleteSecretResult.
func NewDeleteSecretResult() *DeleteSecretResult {
	return &DeleteSecretResult{}
}

// ARN returns the ARN of the secret, or nil if absent.
func (r *DeleteSecretResult) ARN() *string {
	return clonePtr(r.arn)
}

// SetARN sets ARN. A nil value clears it.
func (r *DeleteSecretResult) SetARN(v *string) {
	r.arn = clonePtr(v)
}

// WithARN sets ARN and returns r.
func (r *DeleteSecretResult) WithARN(v string) *DeleteSecretResult {
	r.arn = &v

	return r
}

// Name returns the friendly name of the secret, or nil if absent.
func (r *DeleteSecretResult) Name() *string {
	return clonePtr(r.name)
}

// SetName sets Name. A nil value clears it.
func (r *DeleteSecretResult) SetName(v *string) {
	r.name = clonePtr(v)
}

// WithName sets Name and returns r.
func (r *DeleteSecretResult) WithName(v string) *DeleteSecretResult {
	r.name = &v

	return r
}

// DeletionDate returns the date and time after which the secret can no longer be restored, or nil if absent.
func (r *DeleteSecretResult) DeletionDate() *time.Time {
	return clonePtr(r.deletionDate)
}

// SetDeletionDate sets DeletionDate. A nil value clears it.
func (r *DeleteSecretResult) SetDeletionDate(v *time.Time) {
	r.deletionDate = clonePtr(v)
}

// WithDeletionDate sets DeletionDate and returns r.
func (r *DeleteSecretResult) WithDeletionDate(v time.Time) *DeleteSecretResult {
	r.deletionDate = &v

	return r
}

// Equal reports whether r and other hold the same fields.
func (r *DeleteSecretResult) Equal(other *DeleteSecretResult) bool {
	if r == nil || other == nil {
		return r == other
	}

	return equalPtr(r.arn, other.arn) &&
		equalPtr(r.name, other.name) &&
		equalTime(r.deletionDate, other.deletionDate)
}

// HashCode returns a structural hash consistent with Equal.
func (r *DeleteSecretResult) HashCode() int32 {
	h := hashcode.Seed
	h = hashcode.Combine(h, hashcode.String(r.arn))
	h = hashcode.Combine(h, hashcode.String(r.name))
	h = hashcode.Combine(h, hashcode.Time(r.deletionDate))

	return h
}

// String renders the present fields for debugging.
func (r *DeleteSecretResult) String() string {
	var w fieldWriter

	if r.arn != nil {
		w.field("ARN", *r.arn)
	}

	if r.name != nil {
		w.field("Name", *r.name)
	}

	if r.deletionDate != nil {
		w.field("DeletionDate", formatTime(*r.deletionDate))
	}

	return w.String()
}

type deleteSecretResultWire struct {
	ARN          *string       `json:"ARN,omitempty"`
	Name         *string       `json:"Name,omitempty"`
	DeletionDate *epochSeconds `json:"DeletionDate,omitempty"`
}

// MarshalJSON encodes r using the service wire keys.
func (r *DeleteSecretResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(deleteSecretResultWire{
		ARN:          r.arn,
		Name:         r.name,
		DeletionDate: toEpoch(r.deletionDate),
	})
}

// UnmarshalJSON decodes the service wire representation into r.
func (r *DeleteSecretResult) UnmarshalJSON(data []byte) error {
	var wire deleteSecretResultWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode DeleteSecretResult: %w", err)
	}

	*r = DeleteSecretResult{
		arn:          wire.ARN,
		name:         wire.Name,
		deletionDate: fromEpoch(wire.DeletionDate),
	}

	return nil
}
