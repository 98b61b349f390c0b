package model

import (
	"encoding/json"
	"fmt"

	"github.com/mpyw/smkit/internal/hashcode"
)

// CancelRotateSecretResult is the response of a CancelRotateSecret call.
//
// VersionID identifies the version that was being created when rotation was
// cancelled. That version keeps its AWSPENDING label, so a later rotation
// must clear the label first.
type CancelRotateSecretResult struct {
	arn       *string
	name      *string
	versionID *string
}

// NewCancelRotateSecretResult returns an empty CancelRotateSecretResult.
func NewCancelRotateSecretResult() *CancelRotateSecretResult {
	return &CancelRotateSecretResult{}
}

// ARN returns the ARN of the secret, or nil if absent.
func (r *CancelRotateSecretResult) ARN() *string {
	return clonePtr(r.arn)
}

// SetARN sets ARN. A nil value clears it.
func (r *CancelRotateSecretResult) SetARN(v *string) {
	r.arn = clonePtr(v)
}

// WithARN sets ARN and returns r.
func (r *CancelRotateSecretResult) WithARN(v string) *CancelRotateSecretResult {
	r.arn = &v

	return r
}

// Name returns the friendly name of the secret, or nil if absent.
func (r *CancelRotateSecretResult) Name() *string {
	return clonePtr(r.name)
}

// SetName sets Name. A nil value clears it.
func (r *CancelRotateSecretResult) SetName(v *string) {
	r.name = clonePtr(v)
}

// WithName sets Name and returns r.
func (r *CancelRotateSecretResult) WithName(v string) *CancelRotateSecretResult {
	r.name = &v

	return r
}

// VersionID returns the unique identifier of the version that was rotating, or nil if absent.
func (r *CancelRotateSecretResult) VersionID() *string {
	return clonePtr(r.versionID)
}

// SetVersionID sets VersionID. A nil value clears it.
func (r *CancelRotateSecretResult) SetVersionID(v *string) {
	r.versionID = clonePtr(v)
}

// WithVersionID sets VersionID and returns r.
func (r *CancelRotateSecretResult) WithVersionID(v string) *CancelRotateSecretResult {
	r.versionID = &v

	return r
}

// Equal reports whether r and other hold the same fields.
func (r *CancelRotateSecretResult) Equal(other *CancelRotateSecretResult) bool {
	if r == nil || other == nil {
		return r == other
	}

	return equalPtr(r.arn, other.arn) &&
		equalPtr(r.name, other.name) &&
		equalPtr(r.versionID, other.versionID)
}

// HashCode returns a structural hash consistent with Equal.
func (r *CancelRotateSecretResult) HashCode() int32 {
	h := hashcode.Seed
	h = hashcode.Combine(h, hashcode.String(r.arn))
	h = hashcode.Combine(h, hashcode.String(r.name))
	h = hashcode.Combine(h, hashcode.String(r.versionID))

	return h
}

// String renders the present fields for debugging.
func (r *CancelRotateSecretResult) String() string {
	var w fieldWriter

	if r.arn != nil {
		w.field("ARN", *r.arn)
	}

	if r.name != nil {
		w.field("Name", *r.name)
	}

	if r.versionID != nil {
		w.field("VersionId", *r.versionID)
	}

	return w.String()
}

type cancelRotateSecretResultWire struct {
	ARN       *string `json:"ARN,omitempty"`
	Name      *string `json:"Name,omitempty"`
	VersionID *string `json:"VersionId,omitempty"`
}

// MarshalJSON encodes r using the service wire keys.
func (r *CancelRotateSecretResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(cancelRotateSecretResultWire{
		ARN:       r.arn,
		Name:      r.name,
		VersionID: r.versionID,
	})
}

// UnmarshalJSON decodes the service wire representation into r.
func (r *CancelRotateSecretResult) UnmarshalJSON(data []byte) error {
	var wire cancelRotateSecretResultWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode CancelRotateSecretResult: %w", err)
	}

	*r = CancelRotateSecretResult{
		arn:       wire.ARN,
		name:      wire.Name,
		versionID: wire.VersionID,
	}

	return nil
}
