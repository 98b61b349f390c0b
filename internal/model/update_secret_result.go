package model

import (
	"encoding/json"
	"fmt"

	"github.com/mpyw/smkit/internal/hashcode"
)

// UpdateSecretResult is the response of an UpdateSecret call.
//
// VersionID is set only when the update created a new secret version.
type UpdateSecretResult struct {
	arn       *string
	name      *string
	versionID *string
}

// NewUpdateSecretResult returns an empty UpdateSecretResult.
func NewUpdateSecretResult() *UpdateSecretResult {
	return &UpdateSecretResult{}
}

// ARN returns the ARN of the secret, or nil if absent.
func (r *UpdateSecretResult) ARN() *string {
	return clonePtr(r.arn)
}

// SetARN sets ARN. A nil value clears it.
func (r *UpdateSecretResult) SetARN(v *string) {
	r.arn = clonePtr(v)
}

// WithARN sets ARN and returns r.
func (r *UpdateSecretResult) WithARN(v string) *UpdateSecretResult {
	r.arn = &v

	return r
}

// Name returns the friendly name of the secret, or nil if absent.
func (r *UpdateSecretResult) Name() *string {
	return clonePtr(r.name)
}

// SetName sets Name. A nil value clears it.
func (r *UpdateSecretResult) SetName(v *string) {
	r.name = clonePtr(v)
}

// WithName sets Name and returns r.
func (r *UpdateSecretResult) WithName(v string) *UpdateSecretResult {
	r.name = &v

	return r
}

// VersionID returns the identifier of the version the update created, or nil if absent.
func (r *UpdateSecretResult) VersionID() *string {
	return clonePtr(r.versionID)
}

// SetVersionID sets VersionID. A nil value clears it.
func (r *UpdateSecretResult) SetVersionID(v *string) {
	r.versionID = clonePtr(v)
}

// WithVersionID sets VersionID and returns r.
func (r *UpdateSecretResult) WithVersionID(v string) *UpdateSecretResult {
	r.versionID = &v

	return r
}

// Equal reports whether r and other hold the same fields.
func (r *UpdateSecretResult) Equal(other *UpdateSecretResult) bool {
	if r == nil || other == nil {
		return r == other
	}

	return equalPtr(r.arn, other.arn) &&
		equalPtr(r.name, other.name) &&
		equalPtr(r.versionID, other.versionID)
}

// HashCode returns a structural hash consistent with Equal.
func (r *UpdateSecretResult) HashCode() int32 {
	h := hashcode.Seed
	h = hashcode.Combine(h, hashcode.String(r.arn))
	h = hashcode.Combine(h, hashcode.String(r.name))
	h = hashcode.Combine(h, hashcode.String(r.versionID))

	return h
}

// String renders the present fields for debugging.
func (r *UpdateSecretResult) String() string {
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

type updateSecretResultWire struct {
	ARN       *string `json:"ARN,omitempty"`
	Name      *string `json:"Name,omitempty"`
	VersionID *string `json:"VersionId,omitempty"`
}

// MarshalJSON encodes r using the service wire keys.
func (r *UpdateSecretResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(updateSecretResultWire{
		ARN:       r.arn,
		Name:      r.name,
		VersionID: r.versionID,
	})
}

// UnmarshalJSON decodes the service wire representation into r.
func (r *UpdateSecretResult) UnmarshalJSON(data []byte) error {
	var wire updateSecretResultWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode UpdateSecretResult: %w", err)
	}

	*r = UpdateSecretResult{
		arn:       wire.ARN,
		name:      wire.Name,
		versionID: wire.VersionID,
	}

	return nil
}
