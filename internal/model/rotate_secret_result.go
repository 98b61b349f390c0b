package model

import (
	"encoding/json"
	"fmt"

	"github.com/mpyw/smkit/internal/hashcode"
)

// RotateSecretResult is the response of a RotateSecret call.
type RotateSecretResult struct {
	arn       *string
	name      *string
	versionID *string
}

// NewRotateSecretResult returns an empty RotateSecretResult.
func NewRotateSecretResult() *RotateSecretResult {
	return &RotateSecretResult{}
}

// ARN returns the ARN field, or nil if absent.
func (r *RotateSecretResult) ARN() *string {
	return clonePtr(r.arn)
}

// SetARN sets ARN. A nil value clears it.
func (r *RotateSecretResult) SetARN(v *string) {
	r.arn = clonePtr(v)
}

// WithARN sets ARN and returns r.
func (r *RotateSecretResult) WithARN(v string) *RotateSecretResult {
	r.arn = &v

	return r
}

// Name returns the Name field, or nil if absent.
func (r *RotateSecretResult) Name() *string {
	return clonePtr(r.name)
}

// SetName sets Name. A nil value clears it.
func (r *RotateSecretResult) SetName(v *string) {
	r.name = clonePtr(v)
}

// WithName sets Name and returns r.
func (r *RotateSecretResult) WithName(v string) *RotateSecretResult {
	r.name = &v

	return r
}

// VersionID returns the VersionId field, or nil if absent.
func (r *RotateSecretResult) VersionID() *string {
	return clonePtr(r.versionID)
}

// SetVersionID sets VersionID. A nil value clears it.
func (r *RotateSecretResult) SetVersionID(v *string) {
	r.versionID = clonePtr(v)
}

// WithVersionID sets VersionID and returns r.
func (r *RotateSecretResult) WithVersionID(v string) *RotateSecretResult {
	r.versionID = &v

	return r
}

// Equal reports whether r and other hold the same fields.
func (r *RotateSecretResult) Equal(other *RotateSecretResult) bool {
	if r == nil || other == nil {
		return r == other
	}

	return equalPtr(r.arn, other.arn) &&
		equalPtr(r.name, other.name) &&
		equalPtr(r.versionID, other.versionID)
}

// HashCode returns a structural hash consistent with Equal.
func (r *RotateSecretResult) HashCode() int32 {
	h := hashcode.Seed
	h = hashcode.Combine(h, hashcode.String(r.arn))
	h = hashcode.Combine(h, hashcode.String(r.name))
	h = hashcode.Combine(h, hashcode.String(r.versionID))

	return h
}

// String renders the present fields for debugging.
func (r *RotateSecretResult) String() string {
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

type rotateSecretResultWire struct {
	ARN       *string `json:"ARN,omitempty"`
	Name      *string `json:"Name,omitempty"`
	VersionID *string `json:"VersionId,omitempty"`
}

// MarshalJSON encodes r using the service wire keys.
func (r *RotateSecretResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(rotateSecretResultWire{
		ARN:       r.arn,
		Name:      r.name,
		VersionID: r.versionID,
	})
}

// UnmarshalJSON decodes the service wire representation into r.
func (r *RotateSecretResult) UnmarshalJSON(data []byte) error {
	var wire rotateSecretResultWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode RotateSecretResult: %w", err)
	}

	*r = RotateSecretResult{
		arn:       wire.ARN,
		name:      wire.Name,
		versionID: wire.VersionID,
	}

	return nil
}
