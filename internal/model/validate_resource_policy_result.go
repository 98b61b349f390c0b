package model

import (
	"encoding/json"
	"fmt"

	"github.com/mpyw/smkit/internal/hashcode"
)

// ValidateResourcePolicyResult is the response of a ValidateResourcePolicy call.
type ValidateResourcePolicyResult struct {
	policyValidationPassed *bool
	validationErrors       []*ValidationErrorsEntry
}

// NewValidateResourcePolicyResult returns an empty ValidateResourcePolicyResult.
func NewValidateResourcePolicyResult() *ValidateResourcePolicyResult {
	return &ValidateResourcePolicyResult{}
}

// PolicyValidationPassed returns whether the policy passed validation, or nil if absent.
func (r *ValidateResourcePolicyResult) PolicyValidationPassed() *bool {
	return clonePtr(r.policyValidationPassed)
}

// IsPolicyValidationPassed is a synonym for PolicyValidationPassed.
func (r *ValidateResourcePolicyResult) IsPolicyValidationPassed() *bool {
	return r.PolicyValidationPassed()
}

// SetPolicyValidationPassed sets PolicyValidationPassed. A nil value clears it.
func (r *ValidateResourcePolicyResult) SetPolicyValidationPassed(v *bool) {
	r.policyValidationPassed = clonePtr(v)
}

// WithPolicyValidationPassed sets PolicyValidationPassed and returns r.
func (r *ValidateResourcePolicyResult) WithPolicyValidationPassed(v bool) *ValidateResourcePolicyResult {
	r.policyValidationPassed = &v

	return r
}

// ValidationErrors returns a copy of the validation failures, or nil if absent.
func (r *ValidateResourcePolicyResult) ValidationErrors() []*ValidationErrorsEntry {
	return cloneSlice(r.validationErrors)
}

// SetValidationErrors replaces ValidationErrors with a copy of v. A nil slice clears it.
func (r *ValidateResourcePolicyResult) SetValidationErrors(v []*ValidationErrorsEntry) {
	r.validationErrors = cloneSlice(v)
}

// WithValidationErrors appends the non-nil values to ValidationErrors and returns r.
func (r *ValidateResourcePolicyResult) WithValidationErrors(values ...*ValidationErrorsEntry) *ValidateResourcePolicyResult {
	r.validationErrors = appendNonNil(r.validationErrors, values)

	return r
}

// WithValidationErrorsSlice replaces ValidationErrors with a copy of v and returns r.
func (r *ValidateResourcePolicyResult) WithValidationErrorsSlice(v []*ValidationErrorsEntry) *ValidateResourcePolicyResult {
	r.SetValidationErrors(v)

	return r
}

// Equal reports whether r and other hold the same fields.
func (r *ValidateResourcePolicyResult) Equal(other *ValidateResourcePolicyResult) bool {
	if r == nil || other == nil {
		return r == other
	}

	return equalPtr(r.policyValidationPassed, other.policyValidationPassed) &&
		equalObjects(r.validationErrors, other.validationErrors)
}

// HashCode returns a structural hash consistent with Equal.
func (r *ValidateResourcePolicyResult) HashCode() int32 {
	h := hashcode.Seed
	h = hashcode.Combine(h, hashcode.Bool(r.policyValidationPassed))
	h = hashcode.Combine(h, hashcode.Objects(r.validationErrors))

	return h
}

// String renders the present fields for debugging.
func (r *ValidateResourcePolicyResult) String() string {
	var w fieldWriter

	if r.policyValidationPassed != nil {
		w.field("PolicyValidationPassed", formatBool(*r.policyValidationPassed))
	}

	if r.validationErrors != nil {
		w.field("ValidationErrors", formatObjects(r.validationErrors))
	}

	return w.String()
}

type validateResourcePolicyResultWire struct {
	PolicyValidationPassed *bool                     `json:"PolicyValidationPassed,omitempty"`
	ValidationErrors       *[]*ValidationErrorsEntry `json:"ValidationErrors,omitempty"`
}

// MarshalJSON encodes r using the service wire keys.
func (r *ValidateResourcePolicyResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(validateResourcePolicyResultWire{
		PolicyValidationPassed: r.policyValidationPassed,
		ValidationErrors:       wireSlice(r.validationErrors),
	})
}

// UnmarshalJSON decodes the service wire representation into r.
func (r *ValidateResourcePolicyResult) UnmarshalJSON(data []byte) error {
	var wire validateResourcePolicyResultWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode ValidateResourcePolicyResult: %w", err)
	}

	*r = ValidateResourcePolicyResult{
		policyValidationPassed: wire.PolicyValidationPassed,
		validationErrors:       fromWireSlice(wire.ValidationErrors),
	}

	return nil
}
