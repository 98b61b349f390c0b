package model

import (
	"encoding/json"
	"fmt"

	"github.com/mpyw/smkit/internal/hashcode"
)

// ListSecretsResult is one page of a ListSecrets call.
//
// NextToken is absent on the last page.
type ListSecretsResult struct {
	secretList []*SecretListEntry
	nextToken  *string
}

// NewListSecretsResult returns an empty ListSecretsResult.
func NewListSecretsResult() *ListSecretsResult {
	return &ListSecretsResult{}
}

// SecretList returns a copy of the secrets on this page, or nil if absent.
func (r *ListSecretsResult) SecretList() []*SecretListEntry {
	return cloneSlice(r.secretList)
}

// SetSecretList replaces SecretList with a copy of v. A nil slice clears it.
func (r *ListSecretsResult) SetSecretList(v []*SecretListEntry) {
	r.secretList = cloneSlice(v)
}

// WithSecretList appends the non-nil values to SecretList and returns r.
func (r *ListSecretsResult) WithSecretList(values ...*SecretListEntry) *ListSecretsResult {
	r.secretList = appendNonNil(r.secretList, values)

	return r
}

// WithSecretListSlice replaces SecretList with a copy of v and returns r.
func (r *ListSecretsResult) WithSecretListSlice(v []*SecretListEntry) *ListSecretsResult {
	r.SetSecretList(v)

	return r
}

// NextToken returns the continuation token for the next page, or nil on the last page.
func (r *ListSecretsResult) NextToken() *string {
	return clonePtr(r.nextToken)
}

// SetNextToken sets NextToken. A nil value clears it.
func (r *ListSecretsResult) SetNextToken(v *string) {
	r.nextToken = clonePtr(v)
}

// WithNextToken sets NextToken and returns r.
func (r *ListSecretsResult) WithNextToken(v string) *ListSecretsResult {
	r.nextToken = &v

	return r
}

// Equal reports whether r and other hold the same fields.
func (r *ListSecretsResult) Equal(other *ListSecretsResult) bool {
	if r == nil || other == nil {
		return r == other
	}

	return equalObjects(r.secretList, other.secretList) &&
		equalPtr(r.nextToken, other.nextToken)
}

// HashCode returns a structural hash consistent with Equal.
func (r *ListSecretsResult) HashCode() int32 {
	h := hashcode.Seed
	h = hashcode.Combine(h, hashcode.Objects(r.secretList))
	h = hashcode.Combine(h, hashcode.String(r.nextToken))

	return h
}

// String renders the present fields for debugging.
func (r *ListSecretsResult) String() string {
	var w fieldWriter

	if r.secretList != nil {
		w.field("SecretList", formatObjects(r.secretList))
	}

	if r.nextToken != nil {
		w.field("NextToken", *r.nextToken)
	}

	return w.String()
}

type listSecretsResultWire struct {
	SecretList *[]*SecretListEntry `json:"SecretList,omitempty"`
	NextToken  *string             `json:"NextToken,omitempty"`
}

// MarshalJSON encodes r using the service wire keys.
func (r *ListSecretsResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(listSecretsResultWire{
		SecretList: wireSlice(r.secretList),
		NextToken:  r.nextToken,
	})
}

// UnmarshalJSON decodes the service wire representation into r.
func (r *ListSecretsResult) UnmarshalJSON(data []byte) error {
	var wire listSecretsResultWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode ListSecretsResult: %w", err)
	}

	*r = ListSecretsResult{
		secretList: fromWireSlice(wire.SecretList),
		nextToken:  wire.NextToken,
	}

	return nil
}
