package model

import (
	"encoding/json"
	"fmt"

	"github.com/mpyw/smkit/internal/hashcode"
)

// Tag is a key/value label attached to a secret.
type Tag struct {
	key   *string
	value *string
}

// NewTag returns an empty Tag.
func NewTag() *Tag {
	return &Tag{}
}

// Key returns the Key field, or nil if absent.
func (t *Tag) Key() *string {
	return clonePtr(t.key)
}

// SetKey sets Key. A nil value clears it.
func (t *Tag) SetKey(v *string) {
	t.key = clonePtr(v)
}

// WithKey sets Key and returns t.
func (t *Tag) WithKey(v string) *Tag {
	t.key = &v

	return t
}

// Value returns the Value field, or nil if absent.
func (t *Tag) Value() *string {
	return clonePtr(t.value)
}

// SetValue sets Value. A nil value clears it.
func (t *Tag) SetValue(v *string) {
	t.value = clonePtr(v)
}

// WithValue sets Value and returns t.
func (t *Tag) WithValue(v string) *Tag {
	t.value = &v

	return t
}

// Equal reports whether t and other hold the same fields.
func (t *Tag) Equal(other *Tag) bool {
	if t == nil || other == nil {
		return t == other
	}

	return equalPtr(t.key, other.key) &&
		equalPtr(t.value, other.value)
}

// HashCode returns a structural hash consistent with Equal.
func (t *Tag) HashCode() int32 {
	h := hashcode.Seed
	h = hashcode.Combine(h, hashcode.String(t.key))
	h = hashcode.Combine(h, hashcode.String(t.value))

	return h
}

// String renders the present fields for debugging.
func (t *Tag) String() string {
	var w fieldWriter

	if t.key != nil {
		w.field("Key", *t.key)
	}

	if t.value != nil {
		w.field("Value", *t.value)
	}

	return w.String()
}

type tagWire struct {
	Key   *string `json:"Key,omitempty"`
	Value *string `json:"Value,omitempty"`
}

// MarshalJSON encodes t using the service wire keys.
func (t *Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagWire{
		Key:   t.key,
		Value: t.value,
	})
}

// UnmarshalJSON decodes the service wire representation into t.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var wire tagWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode Tag: %w", err)
	}

	*t = Tag{
		key:   wire.Key,
		value: wire.Value,
	}

	return nil
}
