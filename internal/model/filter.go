package model

import (
	"encoding/json"
	"fmt"

	"github.com/mpyw/smkit/internal/hashcode"
)

// Filter narrows a ListSecrets call to secrets whose Key attribute matches
// one of Values. Values match by prefix; a leading "!" negates the match.
type Filter struct {
	key    *FilterKey
	values []string
}

// NewFilter returns an empty Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// Key returns the attribute to match against, or nil if absent.
func (f *Filter) Key() *FilterKey {
	return clonePtr(f.key)
}

// SetKey sets Key. A nil value clears it.
func (f *Filter) SetKey(v *FilterKey) {
	f.key = clonePtr(v)
}

// WithKey sets Key and returns f.
func (f *Filter) WithKey(v FilterKey) *Filter {
	f.key = &v

	return f
}

// Values returns a copy of the values to match, or nil if absent.
func (f *Filter) Values() []string {
	return cloneSlice(f.values)
}

// SetValues replaces Values with a copy of v. A nil slice clears it.
func (f *Filter) SetValues(v []string) {
	f.values = cloneSlice(v)
}

// WithValues appends values to Values and returns f.
func (f *Filter) WithValues(values ...string) *Filter {
	f.values = appendValues(f.values, values)

	return f
}

// WithValuesSlice replaces Values with a copy of v and returns f.
func (f *Filter) WithValuesSlice(v []string) *Filter {
	f.SetValues(v)

	return f
}

// Equal reports whether f and other hold the same fields.
func (f *Filter) Equal(other *Filter) bool {
	if f == nil || other == nil {
		return f == other
	}

	return equalPtr(f.key, other.key) &&
		equalSlice(f.values, other.values)
}

// HashCode returns a structural hash consistent with Equal.
func (f *Filter) HashCode() int32 {
	h := hashcode.Seed
	h = hashcode.Combine(h, f.key.hashCode())
	h = hashcode.Combine(h, hashcode.Strings(f.values))

	return h
}

// String renders the present fields for debugging.
func (f *Filter) String() string {
	var w fieldWriter

	if f.key != nil {
		w.field("Key", f.key.String())
	}

	if f.values != nil {
		w.field("Values", formatStrings(f.values))
	}

	return w.String()
}

type filterWire struct {
	Key    *FilterKey `json:"Key,omitempty"`
	Values *[]string  `json:"Values,omitempty"`
}

// MarshalJSON encodes f using the service wire keys.
func (f *Filter) MarshalJSON() ([]byte, error) {
	return json.Marshal(filterWire{
		Key:    f.key,
		Values: wireSlice(f.values),
	})
}

// UnmarshalJSON decodes the service wire representation into f.
func (f *Filter) UnmarshalJSON(data []byte) error {
	var wire filterWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode Filter: %w", err)
	}

	*f = Filter{
		key:    wire.Key,
		values: fromWireSlice(wire.Values),
	}

	return nil
}
