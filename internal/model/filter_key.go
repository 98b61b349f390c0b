package model

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/hashcode"
)

// FilterKey names the attribute a ListSecrets filter matches against.
//
// The set of keys is closed: the only valid values are the package-level
// FilterKey variables, and ParseFilterKey rejects anything else. The zero
// value is not a valid key.
type FilterKey struct {
	name string
}

//nolint:gochecknoglobals // closed enumeration
var (
	// FilterKeyDescription matches the secret description.
	FilterKeyDescription = FilterKey{name: "description"}
	// FilterKeyName matches the secret name.
	FilterKeyName = FilterKey{name: "name"}
	// FilterKeyTagKey matches tag keys.
	FilterKeyTagKey = FilterKey{name: "tag-key"}
	// FilterKeyTagValue matches tag values.
	FilterKeyTagValue = FilterKey{name: "tag-value"}
	// FilterKeyAll matches every attribute above.
	FilterKeyAll = FilterKey{name: "all"}
)

// FilterKeys returns every valid key in wire order.
func FilterKeys() []FilterKey {
	return []FilterKey{
		FilterKeyDescription,
		FilterKeyName,
		FilterKeyTagKey,
		FilterKeyTagValue,
		FilterKeyAll,
	}
}

// ParseFilterKey returns the FilterKey whose wire name is s.
func ParseFilterKey(s string) (FilterKey, error) {
	key, ok := lo.Find(FilterKeys(), func(k FilterKey) bool { return k.name == s })
	if !ok {
		return FilterKey{}, fmt.Errorf("invalid filter key %q: must be one of %v", s, FilterKeys())
	}

	return key, nil
}

// String returns the wire name of k.
func (k FilterKey) String() string {
	return k.name
}

// IsZero reports whether k is the zero value.
func (k FilterKey) IsZero() bool {
	return k.name == ""
}

// MarshalText implements encoding.TextMarshaler.
func (k FilterKey) MarshalText() ([]byte, error) {
	if k.IsZero() {
		return nil, fmt.Errorf("cannot marshal zero FilterKey")
	}

	return []byte(k.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FilterKey) UnmarshalText(text []byte) error {
	parsed, err := ParseFilterKey(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

func (k *FilterKey) hashCode() int32 {
	if k == nil {
		return 0
	}

	return hashcode.String(&k.name)
}
