// Package hashcode computes 32-bit structural hash codes for model types.
//
// Hashes are compatible with the JVM conventions used by the generated
// Secrets Manager clients, so a value hashes the same regardless of which
// SDK produced it.
package hashcode

import (
	"time"
	"unicode/utf16"
)

// Prime is the multiplier folded between fields.
const Prime int32 = 31

// Seed is the initial accumulator value.
const Seed int32 = 1

// Hasher is implemented by values that expose a structural hash.
type Hasher interface {
	HashCode() int32
}

// Combine folds h into acc.
func Combine(acc, h int32) int32 {
	return Prime*acc + h
}

// String hashes the UTF-16 code units of s, or returns 0 for nil.
func String(s *string) int32 {
	if s == nil {
		return 0
	}

	return stringValue(*s)
}

func stringValue(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = Prime*h + int32(u)
	}

	return h
}

// Int64 hashes a 64-bit integer by folding its halves, or returns 0 for nil.
func Int64(v *int64) int32 {
	if v == nil {
		return 0
	}

	return int64Value(*v)
}

func int64Value(v int64) int32 {
	u := uint64(v)

	return int32(u ^ (u >> 32)) //nolint:gosec // truncation is the point
}

// Bool returns 1231 for true, 1237 for false, or 0 for nil.
func Bool(v *bool) int32 {
	switch {
	case v == nil:
		return 0
	case *v:
		return 1231
	default:
		return 1237
	}
}

// Time hashes the epoch milliseconds of t, or returns 0 for nil.
func Time(t *time.Time) int32 {
	if t == nil {
		return 0
	}

	return int64Value(t.UnixMilli())
}

// Object returns h.HashCode(), or 0 when h is nil.
func Object[H interface {
	Hasher
	comparable
}](h H) int32 {
	var zero H
	if h == zero {
		return 0
	}

	return h.HashCode()
}

// Strings hashes an ordered list of strings, or returns 0 for nil.
func Strings(values []string) int32 {
	if values == nil {
		return 0
	}

	h := Seed
	for _, v := range values {
		h = Combine(h, stringValue(v))
	}

	return h
}

// Objects hashes an ordered list of hashable values, or returns 0 for nil.
func Objects[H interface {
	Hasher
	comparable
}](values []H) int32 {
	if values == nil {
		return 0
	}

	h := Seed
	for _, v := range values {
		h = Combine(h, Object(v))
	}

	return h
}

// StringListMap hashes a map of string lists independently of iteration
// order, or returns 0 for nil.
func StringListMap(m map[string][]string) int32 {
	if m == nil {
		return 0
	}

	var h int32
	for k, v := range m {
		h += stringValue(k) ^ Strings(v)
	}

	return h
}
