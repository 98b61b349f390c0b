package model

import (
	"maps"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Field helpers shared by every model type. Absent values are nil pointers,
// nil slices and nil maps; empty but present collections stay non-nil.

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}

	out := make([]T, len(s))
	copy(out, s)

	return out
}

func cloneStringListMap(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}

	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = cloneSlice(v)
	}

	return out
}

// appendNonNil appends the non-nil elements of values to dst, allocating a
// slice sized to values when dst is absent.
func appendNonNil[T any](dst []*T, values []*T) []*T {
	if dst == nil {
		dst = make([]*T, 0, len(values))
	}

	for _, v := range values {
		if v != nil {
			dst = append(dst, v)
		}
	}

	return dst
}

func appendValues[T any](dst []T, values []T) []T {
	if dst == nil {
		dst = make([]T, 0, len(values))
	}

	return append(dst, values...)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}

func equalSlice[T comparable](a, b []T) bool {
	if a == nil || b == nil {
		return (a == nil) == (b == nil)
	}

	return slices.Equal(a, b)
}

func equalObjects[T interface{ Equal(other T) bool }](a, b []T) bool {
	if a == nil || b == nil {
		return (a == nil) == (b == nil)
	}

	return slices.EqualFunc(a, b, func(x, y T) bool { return x.Equal(y) })
}

func equalStringListMap(a, b map[string][]string) bool {
	if a == nil || b == nil {
		return (a == nil) == (b == nil)
	}

	return maps.EqualFunc(a, b, equalSlice[string])
}

// fieldWriter renders "{Label: value,Label: value}".
type fieldWriter struct {
	sb    strings.Builder
	count int
}

func (w *fieldWriter) field(label, value string) {
	if w.count > 0 {
		w.sb.WriteByte(',')
	}

	w.sb.WriteString(label)
	w.sb.WriteString(": ")
	w.sb.WriteString(value)
	w.count++
}

func (w *fieldWriter) String() string {
	return "{" + w.sb.String() + "}"
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatStrings(values []string) string {
	return "[" + strings.Join(values, ", ") + "]"
}

func formatObjects[T interface {
	comparable
	String() string
}](values []T) string {
	var zero T

	parts := make([]string, len(values))
	for i, v := range values {
		if v == zero {
			parts[i] = "null"

			continue
		}

		parts[i] = v.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func formatStringListMap(m map[string][]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + formatStrings(m[k])
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
