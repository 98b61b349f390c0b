package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// epochSeconds is a timestamp on the wire: seconds since the Unix epoch,
// with millisecond precision in the fractional part.
type epochSeconds time.Time

func (e epochSeconds) MarshalJSON() ([]byte, error) {
	millis := time.Time(e).UnixMilli()

	return []byte(strconv.FormatFloat(float64(millis)/1000, 'f', -1, 64)), nil
}

func (e *epochSeconds) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to decode timestamp: %w", err)
	}

	secs, err := n.Float64()
	if err != nil {
		return fmt.Errorf("failed to decode timestamp %q: %w", n, err)
	}

	*e = epochSeconds(time.UnixMilli(int64(math.Round(secs * 1000))).UTC())

	return nil
}

func toEpoch(t *time.Time) *epochSeconds {
	if t == nil {
		return nil
	}

	e := epochSeconds(*t)

	return &e
}

func fromEpoch(e *epochSeconds) *time.Time {
	if e == nil {
		return nil
	}

	t := time.Time(*e)

	return &t
}

// wireSlice keeps present-but-empty lists distinct from absent ones.
func wireSlice[T any](s []T) *[]T {
	if s == nil {
		return nil
	}

	return &s
}

func fromWireSlice[T any](p *[]T) []T {
	if p == nil {
		return nil
	}

	if *p == nil {
		return []T{}
	}

	return cloneSlice(*p)
}

func wireMap(m map[string][]string) *map[string][]string {
	if m == nil {
		return nil
	}

	return &m
}

func fromWireMap(p *map[string][]string) map[string][]string {
	if p == nil {
		return nil
	}

	if *p == nil {
		return map[string][]string{}
	}

	return cloneStringListMap(*p)
}
