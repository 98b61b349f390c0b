// Package timeutil formats service timestamps for display.
//
// The service reports instants in UTC. For display they are converted to the
// zone named by TZ, or to the local zone when TZ is unset. An unknown TZ
// falls back to UTC.
package timeutil

import (
	"math"
	"os"
	"sync"
	"time"
)

//nolint:gochecknoglobals // cached display location
var (
	locationCache *time.Location
	locationOnce  sync.Once
)

func loadLocation() *time.Location {
	tz := os.Getenv("TZ")
	if tz == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}

	return loc
}

// GetLocation returns the display location. The result is cached after the first call.
func GetLocation() *time.Location {
	locationOnce.Do(func() {
		locationCache = loadLocation()
	})

	return locationCache
}

// FormatRFC3339 formats t in RFC3339 in the display location.
func FormatRFC3339(t time.Time) string {
	return t.In(GetLocation()).Format(time.RFC3339)
}

// FormatDate formats the calendar date of t in the display location.
func FormatDate(t time.Time) string {
	return t.In(GetLocation()).Format(time.DateOnly)
}

// DaysUntil returns the number of whole days from now until t, rounded up.
// Instants in the past yield 0.
func DaysUntil(now, t time.Time) int {
	d := t.Sub(now)
	if d <= 0 {
		return 0
	}

	return int(math.Ceil(d.Hours() / 24)) //nolint:mnd // hours per day
}

// ResetLocationCache resets the cached location. Tests only.
func ResetLocationCache() {
	locationOnce = sync.Once{}
	locationCache = nil
}
