package model

import (
	"encoding/json"
	"fmt"

	"github.com/mpyw/smkit/internal/hashcode"
)

// RotationRulesType is the rotation schedule of a secret.
//
// AutomaticallyAfterDays must be between 1 and 1000 and cannot be combined
// with ScheduleExpression. The service enforces both rules.
type RotationRulesType struct {
	automaticallyAfterDays *int64
	duration               *string
	scheduleExpression     *string
}

// NewRotationRulesType returns an empty RotationRulesType.
func NewRotationRulesType() *RotationRulesType {
	return &RotationRulesType{}
}

// AutomaticallyAfterDays returns the number of days between rotations, or nil if absent.
func (r *RotationRulesType) AutomaticallyAfterDays() *int64 {
	return clonePtr(r.automaticallyAfterDays)
}

// SetAutomaticallyAfterDays sets AutomaticallyAfterDays. A nil value clears it.
func (r *RotationRulesType) SetAutomaticallyAfterDays(v *int64) {
	r.automaticallyAfterDays = clonePtr(v)
}

// WithAutomaticallyAfterDays sets AutomaticallyAfterDays and returns r.
func (r *RotationRulesType) WithAutomaticallyAfterDays(v int64) *RotationRulesType {
	r.automaticallyAfterDays = &v

	return r
}

// Duration returns the length of the rotation window, such as "3h", or nil if absent.
func (r *RotationRulesType) Duration() *string {
	return clonePtr(r.duration)
}

// SetDuration sets Duration. A nil value clears it.
func (r *RotationRulesType) SetDuration(v *string) {
	r.duration = clonePtr(v)
}

// WithDuration sets Duration and returns r.
func (r *RotationRulesType) WithDuration(v string) *RotationRulesType {
	r.duration = &v

	return r
}

// ScheduleExpression returns the cron() or rate() expression for rotation, or nil if absent.
func (r *RotationRulesType) ScheduleExpression() *string {
	return clonePtr(r.scheduleExpression)
}

// SetScheduleExpression sets ScheduleExpression. A nil value clears it.
func (r *RotationRulesType) SetScheduleExpression(v *string) {
	r.scheduleExpression = clonePtr(v)
}

// WithScheduleExpression sets ScheduleExpression and returns r.
func (r *RotationRulesType) WithScheduleExpression(v string) *RotationRulesType {
	r.scheduleExpression = &v

	return r
}

// Equal reports whether r and other hold the same fields.
func (r *RotationRulesType) Equal(other *RotationRulesType) bool {
	if r == nil || other == nil {
		return r == other
	}

	return equalPtr(r.automaticallyAfterDays, other.automaticallyAfterDays) &&
		equalPtr(r.duration, other.duration) &&
		equalPtr(r.scheduleExpression, other.scheduleExpression)
}

// HashCode returns a structural hash consistent with Equal.
func (r *RotationRulesType) HashCode() int32 {
	h := hashcode.Seed
	h = hashcode.Combine(h, hashcode.Int64(r.automaticallyAfterDays))
	h = hashcode.Combine(h, hashcode.String(r.duration))
	h = hashcode.Combine(h, hashcode.String(r.scheduleExpression))

	return h
}

// String renders the present fields for debugging.
func (r *RotationRulesType) String() string {
	var w fieldWriter

	if r.automaticallyAfterDays != nil {
		w.field("AutomaticallyAfterDays", formatInt64(*r.automaticallyAfterDays))
	}

	if r.duration != nil {
		w.field("Duration", *r.duration)
	}

	if r.scheduleExpression != nil {
		w.field("ScheduleExpression", *r.scheduleExpression)
	}

	return w.String()
}

type rotationRulesTypeWire struct {
	AutomaticallyAfterDays *int64  `json:"AutomaticallyAfterDays,omitempty"`
	Duration               *string `json:"Duration,omitempty"`
	ScheduleExpression     *string `json:"ScheduleExpression,omitempty"`
}

// MarshalJSON encodes r using the service wire keys.
func (r *RotationRulesType) MarshalJSON() ([]byte, error) {
	return json.Marshal(rotationRulesTypeWire{
		AutomaticallyAfterDays: r.automaticallyAfterDays,
		Duration:               r.duration,
		ScheduleExpression:     r.scheduleExpression,
	})
}

// UnmarshalJSON decodes the service wire representation into r.
func (r *RotationRulesType) UnmarshalJSON(data []byte) error {
	var wire rotationRulesTypeWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode RotationRulesType: %w", err)
	}

	*r = RotationRulesType{
		automaticallyAfterDays: wire.AutomaticallyAfterDays,
		duration:               wire.Duration,
		scheduleExpression:     wire.ScheduleExpression,
	}

	return nil
}
