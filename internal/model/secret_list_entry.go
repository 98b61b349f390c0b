package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mpyw/smkit/internal/hashcode"
)

// SecretListEntry summarises a secret in a ListSecretsResult. It never
// carries the secret value.
type SecretListEntry struct {
	arn                    *string
	name                   *string
	description            *string
	kmsKeyID               *string
	rotationEnabled        *bool
	rotationLambdaARN      *string
	rotationRules          *RotationRulesType
	lastRotatedDate        *time.Time
	lastChangedDate        *time.Time
	lastAccessedDate       *time.Time
	deletedDate            *time.Time
	nextRotationDate       *time.Time
	tags                   []*Tag
	secretVersionsToStages map[string][]string
	owningService          *string
	createdDate            *time.Time
	primaryRegion          *string
}

// NewSecretListEntry returns an empty SecretListEntry.
func NewSecretListEntry() *SecretListEntry {
	return &SecretListEntry{}
}

// ARN returns the ARN of the secret, or nil if absent.
func (e *SecretListEntry) ARN() *string {
	return clonePtr(e.arn)
}

// SetARN sets ARN. A nil value clears it.
func (e *SecretListEntry) SetARN(v *string) {
	e.arn = clonePtr(v)
}

// WithARN sets ARN and returns e.
func (e *SecretListEntry) WithARN(v string) *SecretListEntry {
	e.arn = &v

	return e
}

// Name returns the friendly name of the secret, or nil if absent.
func (e *SecretListEntry) Name() *string {
	return clonePtr(e.name)
}

// SetName sets Name. A nil value clears it.
func (e *SecretListEntry) SetName(v *string) {
	e.name = clonePtr(v)
}

// WithName sets Name and returns e.
func (e *SecretListEntry) WithName(v string) *SecretListEntry {
	e.name = &v

	return e
}

// Description returns the Description field, or nil if absent.
func (e *SecretListEntry) Description() *string {
	return clonePtr(e.description)
}

// SetDescription sets Description. A nil value clears it.
func (e *SecretListEntry) SetDescription(v *string) {
	e.description = clonePtr(v)
}

// WithDescription sets Description and returns e.
func (e *SecretListEntry) WithDescription(v string) *SecretListEntry {
	e.description = &v

	return e
}

// KmsKeyID returns the ARN of the KMS key that encrypts the secret, or nil if absent.
func (e *SecretListEntry) KmsKeyID() *string {
	return clonePtr(e.kmsKeyID)
}

// SetKmsKeyID sets KmsKeyID. A nil value clears it.
func (e *SecretListEntry) SetKmsKeyID(v *string) {
	e.kmsKeyID = clonePtr(v)
}

// WithKmsKeyID sets KmsKeyID and returns e.
func (e *SecretListEntry) WithKmsKeyID(v string) *SecretListEntry {
	e.kmsKeyID = &v

	return e
}

// RotationEnabled returns whether automatic rotation is enabled, or nil if absent.
func (e *SecretListEntry) RotationEnabled() *bool {
	return clonePtr(e.rotationEnabled)
}

// IsRotationEnabled is a synonym for RotationEnabled.
func (e *SecretListEntry) IsRotationEnabled() *bool {
	return e.RotationEnabled()
}

// SetRotationEnabled sets RotationEnabled. A nil value clears it.
func (e *SecretListEntry) SetRotationEnabled(v *bool) {
	e.rotationEnabled = clonePtr(v)
}

// WithRotationEnabled sets RotationEnabled and returns e.
func (e *SecretListEntry) WithRotationEnabled(v bool) *SecretListEntry {
	e.rotationEnabled = &v

	return e
}

// RotationLambdaARN returns the ARN of the rotation function, or nil if absent.
func (e *SecretListEntry) RotationLambdaARN() *string {
	return clonePtr(e.rotationLambdaARN)
}

// SetRotationLambdaARN sets RotationLambdaARN. A nil value clears it.
func (e *SecretListEntry) SetRotationLambdaARN(v *string) {
	e.rotationLambdaARN = clonePtr(v)
}

// WithRotationLambdaARN sets RotationLambdaARN and returns e.
func (e *SecretListEntry) WithRotationLambdaARN(v string) *SecretListEntry {
	e.rotationLambdaARN = &v

	return e
}

// RotationRules returns the rotation schedule, or nil if absent.
func (e *SecretListEntry) RotationRules() *RotationRulesType {
	return e.rotationRules
}

// SetRotationRules sets RotationRules. A nil value clears it.
func (e *SecretListEntry) SetRotationRules(v *RotationRulesType) {
	e.rotationRules = v
}

// WithRotationRules sets RotationRules and returns e.
func (e *SecretListEntry) WithRotationRules(v *RotationRulesType) *SecretListEntry {
	e.rotationRules = v

	return e
}

// LastRotatedDate returns the LastRotatedDate field, or nil if absent.
func (e *SecretListEntry) LastRotatedDate() *time.Time {
	return clonePtr(e.lastRotatedDate)
}

// SetLastRotatedDate sets LastRotatedDate. A nil value clears it.
func (e *SecretListEntry) SetLastRotatedDate(v *time.Time) {
	e.lastRotatedDate = clonePtr(v)
}

// WithLastRotatedDate sets LastRotatedDate and returns e.
func (e *SecretListEntry) WithLastRotatedDate(v time.Time) *SecretListEntry {
	e.lastRotatedDate = &v

	return e
}

// LastChangedDate returns the LastChangedDate field, or nil if absent.
func (e *SecretListEntry) LastChangedDate() *time.Time {
	return clonePtr(e.lastChangedDate)
}

// SetLastChangedDate sets LastChangedDate. A nil value clears it.
func (e *SecretListEntry) SetLastChangedDate(v *time.Time) {
	e.lastChangedDate = clonePtr(v)
}

// WithLastChangedDate sets LastChangedDate and returns e.
func (e *SecretListEntry) WithLastChangedDate(v time.Time) *SecretListEntry {
	e.lastChangedDate = &v

	return e
}

// LastAccessedDate returns the last access date, truncated to the day, or nil if absent.
func (e *SecretListEntry) LastAccessedDate() *time.Time {
	return clonePtr(e.lastAccessedDate)
}

// SetLastAccessedDate sets LastAccessedDate. A nil value clears it.
func (e *SecretListEntry) SetLastAccessedDate(v *time.Time) {
	e.lastAccessedDate = clonePtr(v)
}

// WithLastAccessedDate sets LastAccessedDate and returns e.
func (e *SecretListEntry) WithLastAccessedDate(v time.Time) *SecretListEntry {
	e.lastAccessedDate = &v

	return e
}

// DeletedDate returns the date the secret was scheduled for deletion, or nil if it is not.
func (e *SecretListEntry) DeletedDate() *time.Time {
	return clonePtr(e.deletedDate)
}

// SetDeletedDate sets DeletedDate. A nil value clears it.
func (e *SecretListEntry) SetDeletedDate(v *time.Time) {
	e.deletedDate = clonePtr(v)
}

// WithDeletedDate sets DeletedDate and returns e.
func (e *SecretListEntry) WithDeletedDate(v time.Time) *SecretListEntry {
	e.deletedDate = &v

	return e
}

// NextRotationDate returns the NextRotationDate field, or nil if absent.
func (e *SecretListEntry) NextRotationDate() *time.Time {
	return clonePtr(e.nextRotationDate)
}

// SetNextRotationDate sets NextRotationDate. A nil value clears it.
func (e *SecretListEntry) SetNextRotationDate(v *time.Time) {
	e.nextRotationDate = clonePtr(v)
}

// WithNextRotationDate sets NextRotationDate and returns e.
func (e *SecretListEntry) WithNextRotationDate(v time.Time) *SecretListEntry {
	e.nextRotationDate = &v

	return e
}

// Tags returns a copy of the Tags field, or nil if absent.
func (e *SecretListEntry) Tags() []*Tag {
	return cloneSlice(e.tags)
}

// SetTags replaces Tags with a copy of v. A nil slice clears it.
func (e *SecretListEntry) SetTags(v []*Tag) {
	e.tags = cloneSlice(v)
}

// WithTags appends the non-nil values to Tags and returns e.
func (e *SecretListEntry) WithTags(values ...*Tag) *SecretListEntry {
	e.tags = appendNonNil(e.tags, values)

	return e
}

// WithTagsSlice replaces Tags with a copy of v and returns e.
func (e *SecretListEntry) WithTagsSlice(v []*Tag) *SecretListEntry {
	e.SetTags(v)

	return e
}

// SecretVersionsToStages returns a copy of the staging labels per version ID, or nil if absent.
func (e *SecretListEntry) SecretVersionsToStages() map[string][]string {
	return cloneStringListMap(e.secretVersionsToStages)
}

// SetSecretVersionsToStages replaces SecretVersionsToStages with a copy of v. A nil map clears it.
func (e *SecretListEntry) SetSecretVersionsToStages(v map[string][]string) {
	e.secretVersionsToStages = cloneStringListMap(v)
}

// WithSecretVersionsToStages sets SecretVersionsToStages and returns e.
func (e *SecretListEntry) WithSecretVersionsToStages(v map[string][]string) *SecretListEntry {
	e.SetSecretVersionsToStages(v)

	return e
}

// AddSecretVersionsToStagesEntry adds a single mapping to SecretVersionsToStages and returns e.
func (e *SecretListEntry) AddSecretVersionsToStagesEntry(key string, value []string) *SecretListEntry {
	if e.secretVersionsToStages == nil {
		e.secretVersionsToStages = make(map[string][]string)
	}

	e.secretVersionsToStages[key] = cloneSlice(value)

	return e
}

// OwningService returns the ID of the service that manages the secret, or nil if absent.
func (e *SecretListEntry) OwningService() *string {
	return clonePtr(e.owningService)
}

// SetOwningService sets OwningService. A nil value clears it.
func (e *SecretListEntry) SetOwningService(v *string) {
	e.owningService = clonePtr(v)
}

// WithOwningService sets OwningService and returns e.
func (e *SecretListEntry) WithOwningService(v string) *SecretListEntry {
	e.owningService = &v

	return e
}

// CreatedDate returns the CreatedDate field, or nil if absent.
func (e *SecretListEntry) CreatedDate() *time.Time {
	return clonePtr(e.createdDate)
}

// SetCreatedDate sets CreatedDate. A nil value clears it.
func (e *SecretListEntry) SetCreatedDate(v *time.Time) {
	e.createdDate = clonePtr(v)
}

// WithCreatedDate sets CreatedDate and returns e.
func (e *SecretListEntry) WithCreatedDate(v time.Time) *SecretListEntry {
	e.createdDate = &v

	return e
}

// PrimaryRegion returns the Region the secret is replicated from, or nil if absent.
func (e *SecretListEntry) PrimaryRegion() *string {
	return clonePtr(e.primaryRegion)
}

// SetPrimaryRegion sets PrimaryRegion. A nil value clears it.
func (e *SecretListEntry) SetPrimaryRegion(v *string) {
	e.primaryRegion = clonePtr(v)
}

// WithPrimaryRegion sets PrimaryRegion and returns e.
func (e *SecretListEntry) WithPrimaryRegion(v string) *SecretListEntry {
	e.primaryRegion = &v

	return e
}

// Equal reports whether e and other hold the same fields.
func (e *SecretListEntry) Equal(other *SecretListEntry) bool {
	if e == nil || other == nil {
		return e == other
	}

	return equalPtr(e.arn, other.arn) &&
		equalPtr(e.name, other.name) &&
		equalPtr(e.description, other.description) &&
		equalPtr(e.kmsKeyID, other.kmsKeyID) &&
		equalPtr(e.rotationEnabled, other.rotationEnabled) &&
		equalPtr(e.rotationLambdaARN, other.rotationLambdaARN) &&
		e.rotationRules.Equal(other.rotationRules) &&
		equalTime(e.lastRotatedDate, other.lastRotatedDate) &&
		equalTime(e.lastChangedDate, other.lastChangedDate) &&
		equalTime(e.lastAccessedDate, other.lastAccessedDate) &&
		equalTime(e.deletedDate, other.deletedDate) &&
		equalTime(e.nextRotationDate, other.nextRotationDate) &&
		equalObjects(e.tags, other.tags) &&
		equalStringListMap(e.secretVersionsToStages, other.secretVersionsToStages) &&
		equalPtr(e.owningService, other.owningService) &&
		equalTime(e.createdDate, other.createdDate) &&
		equalPtr(e.primaryRegion, other.primaryRegion)
}

// HashCode returns a structural hash consistent with Equal.
func (e *SecretListEntry) HashCode() int32 {
	h := hashcode.Seed
	h = hashcode.Combine(h, hashcode.String(e.arn))
	h = hashcode.Combine(h, hashcode.String(e.name))
	h = hashcode.Combine(h, hashcode.String(e.description))
	h = hashcode.Combine(h, hashcode.String(e.kmsKeyID))
	h = hashcode.Combine(h, hashcode.Bool(e.rotationEnabled))
	h = hashcode.Combine(h, hashcode.String(e.rotationLambdaARN))
	h = hashcode.Combine(h, hashcode.Object(e.rotationRules))
	h = hashcode.Combine(h, hashcode.Time(e.lastRotatedDate))
	h = hashcode.Combine(h, hashcode.Time(e.lastChangedDate))
	h = hashcode.Combine(h, hashcode.Time(e.lastAccessedDate))
	h = hashcode.Combine(h, hashcode.Time(e.deletedDate))
	h = hashcode.Combine(h, hashcode.Time(e.nextRotationDate))
	h = hashcode.Combine(h, hashcode.Objects(e.tags))
	h = hashcode.Combine(h, hashcode.StringListMap(e.secretVersionsToStages))
	h = hashcode.Combine(h, hashcode.String(e.owningService))
	h = hashcode.Combine(h, hashcode.Time(e.createdDate))
	h = hashcode.Combine(h, hashcode.String(e.primaryRegion))

	return h
}

// String renders the present fields for debugging.
func (e *SecretListEntry) String() string {
	var w fieldWriter

	if e.arn != nil {
		w.field("ARN", *e.arn)
	}

	if e.name != nil {
		w.field("Name", *e.name)
	}

	if e.description != nil {
		w.field("Description", *e.description)
	}

	if e.kmsKeyID != nil {
		w.field("KmsKeyId", *e.kmsKeyID)
	}

	if e.rotationEnabled != nil {
		w.field("RotationEnabled", formatBool(*e.rotationEnabled))
	}

	if e.rotationLambdaARN != nil {
		w.field("RotationLambdaARN", *e.rotationLambdaARN)
	}

	if e.rotationRules != nil {
		w.field("RotationRules", e.rotationRules.String())
	}

	if e.lastRotatedDate != nil {
		w.field("LastRotatedDate", formatTime(*e.lastRotatedDate))
	}

	if e.lastChangedDate != nil {
		w.field("LastChangedDate", formatTime(*e.lastChangedDate))
	}

	if e.lastAccessedDate != nil {
		w.field("LastAccessedDate", formatTime(*e.lastAccessedDate))
	}

	if e.deletedDate != nil {
		w.field("DeletedDate", formatTime(*e.deletedDate))
	}

	if e.nextRotationDate != nil {
		w.field("NextRotationDate", formatTime(*e.nextRotationDate))
	}

	if e.tags != nil {
		w.field("Tags", formatObjects(e.tags))
	}

	if e.secretVersionsToStages != nil {
		w.field("SecretVersionsToStages", formatStringListMap(e.secretVersionsToStages))
	}

	if e.owningService != nil {
		w.field("OwningService", *e.owningService)
	}

	if e.createdDate != nil {
		w.field("CreatedDate", formatTime(*e.createdDate))
	}

	if e.primaryRegion != nil {
		w.field("PrimaryRegion", *e.primaryRegion)
	}

	return w.String()
}

type secretListEntryWire struct {
	ARN                    *string              `json:"ARN,omitempty"`
	Name                   *string              `json:"Name,omitempty"`
	Description            *string              `json:"Description,omitempty"`
	KmsKeyID               *string              `json:"KmsKeyId,omitempty"`
	RotationEnabled        *bool                `json:"RotationEnabled,omitempty"`
	RotationLambdaARN      *string              `json:"RotationLambdaARN,omitempty"`
	RotationRules          *RotationRulesType   `json:"RotationRules,omitempty"`
	LastRotatedDate        *epochSeconds        `json:"LastRotatedDate,omitempty"`
	LastChangedDate        *epochSeconds        `json:"LastChangedDate,omitempty"`
	LastAccessedDate       *epochSeconds        `json:"LastAccessedDate,omitempty"`
	DeletedDate            *epochSeconds        `json:"DeletedDate,omitempty"`
	NextRotationDate       *epochSeconds        `json:"NextRotationDate,omitempty"`
	Tags                   *[]*Tag              `json:"Tags,omitempty"`
	SecretVersionsToStages *map[string][]string `json:"SecretVersionsToStages,omitempty"`
	OwningService          *string              `json:"OwningService,omitempty"`
	CreatedDate            *epochSeconds        `json:"CreatedDate,omitempty"`
	PrimaryRegion          *string              `json:"PrimaryRegion,omitempty"`
}

// MarshalJSON encodes e using the service wire keys.
func (e *SecretListEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(secretListEntryWire{
		ARN:                    e.arn,
		Name:                   e.name,
		Description:            e.description,
		KmsKeyID:               e.kmsKeyID,
		RotationEnabled:        e.rotationEnabled,
		RotationLambdaARN:      e.rotationLambdaARN,
		RotationRules:          e.rotationRules,
		LastRotatedDate:        toEpoch(e.lastRotatedDate),
		LastChangedDate:        toEpoch(e.lastChangedDate),
		LastAccessedDate:       toEpoch(e.lastAccessedDate),
		DeletedDate:            toEpoch(e.deletedDate),
		NextRotationDate:       toEpoch(e.nextRotationDate),
		Tags:                   wireSlice(e.tags),
		SecretVersionsToStages: wireMap(e.secretVersionsToStages),
		OwningService:          e.owningService,
		CreatedDate:            toEpoch(e.createdDate),
		PrimaryRegion:          e.primaryRegion,
	})
}

// UnmarshalJSON decodes the service wire representation into e.
func (e *SecretListEntry) UnmarshalJSON(data []byte) error {
	var wire secretListEntryWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode SecretListEntry: %w", err)
	}

	*e = SecretListEntry{
		arn:                    wire.ARN,
		name:                   wire.Name,
		description:            wire.Description,
		kmsKeyID:               wire.KmsKeyID,
		rotationEnabled:        wire.RotationEnabled,
		rotationLambdaARN:      wire.RotationLambdaARN,
		rotationRules:          wire.RotationRules,
		lastRotatedDate:        fromEpoch(wire.LastRotatedDate),
		lastChangedDate:        fromEpoch(wire.LastChangedDate),
		lastAccessedDate:       fromEpoch(wire.LastAccessedDate),
		deletedDate:            fromEpoch(wire.DeletedDate),
		nextRotationDate:       fromEpoch(wire.NextRotationDate),
		tags:                   fromWireSlice(wire.Tags),
		secretVersionsToStages: fromWireMap(wire.SecretVersionsToStages),
		owningService:          wire.OwningService,
		createdDate:            fromEpoch(wire.CreatedDate),
		primaryRegion:          wire.PrimaryRegion,
	}

	return nil
}
