package provider

import (
	"context"

	"github.com/mpyw/smkit/internal/model"
)

// ============================================================================
// UseCase Layer Interfaces
// ============================================================================

// SecretLister lists secret summaries one page at a time.
type SecretLister interface {
	// ListSecrets returns one page of secrets matching query.
	// The result's NextToken is nil on the last page.
	ListSecrets(ctx context.Context, query ListSecretsQuery) (*model.ListSecretsResult, error)
}

// SecretDescriber provides secret metadata without the value.
type SecretDescriber interface {
	// DescribeSecret retrieves the summary of a single secret.
	DescribeSecret(ctx context.Context, name string) (*model.SecretListEntry, error)
}

// SecretDeleter deletes secrets.
type SecretDeleter interface {
	// DeleteSecret schedules a secret for deletion, or deletes it
	// immediately when opts.Force is set.
	DeleteSecret(ctx context.Context, name string, opts DeleteOptions) (*model.DeleteSecretResult, error)
}

// SecretUpdater updates secret metadata or value.
type SecretUpdater interface {
	// UpdateSecret applies the non-nil fields of opts.
	UpdateSecret(ctx context.Context, name string, opts UpdateOptions) (*model.UpdateSecretResult, error)
}

// SecretRotator configures and cancels rotation.
type SecretRotator interface {
	// RotateSecret sets the rotation configuration and optionally starts a rotation.
	RotateSecret(ctx context.Context, name string, opts RotateOptions) (*model.RotateSecretResult, error)

	// CancelRotateSecret turns off automatic rotation and cancels an in-progress rotation.
	CancelRotateSecret(ctx context.Context, name string) (*model.CancelRotateSecretResult, error)
}

// PolicyValidator validates resource policies.
type PolicyValidator interface {
	// ValidateResourcePolicy checks policy, optionally in the context of an existing secret.
	ValidateResourcePolicy(ctx context.Context, name string, policy string) (*model.ValidateResourcePolicyResult, error)
}

// SecretService combines all secret operations.
type SecretService interface {
	SecretLister
	SecretDescriber
	SecretDeleter
	SecretUpdater
	SecretRotator
	PolicyValidator
}

// ============================================================================
// Options
// ============================================================================

// SortOrder is the order of a listing by creation date.
type SortOrder string

// Sort orders.
const (
	SortOrderDefault SortOrder = ""
	SortOrderAsc     SortOrder = "asc"
	SortOrderDesc    SortOrder = "desc"
)

// ListSecretsQuery selects a page of secrets.
type ListSecretsQuery struct {
	Filters                []*model.Filter
	MaxResults             int32 // 0 lets the service choose
	NextToken              string
	IncludePlannedDeletion bool
	SortOrder              SortOrder
}

// DeleteOptions controls how a secret is deleted.
type DeleteOptions struct {
	Force                bool  // Delete immediately without a recovery window
	RecoveryWindowInDays int64 // 7-30; 0 uses the service default
}

// UpdateOptions lists the fields to change. Nil fields are left untouched.
type UpdateOptions struct {
	Description  *string
	KmsKeyID     *string
	SecretString *string
}

// RotateOptions configures rotation.
type RotateOptions struct {
	Rules             *model.RotationRulesType
	RotationLambdaARN string
	// Immediately is nil to use the service default (rotate now).
	Immediately *bool
}
