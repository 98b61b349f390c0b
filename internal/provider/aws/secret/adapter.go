// Package secret provides AWS Secrets Manager adapter implementing provider interfaces.
package secret

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/api/secretapi"
	"github.com/mpyw/smkit/internal/infra"
	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/provider"
)

// Client combines all AWS Secrets Manager API interfaces required by the adapter.
type Client interface {
	secretapi.ListSecretsAPI
	secretapi.DescribeSecretAPI
	secretapi.DeleteSecretAPI
	secretapi.UpdateSecretAPI
	secretapi.RotateSecretAPI
	secretapi.CancelRotateSecretAPI
	secretapi.ValidateResourcePolicyAPI
}

// Adapter implements provider.SecretService for AWS Secrets Manager.
type Adapter struct {
	client Client
}

// NewAdapter creates a new AWS Secrets Manager adapter from the AWS configuration
// selected by opts.
func NewAdapter(ctx context.Context, opts infra.Options) (*Adapter, error) {
	client, err := infra.NewSecretClient(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	return &Adapter{client: client}, nil
}

// New creates a new AWS Secrets Manager adapter from an existing client.
func New(client Client) *Adapter {
	return &Adapter{client: client}
}

// ============================================================================
// SecretLister / SecretDescriber Implementation
// ============================================================================

// ListSecrets returns one page of secrets.
func (a *Adapter) ListSecrets(ctx context.Context, query provider.ListSecretsQuery) (*model.ListSecretsResult, error) {
	input := &secretapi.ListSecretsInput{}

	if len(query.Filters) > 0 {
		input.Filters = lo.Map(query.Filters, func(f *model.Filter, _ int) secretapi.Filter {
			return FilterToAWS(f)
		})
	}

	if query.MaxResults > 0 {
		input.MaxResults = lo.ToPtr(query.MaxResults)
	}

	if query.NextToken != "" {
		input.NextToken = lo.ToPtr(query.NextToken)
	}

	if query.IncludePlannedDeletion {
		input.IncludePlannedDeletion = lo.ToPtr(true)
	}

	if query.SortOrder != provider.SortOrderDefault {
		input.SortOrder = secretapi.SortOrderType(query.SortOrder)
	}

	output, err := a.client.ListSecrets(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to list secrets: %w", err)
	}

	return ListSecretsResultFromAWS(output), nil
}

// DescribeSecret retrieves secret metadata without the value.
func (a *Adapter) DescribeSecret(ctx context.Context, name string) (*model.SecretListEntry, error) {
	output, err := a.client.DescribeSecret(ctx, &secretapi.DescribeSecretInput{
		SecretId: lo.ToPtr(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe secret: %w", err)
	}

	return describeOutputToEntry(output), nil
}

// ============================================================================
// SecretDeleter / SecretUpdater Implementation
// ============================================================================

// DeleteSecret deletes a secret.
func (a *Adapter) DeleteSecret(ctx context.Context, name string, opts provider.DeleteOptions) (*model.DeleteSecretResult, error) {
	input := &secretapi.DeleteSecretInput{
		SecretId: lo.ToPtr(name),
	}

	if opts.Force {
		input.ForceDeleteWithoutRecovery = lo.ToPtr(true)
	} else if opts.RecoveryWindowInDays > 0 {
		input.RecoveryWindowInDays = lo.ToPtr(opts.RecoveryWindowInDays)
	}

	output, err := a.client.DeleteSecret(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to delete secret: %w", err)
	}

	return DeleteSecretResultFromAWS(output), nil
}

// UpdateSecret updates the description, KMS key or value of a secret.
func (a *Adapter) UpdateSecret(ctx context.Context, name string, opts provider.UpdateOptions) (*model.UpdateSecretResult, error) {
	output, err := a.client.UpdateSecret(ctx, &secretapi.UpdateSecretInput{
		SecretId:     lo.ToPtr(name),
		Description:  opts.Description,
		KmsKeyId:     opts.KmsKeyID,
		SecretString: opts.SecretString,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update secret: %w", err)
	}

	return UpdateSecretResultFromAWS(output), nil
}

// ============================================================================
// SecretRotator Implementation
// ============================================================================

// RotateSecret configures rotation and optionally starts it.
func (a *Adapter) RotateSecret(ctx context.Context, name string, opts provider.RotateOptions) (*model.RotateSecretResult, error) {
	input := &secretapi.RotateSecretInput{
		SecretId:          lo.ToPtr(name),
		RotationRules:     RotationRulesToAWS(opts.Rules),
		RotateImmediately: opts.Immediately,
	}

	if opts.RotationLambdaARN != "" {
		input.RotationLambdaARN = lo.ToPtr(opts.RotationLambdaARN)
	}

	output, err := a.client.RotateSecret(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate secret: %w", err)
	}

	return RotateSecretResultFromAWS(output), nil
}

// CancelRotateSecret cancels rotation of a secret.
func (a *Adapter) CancelRotateSecret(ctx context.Context, name string) (*model.CancelRotateSecretResult, error) {
	output, err := a.client.CancelRotateSecret(ctx, &secretapi.CancelRotateSecretInput{
		SecretId: lo.ToPtr(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel rotation: %w", err)
	}

	return CancelRotateSecretResultFromAWS(output), nil
}

// ============================================================================
// PolicyValidator Implementation
// ============================================================================

// ValidateResourcePolicy validates policy. An empty name validates the policy
// without reference to an existing secret.
func (a *Adapter) ValidateResourcePolicy(ctx context.Context, name string, policy string) (*model.ValidateResourcePolicyResult, error) {
	input := &secretapi.ValidateResourcePolicyInput{
		ResourcePolicy: lo.ToPtr(policy),
	}

	if name != "" {
		input.SecretId = lo.ToPtr(name)
	}

	output, err := a.client.ValidateResourcePolicy(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to validate resource policy: %w", err)
	}

	return ValidateResourcePolicyResultFromAWS(output), nil
}

// ============================================================================
// Compile-time Interface Checks
// ============================================================================

var (
	_ provider.SecretLister    = (*Adapter)(nil)
	_ provider.SecretDescriber = (*Adapter)(nil)
	_ provider.SecretDeleter   = (*Adapter)(nil)
	_ provider.SecretUpdater   = (*Adapter)(nil)
	_ provider.SecretRotator   = (*Adapter)(nil)
	_ provider.PolicyValidator = (*Adapter)(nil)
	_ provider.SecretService   = (*Adapter)(nil)
)
