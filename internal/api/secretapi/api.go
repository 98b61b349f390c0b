// Package secretapi provides interfaces for AWS Secrets Manager.
package secretapi

import (
	"context"
)

// ListSecretsAPI is the interface for listing secrets.
type ListSecretsAPI interface {
	ListSecrets(ctx context.Context, params *ListSecretsInput, optFns ...func(*Options)) (*ListSecretsOutput, error)
}

// DescribeSecretAPI is the interface for getting secret metadata.
type DescribeSecretAPI interface {
	DescribeSecret(ctx context.Context, params *DescribeSecretInput, optFns ...func(*Options)) (*DescribeSecretOutput, error)
}

// DeleteSecretAPI is the interface for deleting a secret.
type DeleteSecretAPI interface {
	DeleteSecret(ctx context.Context, params *DeleteSecretInput, optFns ...func(*Options)) (*DeleteSecretOutput, error)
}

// UpdateSecretAPI is the interface for updating secret metadata or value.
type UpdateSecretAPI interface {
	UpdateSecret(ctx context.Context, params *UpdateSecretInput, optFns ...func(*Options)) (*UpdateSecretOutput, error)
}

// RotateSecretAPI is the interface for configuring and starting rotation.
type RotateSecretAPI interface {
	RotateSecret(ctx context.Context, params *RotateSecretInput, optFns ...func(*Options)) (*RotateSecretOutput, error)
}

// CancelRotateSecretAPI is the interface for cancelling rotation.
type CancelRotateSecretAPI interface {
	CancelRotateSecret(ctx context.Context, params *CancelRotateSecretInput, optFns ...func(*Options)) (*CancelRotateSecretOutput, error)
}

// ValidateResourcePolicyAPI is the interface for validating a resource policy.
type ValidateResourcePolicyAPI interface {
	ValidateResourcePolicy(ctx context.Context, params *ValidateResourcePolicyInput, optFns ...func(*Options)) (*ValidateResourcePolicyOutput, error)
}
