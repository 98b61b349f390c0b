package secret_test

import (
	"context"
	"errors"

	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/provider"
)

var errNotImplemented = errors.New("not implemented")

type mockClient struct {
	listSecretsFunc            func(ctx context.Context, query provider.ListSecretsQuery) (*model.ListSecretsResult, error)
	describeSecretFunc         func(ctx context.Context, name string) (*model.SecretListEntry, error)
	deleteSecretFunc           func(ctx context.Context, name string, opts provider.DeleteOptions) (*model.DeleteSecretResult, error)
	updateSecretFunc           func(ctx context.Context, name string, opts provider.UpdateOptions) (*model.UpdateSecretResult, error)
	rotateSecretFunc           func(ctx context.Context, name string, opts provider.RotateOptions) (*model.RotateSecretResult, error)
	cancelRotateSecretFunc     func(ctx context.Context, name string) (*model.CancelRotateSecretResult, error)
	validateResourcePolicyFunc func(ctx context.Context, name, policy string) (*model.ValidateResourcePolicyResult, error)
}

func (m *mockClient) ListSecrets(ctx context.Context, query provider.ListSecretsQuery) (*model.ListSecretsResult, error) {
	if m.listSecretsFunc == nil {
		return nil, errNotImplemented
	}

	return m.listSecretsFunc(ctx, query)
}

func (m *mockClient) DescribeSecret(ctx context.Context, name string) (*model.SecretListEntry, error) {
	if m.describeSecretFunc == nil {
		return nil, errNotImplemented
	}

	return m.describeSecretFunc(ctx, name)
}

func (m *mockClient) DeleteSecret(ctx context.Context, name string, opts provider.DeleteOptions) (*model.DeleteSecretResult, error) {
	if m.deleteSecretFunc == nil {
		return nil, errNotImplemented
	}

	return m.deleteSecretFunc(ctx, name, opts)
}

func (m *mockClient) UpdateSecret(ctx context.Context, name string, opts provider.UpdateOptions) (*model.UpdateSecretResult, error) {
	if m.updateSecretFunc == nil {
		return nil, errNotImplemented
	}

	return m.updateSecretFunc(ctx, name, opts)
}

func (m *mockClient) RotateSecret(ctx context.Context, name string, opts provider.RotateOptions) (*model.RotateSecretResult, error) {
	if m.rotateSecretFunc == nil {
		return nil, errNotImplemented
	}

	return m.rotateSecretFunc(ctx, name, opts)
}

func (m *mockClient) CancelRotateSecret(ctx context.Context, name string) (*model.CancelRotateSecretResult, error) {
	if m.cancelRotateSecretFunc == nil {
		return nil, errNotImplemented
	}

	return m.cancelRotateSecretFunc(ctx, name)
}

func (m *mockClient) ValidateResourcePolicy(ctx context.Context, name, policy string) (*model.ValidateResourcePolicyResult, error) {
	if m.validateResourcePolicyFunc == nil {
		return nil, errNotImplemented
	}

	return m.validateResourcePolicyFunc(ctx, name, policy)
}

var _ provider.SecretService = (*mockClient)(nil)
