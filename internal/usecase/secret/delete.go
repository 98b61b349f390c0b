package secret

import (
	"context"

	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/parallel"
	"github.com/mpyw/smkit/internal/provider"
)

// DeleteClient is the interface for the delete use case.
type DeleteClient interface {
	provider.SecretDeleter
}

// DeleteInput holds input for the delete use case.
type DeleteInput struct {
	Names          []string
	Force          bool  // Force immediate deletion
	RecoveryWindow int64 // Days before permanent deletion (7-30)
}

// DeleteUseCase executes delete operations.
type DeleteUseCase struct {
	Client DeleteClient
}

// Execute deletes every name concurrently. Failures are reported per name.
func (u *DeleteUseCase) Execute(ctx context.Context, input DeleteInput) []*parallel.Result[string, *model.DeleteSecretResult] {
	opts := provider.DeleteOptions{
		Force:                input.Force,
		RecoveryWindowInDays: input.RecoveryWindow,
	}

	return parallel.Execute(ctx, input.Names, func(ctx context.Context, name string) (*model.DeleteSecretResult, error) {
		return u.Client.DeleteSecret(ctx, name, opts)
	})
}
