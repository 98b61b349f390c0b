package secret

import (
	"context"

	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/parallel"
	"github.com/mpyw/smkit/internal/provider"
)

// CancelRotationClient is the interface for the cancel-rotation use case.
type CancelRotationClient interface {
	provider.SecretRotator
}

// CancelRotationUseCase cancels rotation of one or more secrets.
type CancelRotationUseCase struct {
	Client CancelRotationClient
}

// Execute cancels rotation for every name concurrently.
func (u *CancelRotationUseCase) Execute(ctx context.Context, names []string) []*parallel.Result[string, *model.CancelRotateSecretResult] {
	return parallel.Execute(ctx, names, u.Client.CancelRotateSecret)
}
