package secret

import (
	"context"

	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/provider"
)

// DescribeClient is the interface for the describe use case.
type DescribeClient interface {
	provider.SecretDescriber
}

// DescribeUseCase fetches secret metadata.
type DescribeUseCase struct {
	Client DescribeClient
}

// Execute returns the metadata of name. The secret value is never fetched.
func (u *DescribeUseCase) Execute(ctx context.Context, name string) (*model.SecretListEntry, error) {
	return u.Client.DescribeSecret(ctx, name)
}
