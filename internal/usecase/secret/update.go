package secret

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/api/secretapi"
	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/provider"
)

// ErrNothingToUpdate is returned when an update sets no field.
var ErrNothingToUpdate = errors.New("nothing to update: specify a description, KMS key or value")

// UpdateClient is the interface for the update use case.
type UpdateClient interface {
	provider.SecretUpdater
	provider.SecretDescriber
}

// UpdateInput holds input for the update use case. Nil fields are left untouched.
type UpdateInput struct {
	Name        string
	Description *string
	KmsKeyID    *string
	Value       *string
}

// UpdateUseCase executes update operations.
type UpdateUseCase struct {
	Client UpdateClient
}

// GetCurrentDescription fetches the current description for preview.
// A missing secret yields an empty description.
func (u *UpdateUseCase) GetCurrentDescription(ctx context.Context, name string) (string, error) {
	entry, err := u.Client.DescribeSecret(ctx, name)
	if err != nil {
		if rnf := (*secretapi.ResourceNotFoundException)(nil); errors.As(err, &rnf) {
			return "", nil
		}

		return "", err
	}

	return lo.FromPtr(entry.Description()), nil
}

// Execute runs the update use case.
func (u *UpdateUseCase) Execute(ctx context.Context, input UpdateInput) (*model.UpdateSecretResult, error) {
	if input.Description == nil && input.KmsKeyID == nil && input.Value == nil {
		return nil, ErrNothingToUpdate
	}

	return u.Client.UpdateSecret(ctx, input.Name, provider.UpdateOptions{
		Description:  input.Description,
		KmsKeyID:     input.KmsKeyID,
		SecretString: input.Value,
	})
}
