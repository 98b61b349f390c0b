package secret

import (
	"context"

	"github.com/mpyw/smkit/internal/jsonutil"
	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/provider"
)

// ValidatePolicyClient is the interface for the validate-policy use case.
type ValidatePolicyClient interface {
	provider.PolicyValidator
}

// ValidatePolicyInput holds input for the validate-policy use case.
type ValidatePolicyInput struct {
	Name   string // Optional secret the policy would be attached to
	Policy string // JSON policy document
}

// ValidatePolicyUseCase validates resource policies.
type ValidatePolicyUseCase struct {
	Client ValidatePolicyClient
}

// Execute runs the validate-policy use case. The document is compacted
// before it is sent; malformed JSON fails without calling the service.
func (u *ValidatePolicyUseCase) Execute(ctx context.Context, input ValidatePolicyInput) (*model.ValidateResourcePolicyResult, error) {
	policy, err := jsonutil.Compact(input.Policy)
	if err != nil {
		return nil, err
	}

	return u.Client.ValidateResourcePolicy(ctx, input.Name, policy)
}
