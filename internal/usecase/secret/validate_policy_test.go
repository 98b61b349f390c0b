package secret_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

func TestValidatePolicyUseCase_Execute(t *testing.T) {
	t.Parallel()

	t.Run("compacts before sending", func(t *testing.T) {
		t.Parallel()

		var gotName, gotPolicy string

		uc := &secret.ValidatePolicyUseCase{Client: &mockClient{
			validateResourcePolicyFunc: func(_ context.Context, name, policy string) (*model.ValidateResourcePolicyResult, error) {
				gotName, gotPolicy = name, policy

				return model.NewValidateResourcePolicyResult().WithPolicyValidationPassed(true), nil
			},
		}}

		result, err := uc.Execute(t.Context(), secret.ValidatePolicyInput{
			Name:   "my-secret",
			Policy: "{\n  \"Version\": \"2012-10-17\"\n}",
		})
		require.NoError(t, err)
		assert.True(t, *result.PolicyValidationPassed())
		assert.Equal(t, "my-secret", gotName)
		assert.Equal(t, `{"Version":"2012-10-17"}`, gotPolicy)
	})

	t.Run("malformed JSON never reaches the service", func(t *testing.T) {
		t.Parallel()

		uc := &secret.ValidatePolicyUseCase{Client: &mockClient{}}

		_, err := uc.Execute(t.Context(), secret.ValidatePolicyInput{Policy: "{"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON")
	})
}
