package secret_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/mpyw/smkit/internal/api/secretapi"
	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/provider/aws/secret"
)

func TestFilterConversion(t *testing.T) {
	t.Parallel()

	for _, key := range model.FilterKeys() {
		t.Run(key.String(), func(t *testing.T) {
			t.Parallel()

			f := model.NewFilter().WithKey(key).WithValues("v")
			sdk := secret.FilterToAWS(f)

			assert.Equal(t, key.String(), string(sdk.Key))
			assert.True(t, f.Equal(secret.FilterFromAWS(sdk)))
		})
	}

	t.Run("unknown SDK key is dropped", func(t *testing.T) {
		t.Parallel()

		f := secret.FilterFromAWS(secretapi.Filter{Key: "primary-region", Values: []string{"us-east-1"}})
		assert.Nil(t, f.Key())
		assert.Equal(t, []string{"us-east-1"}, f.Values())
	})

	t.Run("absent key", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, secret.FilterToAWS(model.NewFilter()).Key)
	})
}

func TestRotationRulesConversion(t *testing.T) {
	t.Parallel()

	assert.Nil(t, secret.RotationRulesToAWS(nil))
	assert.Nil(t, secret.RotationRulesFromAWS(nil))

	rules := model.NewRotationRulesType().WithScheduleExpression("cron(0 16 1,15 * ? *)").WithDuration("2h")
	sdk := secret.RotationRulesToAWS(rules)

	assert.Nil(t, sdk.AutomaticallyAfterDays)
	assert.Equal(t, "cron(0 16 1,15 * ? *)", lo.FromPtr(sdk.ScheduleExpression))
	assert.True(t, rules.Equal(secret.RotationRulesFromAWS(sdk)))
}

func TestNilOutputs(t *testing.T) {
	t.Parallel()

	assert.Nil(t, secret.ListSecretsResultFromAWS(nil))
	assert.Nil(t, secret.DeleteSecretResultFromAWS(nil))
	assert.Nil(t, secret.UpdateSecretResultFromAWS(nil))
	assert.Nil(t, secret.RotateSecretResultFromAWS(nil))
	assert.Nil(t, secret.CancelRotateSecretResultFromAWS(nil))
	assert.Nil(t, secret.ValidateResourcePolicyResultFromAWS(nil))
	assert.Nil(t, secret.SecretListEntryFromAWS(nil))
}
