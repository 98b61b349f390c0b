package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/smkit/internal/model"
)

const testARN = "arn:aws:secretsmanager:us-east-1:123456789012:secret:my-secret-AbCdEf"

func TestCancelRotateSecretResult(t *testing.T) {
	t.Parallel()

	built := model.NewCancelRotateSecretResult().
		WithARN(testARN).
		WithName("my-secret").
		WithVersionID("EXAMPLE1-90ab-cdef-fedc-ba987SECRET1")

	set := model.NewCancelRotateSecretResult()
	set.SetARN(lo.ToPtr(testARN))
	set.SetName(lo.ToPtr("my-secret"))
	set.SetVersionID(lo.ToPtr("EXAMPLE1-90ab-cdef-fedc-ba987SECRET1"))

	assert.True(t, built.Equal(set))
	assert.Equal(t, built.HashCode(), set.HashCode())
	assert.Equal(t,
		"{ARN: "+testARN+",Name: my-secret,VersionId: EXAMPLE1-90ab-cdef-fedc-ba987SECRET1}",
		built.String(),
	)

	set.SetVersionID(nil)
	assert.False(t, built.Equal(set))
	assert.Nil(t, set.VersionID())
	assert.NotContains(t, set.String(), "VersionId")
}

func TestUpdateSecretResult_JSON(t *testing.T) {
	t.Parallel()

	var r model.UpdateSecretResult
	require.NoError(t, json.Unmarshal([]byte(`{"ARN":"`+testARN+`","Name":"my-secret"}`), &r))

	assert.Equal(t, testARN, *r.ARN())
	assert.Equal(t, "my-secret", *r.Name())
	assert.Nil(t, r.VersionID())

	data, err := json.Marshal(&r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ARN":"`+testARN+`","Name":"my-secret"}`, string(data))
}

func TestRotateSecretResult_Getters(t *testing.T) {
	t.Parallel()

	r := model.NewRotateSecretResult().WithName("my-secret")
	name := r.Name()
	*name = "mutated"

	assert.Equal(t, "my-secret", *r.Name())
	assert.Equal(t, "{Name: my-secret}", r.String())
}

func TestDeleteSecretResult(t *testing.T) {
	t.Parallel()

	deletion := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	r := model.NewDeleteSecretResult().
		WithARN(testARN).
		WithName("my-secret").
		WithDeletionDate(deletion)

	t.Run("string renders UTC timestamps", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "{ARN: "+testARN+",Name: my-secret,DeletionDate: 2024-03-05T10:00:00Z}", r.String())
	})

	t.Run("equal across time zones", func(t *testing.T) {
		t.Parallel()

		other := model.NewDeleteSecretResult().
			WithARN(testARN).
			WithName("my-secret").
			WithDeletionDate(deletion.In(time.FixedZone("JST", 9*60*60)))

		assert.True(t, r.Equal(other))
		assert.Equal(t, r.HashCode(), other.HashCode())
	})

	t.Run("json uses epoch seconds", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, `{"ARN":"`+testARN+`","Name":"my-secret","DeletionDate":1709632800}`, string(data))

		var decoded model.DeleteSecretResult
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, r.Equal(&decoded))
	})

	t.Run("invalid timestamp", func(t *testing.T) {
		t.Parallel()

		var decoded model.DeleteSecretResult
		assert.Error(t, json.Unmarshal([]byte(`{"DeletionDate":"soon"}`), &decoded))
	})
}

func TestValidateResourcePolicyResult(t *testing.T) {
	t.Parallel()

	entry := model.NewValidationErrorsEntry().
		WithCheckName("BLOCK_PUBLIC_POLICY").
		WithErrorMessage("the policy grants public access")

	r := model.NewValidateResourcePolicyResult().
		WithPolicyValidationPassed(false).
		WithValidationErrors(entry)

	t.Run("is synonym", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, r.PolicyValidationPassed(), r.IsPolicyValidationPassed())
		assert.False(t, *r.IsPolicyValidationPassed())
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			"{PolicyValidationPassed: false,ValidationErrors: [{CheckName: BLOCK_PUBLIC_POLICY,ErrorMessage: the policy grants public access}]}",
			r.String(),
		)
	})

	t.Run("false and absent differ", func(t *testing.T) {
		t.Parallel()

		absent := model.NewValidateResourcePolicyResult().WithValidationErrors(entry)
		assert.False(t, r.Equal(absent))
		assert.NotEqual(t, r.HashCode(), absent.HashCode())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var decoded model.ValidateResourcePolicyResult
		require.NoError(t, json.Unmarshal([]byte(`{
			"PolicyValidationPassed": false,
			"ValidationErrors": [{"CheckName": "BLOCK_PUBLIC_POLICY", "ErrorMessage": "the policy grants public access"}]
		}`), &decoded))
		assert.True(t, r.Equal(&decoded))
	})
}

func TestValidationErrorsEntry_Equal(t *testing.T) {
	t.Parallel()

	a := model.NewValidationErrorsEntry().WithCheckName("c")
	b := model.NewValidationErrorsEntry().WithCheckName("c")
	c := model.NewValidationErrorsEntry().WithCheckName("c").WithErrorMessage("m")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(a))
}

func TestSecretListEntry(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	build := func() *model.SecretListEntry {
		return model.NewSecretListEntry().
			WithName("app/db").
			WithRotationEnabled(true).
			WithRotationRules(model.NewRotationRulesType().WithAutomaticallyAfterDays(30)).
			WithTags(
				model.NewTag().WithKey("env").WithValue("prod"),
				model.NewTag().WithKey("team").WithValue("core"),
			).
			AddSecretVersionsToStagesEntry("v2", []string{"AWSCURRENT"}).
			AddSecretVersionsToStagesEntry("v1", []string{"AWSPREVIOUS"}).
			WithCreatedDate(created)
	}

	t.Run("structural equality", func(t *testing.T) {
		t.Parallel()

		assert.True(t, build().Equal(build()))
		assert.Equal(t, build().HashCode(), build().HashCode())
	})

	t.Run("nested difference", func(t *testing.T) {
		t.Parallel()

		other := build().WithRotationRules(model.NewRotationRulesType().WithAutomaticallyAfterDays(7))
		assert.False(t, build().Equal(other))
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			"{Name: app/db,RotationEnabled: true,RotationRules: {AutomaticallyAfterDays: 30},"+
				"Tags: [{Key: env,Value: prod}, {Key: team,Value: core}],"+
				"SecretVersionsToStages: {v1=[AWSPREVIOUS], v2=[AWSCURRENT]},"+
				"CreatedDate: 2024-01-02T03:04:05Z}",
			build().String(),
		)
	})

	t.Run("map getter returns a deep copy", func(t *testing.T) {
		t.Parallel()

		e := build()
		m := e.SecretVersionsToStages()
		m["v2"][0] = "mutated"
		delete(m, "v1")

		assert.Equal(t, map[string][]string{
			"v1": {"AWSPREVIOUS"},
			"v2": {"AWSCURRENT"},
		}, e.SecretVersionsToStages())
	})
}
