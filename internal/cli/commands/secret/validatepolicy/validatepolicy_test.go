package validatepolicy_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcli "github.com/mpyw/smkit/internal/cli/commands"
	"github.com/mpyw/smkit/internal/cli/commands/secret/validatepolicy"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

func TestCommand_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing file flag", wantErr: "file"},
		{name: "unreadable file", args: []string{"--file", filepath.Join(t.TempDir(), "missing.json")}, wantErr: "failed to read policy"},
		{name: "too many names", args: []string{"--file", "-", "a", "b"}, wantErr: "usage:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := appcli.MakeApp()
			app.Writer = &bytes.Buffer{}
			app.ErrWriter = &bytes.Buffer{}

			err := app.Run(t.Context(), append([]string{"smkit", "secret", "validate-policy"}, tt.args...))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

type mockClient struct {
	gotName   string
	gotPolicy string
	result    *model.ValidateResourcePolicyResult
}

func (m *mockClient) ValidateResourcePolicy(_ context.Context, name, policy string) (*model.ValidateResourcePolicyResult, error) {
	m.gotName = name
	m.gotPolicy = policy

	return m.result, nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	policyPath := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(policyPath, []byte("{\n  \"Version\": \"2012-10-17\"\n}\n"), 0o600))

	policy, err := os.ReadFile(policyPath)
	require.NoError(t, err)

	failing := model.NewValidateResourcePolicyResult().
		WithPolicyValidationPassed(false).
		WithValidationErrors(model.NewValidationErrorsEntry().
			WithCheckName("BLOCK_PUBLIC_POLICY").
			WithErrorMessage("grants public access"))

	t.Run("passed", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer

		mock := &mockClient{result: model.NewValidateResourcePolicyResult().WithPolicyValidationPassed(true)}
		r := &validatepolicy.Runner{UseCase: &secret.ValidatePolicyUseCase{Client: mock}, Stdout: &stdout, Stderr: &bytes.Buffer{}}

		require.NoError(t, r.Run(t.Context(), validatepolicy.Options{Name: "my-secret", Policy: string(policy)}))
		assert.Contains(t, stdout.String(), "Policy validation passed")
		assert.Equal(t, "my-secret", mock.gotName)
		assert.JSONEq(t, `{"Version":"2012-10-17"}`, mock.gotPolicy)
	})

	t.Run("failed", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer

		r := &validatepolicy.Runner{UseCase: &secret.ValidatePolicyUseCase{Client: &mockClient{result: failing}}, Stdout: &stdout, Stderr: &bytes.Buffer{}}

		err := r.Run(t.Context(), validatepolicy.Options{Policy: string(policy)})
		require.ErrorIs(t, err, validatepolicy.ErrValidationFailed)
		assert.Contains(t, stdout.String(), "BLOCK_PUBLIC_POLICY: grants public access")
	})

	t.Run("failed json", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer

		r := &validatepolicy.Runner{UseCase: &secret.ValidatePolicyUseCase{Client: &mockClient{result: failing}}, Stdout: &stdout, Stderr: &bytes.Buffer{}}

		err := r.Run(t.Context(), validatepolicy.Options{Policy: string(policy), Format: output.FormatJSON})
		require.ErrorIs(t, err, validatepolicy.ErrValidationFailed)
		assert.JSONEq(t,
			`{"PolicyValidationPassed":false,"ValidationErrors":[{"CheckName":"BLOCK_PUBLIC_POLICY","ErrorMessage":"grants public access"}]}`,
			stdout.String(),
		)
	})

	t.Run("malformed policy", func(t *testing.T) {
		t.Parallel()

		mock := &mockClient{}
		r := &validatepolicy.Runner{UseCase: &secret.ValidatePolicyUseCase{Client: mock}, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		err := r.Run(t.Context(), validatepolicy.Options{Policy: "{"})
		assert.ErrorContains(t, err, "invalid JSON")
		assert.Empty(t, mock.gotPolicy)
	})
}
