package cancelrotation_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcli "github.com/mpyw/smkit/internal/cli/commands"
	"github.com/mpyw/smkit/internal/cli/commands/secret/cancelrotation"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/provider"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

func TestCommand_Validation(t *testing.T) {
	t.Parallel()

	app := appcli.MakeApp()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}

	err := app.Run(t.Context(), []string{"smkit", "secret", "cancel-rotation"})
	assert.ErrorContains(t, err, "usage:")
}

type mockClient struct {
	cancelFunc func(name string) (*model.CancelRotateSecretResult, error)
}

func (m *mockClient) RotateSecret(_ context.Context, _ string, _ provider.RotateOptions) (*model.RotateSecretResult, error) {
	return nil, errors.New("not implemented")
}

func (m *mockClient) CancelRotateSecret(_ context.Context, name string) (*model.CancelRotateSecretResult, error) {
	return m.cancelFunc(name)
}

func TestRun(t *testing.T) {
	t.Parallel()

	mock := &mockClient{cancelFunc: func(name string) (*model.CancelRotateSecretResult, error) {
		switch name {
		case "bad":
			return nil, errors.New("not found")
		case "pending":
			return model.NewCancelRotateSecretResult().WithName(name).WithVersionID("v9"), nil
		default:
			return model.NewCancelRotateSecretResult().WithName(name), nil
		}
	}}

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		r := &cancelrotation.Runner{UseCase: &secret.CancelRotationUseCase{Client: mock}, Stdout: &stdout, Stderr: &stderr}
		require.NoError(t, r.Run(t.Context(), cancelrotation.Options{Names: []string{"a", "pending"}}))

		assert.Contains(t, stdout.String(), "Cancelled rotation of a")
		assert.Contains(t, stdout.String(), "Cancelled rotation of pending")
		assert.Contains(t, stderr.String(), "version v9 of pending may still carry AWSPENDING")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer

		r := &cancelrotation.Runner{UseCase: &secret.CancelRotationUseCase{Client: mock}, Stdout: &stdout, Stderr: &bytes.Buffer{}}
		require.NoError(t, r.Run(t.Context(), cancelrotation.Options{Names: []string{"a"}, Format: output.FormatJSON}))
		assert.JSONEq(t, `[{"Name":"a"}]`, stdout.String())
	})

	t.Run("partial failure", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		r := &cancelrotation.Runner{UseCase: &secret.CancelRotationUseCase{Client: mock}, Stdout: &stdout, Stderr: &stderr}
		err := r.Run(t.Context(), cancelrotation.Options{Names: []string{"a", "bad"}})

		assert.EqualError(t, err, "failed to cancel rotation of 1 of 2 secrets")
		assert.Contains(t, stdout.String(), "Cancelled rotation of a")
		assert.Contains(t, stderr.String(), "Failed bad: not found")
	})
}
