package secret

import (
	"context"

	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/provider"
)

// RotateClient is the interface for the rotate use case.
type RotateClient interface {
	provider.SecretRotator
}

// RotateInput holds input for the rotate use case.
type RotateInput struct {
	Name               string
	Days               int64  // AutomaticallyAfterDays (0 = unset)
	ScheduleExpression string // cron() or rate() expression
	Duration           string // Rotation window, e.g. "3h"
	RotationLambdaARN  string
	Immediately        *bool
}

// RotateUseCase configures rotation.
type RotateUseCase struct {
	Client RotateClient
}

// Rules builds the rotation rules described by input, or nil when it sets none.
func (input RotateInput) Rules() *model.RotationRulesType {
	if input.Days == 0 && input.ScheduleExpression == "" && input.Duration == "" {
		return nil
	}

	rules := model.NewRotationRulesType()
	if input.Days != 0 {
		rules.WithAutomaticallyAfterDays(input.Days)
	}

	if input.ScheduleExpression != "" {
		rules.WithScheduleExpression(input.ScheduleExpression)
	}

	if input.Duration != "" {
		rules.WithDuration(input.Duration)
	}

	return rules
}

// Execute runs the rotate use case.
func (u *RotateUseCase) Execute(ctx context.Context, input RotateInput) (*model.RotateSecretResult, error) {
	return u.Client.RotateSecret(ctx, input.Name, provider.RotateOptions{
		Rules:             input.Rules(),
		RotationLambdaARN: input.RotationLambdaARN,
		Immediately:       input.Immediately,
	})
}
