// Package infra provides AWS client initialization.
package infra

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Options overrides parts of the default AWS configuration chain.
// Empty fields leave the SDK defaults (environment, shared config) in effect.
type Options struct {
	Region  string
	Profile string
}

func (o Options) loadOptions() []func(*config.LoadOptions) error {
	var fns []func(*config.LoadOptions) error
	if o.Region != "" {
		fns = append(fns, config.WithRegion(o.Region))
	}

	if o.Profile != "" {
		fns = append(fns, config.WithSharedConfigProfile(o.Profile))
	}

	return fns
}

// LoadConfig loads the AWS configuration.
func LoadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, opts.loadOptions()...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return cfg, nil
}

// NewSecretClient creates a new Secrets Manager client.
func NewSecretClient(ctx context.Context, opts Options) (*secretsmanager.Client, error) {
	cfg, err := LoadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	return secretsmanager.NewFromConfig(cfg), nil
}

// AWSIdentity contains AWS account ID, region and the matching profile name.
type AWSIdentity struct {
	AccountID string
	Region    string
	Profile   string
}

// GetAWSIdentity retrieves the current AWS account ID and region.
func GetAWSIdentity(ctx context.Context, opts Options) (*AWSIdentity, error) {
	cfg, err := LoadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	stsClient := sts.NewFromConfig(cfg)

	output, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get caller identity: %w", err)
	}

	accountID := aws.ToString(output.Account)

	profile := opts.Profile
	if profile == "" {
		profile = findProfileByAccountID(accountID)
	}

	return &AWSIdentity{
		AccountID: accountID,
		Region:    cfg.Region,
		Profile:   profile,
	}, nil
}
