// Package secretapi provides interfaces and types for AWS Secrets Manager.
package secretapi

import (
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// Re-exported Secrets Manager client and options types.
type (
	Client  = secretsmanager.Client
	Options = secretsmanager.Options
)

// Re-exported Secrets Manager input/output types.
type (
	ListSecretsInput             = secretsmanager.ListSecretsInput
	ListSecretsOutput            = secretsmanager.ListSecretsOutput
	DescribeSecretInput          = secretsmanager.DescribeSecretInput
	DescribeSecretOutput         = secretsmanager.DescribeSecretOutput
	DeleteSecretInput            = secretsmanager.DeleteSecretInput
	DeleteSecretOutput           = secretsmanager.DeleteSecretOutput
	UpdateSecretInput            = secretsmanager.UpdateSecretInput
	UpdateSecretOutput           = secretsmanager.UpdateSecretOutput
	RotateSecretInput            = secretsmanager.RotateSecretInput
	RotateSecretOutput           = secretsmanager.RotateSecretOutput
	CancelRotateSecretInput      = secretsmanager.CancelRotateSecretInput
	CancelRotateSecretOutput     = secretsmanager.CancelRotateSecretOutput
	ValidateResourcePolicyInput  = secretsmanager.ValidateResourcePolicyInput
	ValidateResourcePolicyOutput = secretsmanager.ValidateResourcePolicyOutput
)

// Re-exported Secrets Manager model types.
type (
	SecretListEntry       = types.SecretListEntry
	Tag                   = types.Tag
	Filter                = types.Filter
	FilterNameStringType  = types.FilterNameStringType
	RotationRulesType     = types.RotationRulesType
	ValidationErrorsEntry = types.ValidationErrorsEntry
	SortOrderType         = types.SortOrderType
)

// Re-exported Secrets Manager constants.
const (
	FilterNameStringTypeDescription = types.FilterNameStringTypeDescription
	FilterNameStringTypeName        = types.FilterNameStringTypeName
	FilterNameStringTypeTagKey      = types.FilterNameStringTypeTagKey
	FilterNameStringTypeTagValue    = types.FilterNameStringTypeTagValue
	FilterNameStringTypeAll         = types.FilterNameStringTypeAll
	SortOrderTypeAsc                = types.SortOrderTypeAsc
	SortOrderTypeDesc               = types.SortOrderTypeDesc
)

// Re-exported Secrets Manager error types.
//
//nolint:errname // This is a type alias to AWS SDK type, preserving original name for consistency
type (
	ResourceNotFoundException        = types.ResourceNotFoundException
	InvalidRequestException          = types.InvalidRequestException
	MalformedPolicyDocumentException = types.MalformedPolicyDocumentException
)
