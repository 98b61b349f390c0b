package secret

import (
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/api/secretapi"
	"github.com/mpyw/smkit/internal/model"
)

// FilterToAWS converts a model filter to its SDK form.
// An absent key maps to the SDK zero value, which the service rejects.
func FilterToAWS(f *model.Filter) secretapi.Filter {
	out := secretapi.Filter{Values: f.Values()}
	if key := f.Key(); key != nil {
		out.Key = filterKeyToAWS(*key)
	}

	return out
}

func filterKeyToAWS(k model.FilterKey) secretapi.FilterNameStringType {
	switch k {
	case model.FilterKeyDescription:
		return secretapi.FilterNameStringTypeDescription
	case model.FilterKeyName:
		return secretapi.FilterNameStringTypeName
	case model.FilterKeyTagKey:
		return secretapi.FilterNameStringTypeTagKey
	case model.FilterKeyTagValue:
		return secretapi.FilterNameStringTypeTagValue
	case model.FilterKeyAll:
		return secretapi.FilterNameStringTypeAll
	default:
		return ""
	}
}

// FilterFromAWS converts an SDK filter. Keys outside the model's
// enumeration are dropped.
func FilterFromAWS(f secretapi.Filter) *model.Filter {
	out := model.NewFilter()
	if key, err := model.ParseFilterKey(string(f.Key)); err == nil {
		out.SetKey(&key)
	}

	out.SetValues(f.Values)

	return out
}

// RotationRulesToAWS converts rotation rules to their SDK form.
func RotationRulesToAWS(r *model.RotationRulesType) *secretapi.RotationRulesType {
	if r == nil {
		return nil
	}

	return &secretapi.RotationRulesType{
		AutomaticallyAfterDays: r.AutomaticallyAfterDays(),
		Duration:               r.Duration(),
		ScheduleExpression:     r.ScheduleExpression(),
	}
}

// RotationRulesFromAWS converts SDK rotation rules.
func RotationRulesFromAWS(r *secretapi.RotationRulesType) *model.RotationRulesType {
	if r == nil {
		return nil
	}

	out := model.NewRotationRulesType()
	out.SetAutomaticallyAfterDays(r.AutomaticallyAfterDays)
	out.SetDuration(r.Duration)
	out.SetScheduleExpression(r.ScheduleExpression)

	return out
}

// SecretListEntryFromAWS converts an SDK secret summary.
func SecretListEntryFromAWS(e *secretapi.SecretListEntry) *model.SecretListEntry {
	if e == nil {
		return nil
	}

	out := model.NewSecretListEntry()
	out.SetARN(e.ARN)
	out.SetName(e.Name)
	out.SetDescription(e.Description)
	out.SetKmsKeyID(e.KmsKeyId)
	out.SetRotationEnabled(e.RotationEnabled)
	out.SetRotationLambdaARN(e.RotationLambdaARN)
	out.SetRotationRules(RotationRulesFromAWS(e.RotationRules))
	out.SetLastRotatedDate(e.LastRotatedDate)
	out.SetLastChangedDate(e.LastChangedDate)
	out.SetLastAccessedDate(e.LastAccessedDate)
	out.SetDeletedDate(e.DeletedDate)
	out.SetNextRotationDate(e.NextRotationDate)
	out.SetSecretVersionsToStages(e.SecretVersionsToStages)
	out.SetOwningService(e.OwningService)
	out.SetCreatedDate(e.CreatedDate)
	out.SetPrimaryRegion(e.PrimaryRegion)

	if e.Tags != nil {
		out.SetTags(lo.Map(e.Tags, func(t secretapi.Tag, _ int) *model.Tag {
			return tagFromAWS(t)
		}))
	}

	return out
}

func describeOutputToEntry(o *secretapi.DescribeSecretOutput) *model.SecretListEntry {
	if o == nil {
		return nil
	}

	return SecretListEntryFromAWS(&secretapi.SecretListEntry{
		ARN:                    o.ARN,
		Name:                   o.Name,
		Description:            o.Description,
		KmsKeyId:               o.KmsKeyId,
		RotationEnabled:        o.RotationEnabled,
		RotationLambdaARN:      o.RotationLambdaARN,
		RotationRules:          o.RotationRules,
		LastRotatedDate:        o.LastRotatedDate,
		LastChangedDate:        o.LastChangedDate,
		LastAccessedDate:       o.LastAccessedDate,
		DeletedDate:            o.DeletedDate,
		NextRotationDate:       o.NextRotationDate,
		Tags:                   o.Tags,
		SecretVersionsToStages: o.VersionIdsToStages,
		OwningService:          o.OwningService,
		CreatedDate:            o.CreatedDate,
		PrimaryRegion:          o.PrimaryRegion,
	})
}

func tagFromAWS(t secretapi.Tag) *model.Tag {
	out := model.NewTag()
	out.SetKey(t.Key)
	out.SetValue(t.Value)

	return out
}

// ListSecretsResultFromAWS converts one SDK page.
func ListSecretsResultFromAWS(o *secretapi.ListSecretsOutput) *model.ListSecretsResult {
	if o == nil {
		return nil
	}

	out := model.NewListSecretsResult()
	out.SetNextToken(o.NextToken)

	if o.SecretList != nil {
		out.SetSecretList(lo.Map(o.SecretList, func(e secretapi.SecretListEntry, _ int) *model.SecretListEntry {
			return SecretListEntryFromAWS(&e)
		}))
	}

	return out
}

// DeleteSecretResultFromAWS converts a DeleteSecret response.
func DeleteSecretResultFromAWS(o *secretapi.DeleteSecretOutput) *model.DeleteSecretResult {
	if o == nil {
		return nil
	}

	out := model.NewDeleteSecretResult()
	out.SetARN(o.ARN)
	out.SetName(o.Name)
	out.SetDeletionDate(o.DeletionDate)

	return out
}

// UpdateSecretResultFromAWS converts an UpdateSecret response.
func UpdateSecretResultFromAWS(o *secretapi.UpdateSecretOutput) *model.UpdateSecretResult {
	if o == nil {
		return nil
	}

	out := model.NewUpdateSecretResult()
	out.SetARN(o.ARN)
	out.SetName(o.Name)
	out.SetVersionID(o.VersionId)

	return out
}

// RotateSecretResultFromAWS converts a RotateSecret response.
func RotateSecretResultFromAWS(o *secretapi.RotateSecretOutput) *model.RotateSecretResult {
	if o == nil {
		return nil
	}

	out := model.NewRotateSecretResult()
	out.SetARN(o.ARN)
	out.SetName(o.Name)
	out.SetVersionID(o.VersionId)

	return out
}

// CancelRotateSecretResultFromAWS converts a CancelRotateSecret response.
func CancelRotateSecretResultFromAWS(o *secretapi.CancelRotateSecretOutput) *model.CancelRotateSecretResult {
	if o == nil {
		return nil
	}

	out := model.NewCancelRotateSecretResult()
	out.SetARN(o.ARN)
	out.SetName(o.Name)
	out.SetVersionID(o.VersionId)

	return out
}

// ValidateResourcePolicyResultFromAWS converts a ValidateResourcePolicy response.
func ValidateResourcePolicyResultFromAWS(o *secretapi.ValidateResourcePolicyOutput) *model.ValidateResourcePolicyResult {
	if o == nil {
		return nil
	}

	out := model.NewValidateResourcePolicyResult().WithPolicyValidationPassed(o.PolicyValidationPassed)

	if o.ValidationErrors != nil {
		out.SetValidationErrors(lo.Map(o.ValidationErrors, func(e secretapi.ValidationErrorsEntry, _ int) *model.ValidationErrorsEntry {
			entry := model.NewValidationErrorsEntry()
			entry.SetCheckName(e.CheckName)
			entry.SetErrorMessage(e.ErrorMessage)

			return entry
		}))
	}

	return out
}
