package secret

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/provider"
)

// ErrDuplicatePageToken is returned when the service hands back the token
// that was just used, which would otherwise loop forever.
var ErrDuplicatePageToken = errors.New("list secrets returned a duplicate page token")

// ListClient is the interface for the list use case.
type ListClient interface {
	provider.SecretLister
}

// ListInput holds input for the list use case.
type ListInput struct {
	Filters                []*model.Filter // Service-side filters
	NamePattern            string          // Regex on the secret name (client-side)
	MaxResults             int32           // Page size (0 = service default)
	NextToken              string          // Start from this page
	All                    bool            // Follow NextToken until the last page
	IncludePlannedDeletion bool
	SortOrder              provider.SortOrder
}

// ListUseCase executes list operations.
type ListUseCase struct {
	Client ListClient
}

// Execute runs the list use case.
//
// Without All, the result is the single page selected by NextToken and keeps
// its continuation token. With All, every page is merged into one result whose
// NextToken is absent.
func (u *ListUseCase) Execute(ctx context.Context, input ListInput) (*model.ListSecretsResult, error) {
	var pattern *regexp.Regexp

	if input.NamePattern != "" {
		var err error

		pattern, err = regexp.Compile(input.NamePattern)
		if err != nil {
			return nil, fmt.Errorf("invalid name pattern: %w", err)
		}
	}

	query := provider.ListSecretsQuery{
		Filters:                input.Filters,
		MaxResults:             input.MaxResults,
		NextToken:              input.NextToken,
		IncludePlannedDeletion: input.IncludePlannedDeletion,
		SortOrder:              input.SortOrder,
	}

	result := model.NewListSecretsResult().WithSecretList()

	for {
		page, err := u.Client.ListSecrets(ctx, query)
		if err != nil {
			return nil, err
		}

		result.WithSecretList(lo.Filter(page.SecretList(), func(e *model.SecretListEntry, _ int) bool {
			return pattern == nil || pattern.MatchString(lo.FromPtr(e.Name()))
		})...)

		next := page.NextToken()
		if !input.All {
			result.SetNextToken(next)

			return result, nil
		}

		if next == nil {
			return result, nil
		}

		if *next == query.NextToken {
			return nil, ErrDuplicatePageToken
		}

		query.NextToken = *next
	}
}
