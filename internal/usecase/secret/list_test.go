package secret_test

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/provider"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

func entries(names ...string) []*model.SecretListEntry {
	return lo.Map(names, func(n string, _ int) *model.SecretListEntry {
		return model.NewSecretListEntry().WithName(n)
	})
}

func names(r *model.ListSecretsResult) []string {
	return lo.Map(r.SecretList(), func(e *model.SecretListEntry, _ int) string {
		return lo.FromPtr(e.Name())
	})
}

// pagedClient serves pages keyed by the incoming token.
func pagedClient(pages map[string]*model.ListSecretsResult, queries *[]provider.ListSecretsQuery) *mockClient {
	return &mockClient{
		listSecretsFunc: func(_ context.Context, query provider.ListSecretsQuery) (*model.ListSecretsResult, error) {
			if queries != nil {
				*queries = append(*queries, query)
			}

			page, ok := pages[query.NextToken]
			if !ok {
				return nil, errors.New("unexpected token " + query.NextToken)
			}

			return page, nil
		},
	}
}

func TestListUseCase_Execute(t *testing.T) {
	t.Parallel()

	pages := map[string]*model.ListSecretsResult{
		"":   model.NewListSecretsResult().WithSecretList(entries("app/prod/a", "app/dev/b")...).WithNextToken("p2"),
		"p2": model.NewListSecretsResult().WithSecretList(entries("app/prod/c")...),
	}

	t.Run("single page keeps next token", func(t *testing.T) {
		t.Parallel()

		uc := &secret.ListUseCase{Client: pagedClient(pages, nil)}

		result, err := uc.Execute(t.Context(), secret.ListInput{})
		require.NoError(t, err)
		assert.Equal(t, []string{"app/prod/a", "app/dev/b"}, names(result))
		assert.Equal(t, "p2", lo.FromPtr(result.NextToken()))
	})

	t.Run("resume from token", func(t *testing.T) {
		t.Parallel()

		uc := &secret.ListUseCase{Client: pagedClient(pages, nil)}

		result, err := uc.Execute(t.Context(), secret.ListInput{NextToken: "p2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"app/prod/c"}, names(result))
		assert.Nil(t, result.NextToken())
	})

	t.Run("all pages merged", func(t *testing.T) {
		t.Parallel()

		var queries []provider.ListSecretsQuery

		uc := &secret.ListUseCase{Client: pagedClient(pages, &queries)}

		result, err := uc.Execute(t.Context(), secret.ListInput{All: true, MaxResults: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"app/prod/a", "app/dev/b", "app/prod/c"}, names(result))
		assert.Nil(t, result.NextToken())
		require.Len(t, queries, 2)
		assert.Equal(t, int32(2), queries[1].MaxResults)
		assert.Equal(t, "p2", queries[1].NextToken)
	})

	t.Run("name pattern", func(t *testing.T) {
		t.Parallel()

		uc := &secret.ListUseCase{Client: pagedClient(pages, nil)}

		result, err := uc.Execute(t.Context(), secret.ListInput{All: true, NamePattern: "/prod/"})
		require.NoError(t, err)
		assert.Equal(t, []string{"app/prod/a", "app/prod/c"}, names(result))
	})

	t.Run("filters passed through", func(t *testing.T) {
		t.Parallel()

		var queries []provider.ListSecretsQuery

		filter := model.NewFilter().WithKey(model.FilterKeyTagKey).WithValues("env")
		uc := &secret.ListUseCase{Client: pagedClient(pages, &queries)}

		_, err := uc.Execute(t.Context(), secret.ListInput{
			Filters:   []*model.Filter{filter},
			SortOrder: provider.SortOrderDesc,
		})
		require.NoError(t, err)
		require.Len(t, queries, 1)
		assert.Same(t, filter, queries[0].Filters[0])
		assert.Equal(t, provider.SortOrderDesc, queries[0].SortOrder)
	})

	t.Run("empty listing is present but empty", func(t *testing.T) {
		t.Parallel()

		uc := &secret.ListUseCase{Client: pagedClient(map[string]*model.ListSecretsResult{
			"": model.NewListSecretsResult(),
		}, nil)}

		result, err := uc.Execute(t.Context(), secret.ListInput{All: true})
		require.NoError(t, err)
		assert.NotNil(t, result.SecretList())
		assert.Empty(t, result.SecretList())
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()

		uc := &secret.ListUseCase{Client: pagedClient(pages, nil)}

		_, err := uc.Execute(t.Context(), secret.ListInput{NamePattern: "[invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid name pattern")
	})

	t.Run("duplicate token", func(t *testing.T) {
		t.Parallel()

		uc := &secret.ListUseCase{Client: pagedClient(map[string]*model.ListSecretsResult{
			"":     model.NewListSecretsResult().WithNextToken("loop"),
			"loop": model.NewListSecretsResult().WithNextToken("loop"),
		}, nil)}

		_, err := uc.Execute(t.Context(), secret.ListInput{All: true})
		require.ErrorIs(t, err, secret.ErrDuplicatePageToken)
	})

	t.Run("error from provider", func(t *testing.T) {
		t.Parallel()

		uc := &secret.ListUseCase{Client: &mockClient{
			listSecretsFunc: func(_ context.Context, _ provider.ListSecretsQuery) (*model.ListSecretsResult, error) {
				return nil, errors.New("aws error")
			},
		}}

		_, err := uc.Execute(t.Context(), secret.ListInput{})
		assert.EqualError(t, err, "aws error")
	})
}
