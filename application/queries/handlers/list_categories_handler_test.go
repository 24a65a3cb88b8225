package handlers

import (
	"context"
	"testing"

	"linkvault/application/queries"
	"linkvault/domain/core/entities"
	"linkvault/tests/fixtures"
	"linkvault/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func names(result *queries.ListCategoriesResult) []string {
	out := make([]string, 0, len(result.Categories))
	for _, c := range result.Categories {
		out = append(out, c.Name)
	}
	return out
}

func TestListCategoriesHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("unordered categories sort alphabetically", func(t *testing.T) {
		work := fixtures.NewCategoryBuilder().WithName("Work").Build()
		life := fixtures.NewCategoryBuilder().WithName("Life").Build()
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("ListByOwner", ctx, "owner-a").
			Return([]*entities.Category{work, life}, nil)
		handler := NewListCategoriesHandler(categoryRepo, zap.NewNop())

		result, err := handler.Handle(ctx, queries.ListCategoriesQuery{OwnerID: "owner-a"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Life", "Work"}, names(result))
	})

	t.Run("explicit order overrides the alphabetical fallback", func(t *testing.T) {
		// Same two categories after a committed reorder to [Work, Life].
		work := fixtures.NewCategoryBuilder().WithName("Work").WithSortOrder(0).Build()
		life := fixtures.NewCategoryBuilder().WithName("Life").WithSortOrder(1).Build()
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("ListByOwner", ctx, "owner-a").
			Return([]*entities.Category{life, work}, nil)
		handler := NewListCategoriesHandler(categoryRepo, zap.NewNop())

		result, err := handler.Handle(ctx, queries.ListCategoriesQuery{OwnerID: "owner-a"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Work", "Life"}, names(result))
	})

	t.Run("ordered categories come before unordered ones", func(t *testing.T) {
		zebra := fixtures.NewCategoryBuilder().WithName("Zebra").WithSortOrder(0).Build()
		apple := fixtures.NewCategoryBuilder().WithName("Apple").Build()
		mango := fixtures.NewCategoryBuilder().WithName("Mango").Build()
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("ListByOwner", ctx, "owner-a").
			Return([]*entities.Category{apple, zebra, mango}, nil)
		handler := NewListCategoriesHandler(categoryRepo, zap.NewNop())

		result, err := handler.Handle(ctx, queries.ListCategoriesQuery{OwnerID: "owner-a"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Zebra", "Apple", "Mango"}, names(result))
	})

	t.Run("equal positions break ties byte-wise by name", func(t *testing.T) {
		b := fixtures.NewCategoryBuilder().WithName("beta").WithSortOrder(3).Build()
		a := fixtures.NewCategoryBuilder().WithName("Alpha").WithSortOrder(3).Build()
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("ListByOwner", ctx, "owner-a").
			Return([]*entities.Category{b, a}, nil)
		handler := NewListCategoriesHandler(categoryRepo, zap.NewNop())

		result, err := handler.Handle(ctx, queries.ListCategoriesQuery{OwnerID: "owner-a"})

		require.NoError(t, err)
		// Byte-wise, not case-folded: 'A' < 'b'.
		assert.Equal(t, []string{"Alpha", "beta"}, names(result))
	})

	t.Run("empty list is an empty result, not an error", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("ListByOwner", ctx, "owner-a").
			Return([]*entities.Category{}, nil)
		handler := NewListCategoriesHandler(categoryRepo, zap.NewNop())

		result, err := handler.Handle(ctx, queries.ListCategoriesQuery{OwnerID: "owner-a"})

		require.NoError(t, err)
		assert.Empty(t, result.Categories)
	})
}

func TestSortForDisplay(t *testing.T) {
	// Positions need not be contiguous after deletes; relative order rules.
	c5 := fixtures.NewCategoryBuilder().WithName("Five").WithSortOrder(5).Build()
	c2 := fixtures.NewCategoryBuilder().WithName("Two").WithSortOrder(2).Build()
	unset := fixtures.NewCategoryBuilder().WithName("Aardvark").Build()

	categories := []*entities.Category{c5, unset, c2}
	SortForDisplay(categories)

	assert.Equal(t, "Two", categories[0].Name())
	assert.Equal(t, "Five", categories[1].Name())
	assert.Equal(t, "Aardvark", categories[2].Name())
}
