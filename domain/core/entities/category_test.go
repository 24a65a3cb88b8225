package entities

import (
	"strings"
	"testing"

	pkgerrors "linkvault/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("trims the name", func(t *testing.T) {
		category, err := NewCategory("owner-a", "  Work  ")
		require.NoError(t, err)
		assert.Equal(t, "Work", category.Name())
		assert.False(t, category.ID().IsZero())
	})

	t.Run("rejects empty and whitespace-only names", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t\n"} {
			_, err := NewCategory("owner-a", name)
			assert.True(t, pkgerrors.IsValidation(err), "name %q", name)
		}
	})

	t.Run("rejects names over the length cap", func(t *testing.T) {
		_, err := NewCategory("owner-a", strings.Repeat("x", MaxCategoryNameLength+1))
		assert.True(t, pkgerrors.IsValidation(err))
	})

	t.Run("requires an owner", func(t *testing.T) {
		_, err := NewCategory("", "Work")
		assert.True(t, pkgerrors.IsValidation(err))
	})

	t.Run("starts with no explicit sort order", func(t *testing.T) {
		category, err := NewCategory("owner-a", "Work")
		require.NoError(t, err)
		_, ok := category.SortOrder()
		assert.False(t, ok)
	})
}

func TestCategoryRename(t *testing.T) {
	category, err := NewCategory("owner-a", "Work")
	require.NoError(t, err)

	t.Run("applies a trimmed name", func(t *testing.T) {
		require.NoError(t, category.Rename("  Projects "))
		assert.Equal(t, "Projects", category.Name())
	})

	t.Run("rejects an empty name and keeps the old one", func(t *testing.T) {
		err := category.Rename("  ")
		assert.True(t, pkgerrors.IsValidation(err))
		assert.Equal(t, "Projects", category.Name())
	})
}

func TestCategorySortOrder(t *testing.T) {
	category, err := NewCategory("owner-a", "Work")
	require.NoError(t, err)

	require.NoError(t, category.AssignSortOrder(3))
	order, ok := category.SortOrder()
	assert.True(t, ok)
	assert.Equal(t, 3, order)

	assert.Error(t, category.AssignSortOrder(-1))

	category.ClearSortOrder()
	_, ok = category.SortOrder()
	assert.False(t, ok)
}

func TestCategoryOwnership(t *testing.T) {
	category, err := NewCategory("owner-a", "Work")
	require.NoError(t, err)
	assert.True(t, category.IsOwnedBy("owner-a"))
	assert.False(t, category.IsOwnedBy("owner-b"))
}
