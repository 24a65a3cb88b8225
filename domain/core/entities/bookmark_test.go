package entities

import (
	"testing"

	pkgerrors "linkvault/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookmark(t *testing.T) {
	t.Run("prefixes https when the scheme is missing", func(t *testing.T) {
		bookmark, err := NewBookmark("owner-a", "Go blog", "go.dev/blog")
		require.NoError(t, err)
		assert.Equal(t, "https://go.dev/blog", bookmark.URL())
	})

	t.Run("keeps an explicit scheme", func(t *testing.T) {
		bookmark, err := NewBookmark("owner-a", "Legacy", "http://old.example.com")
		require.NoError(t, err)
		assert.Equal(t, "http://old.example.com", bookmark.URL())
	})

	t.Run("rejects empty title or URL", func(t *testing.T) {
		_, err := NewBookmark("owner-a", "", "https://example.com")
		assert.True(t, pkgerrors.IsValidation(err))

		_, err = NewBookmark("owner-a", "Example", "  ")
		assert.True(t, pkgerrors.IsValidation(err))
	})

	t.Run("starts unfiled", func(t *testing.T) {
		bookmark, err := NewBookmark("owner-a", "Example", "https://example.com")
		require.NoError(t, err)
		_, ok := bookmark.CategoryID()
		assert.False(t, ok)
		assert.Empty(t, bookmark.CategoryName())
	})
}

func TestBookmarkFileUnder(t *testing.T) {
	t.Run("caches the category name", func(t *testing.T) {
		category, err := NewCategory("owner-a", "Reading")
		require.NoError(t, err)
		bookmark, err := NewBookmark("owner-a", "Example", "https://example.com")
		require.NoError(t, err)

		require.NoError(t, bookmark.FileUnder(category))
		id, ok := bookmark.CategoryID()
		require.True(t, ok)
		assert.Equal(t, category.ID(), id)
		assert.Equal(t, "Reading", bookmark.CategoryName())
	})

	t.Run("refuses a category with a different owner", func(t *testing.T) {
		category, err := NewCategory("owner-b", "Reading")
		require.NoError(t, err)
		bookmark, err := NewBookmark("owner-a", "Example", "https://example.com")
		require.NoError(t, err)

		err = bookmark.FileUnder(category)
		appErr := pkgerrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, pkgerrors.ErrorTypeForbidden, appErr.Type)
		_, ok := bookmark.CategoryID()
		assert.False(t, ok)
	})
}

func TestBookmarkDetach(t *testing.T) {
	category, err := NewCategory("owner-a", "Reading")
	require.NoError(t, err)
	bookmark, err := NewBookmark("owner-a", "Example", "https://example.com")
	require.NoError(t, err)
	require.NoError(t, bookmark.FileUnder(category))

	bookmark.Detach()

	_, ok := bookmark.CategoryID()
	assert.False(t, ok)
	assert.Empty(t, bookmark.CategoryName())
}

func TestBookmarkSetDirectoryCategory(t *testing.T) {
	bookmark, err := NewBookmark("admin-1", "Example", "https://example.com")
	require.NoError(t, err)

	bookmark.SetDirectoryCategory("  Tools ")

	assert.Equal(t, "Tools", bookmark.CategoryName())
	_, ok := bookmark.CategoryID()
	assert.False(t, ok, "directory labels never reference category rows")
}
