package handlers

import (
	"context"
	"testing"

	"linkvault/application/commands"
	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"
	"linkvault/tests/fixtures"
	"linkvault/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateBookmarkHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("files under a category and caches its name", func(t *testing.T) {
		category := fixtures.NewCategoryBuilder().WithOwner("owner-a").WithName("Reading").Build()
		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		categoryRepo.On("GetByID", ctx, "owner-a", category.ID()).Return(category, nil)
		bookmarkRepo.On("Insert", ctx, mock.AnythingOfType("*entities.Bookmark")).Return(nil)
		handler := NewCreateBookmarkHandler(bookmarkRepo, categoryRepo, zap.NewNop())

		bookmark, err := handler.Handle(ctx, commands.CreateBookmarkCommand{
			OwnerID:    "owner-a",
			Title:      "Go blog",
			URL:        "go.dev/blog",
			CategoryID: category.ID().String(),
		})

		require.NoError(t, err)
		assert.Equal(t, "https://go.dev/blog", bookmark.URL())
		assert.Equal(t, "Reading", bookmark.CategoryName())
		gotID, ok := bookmark.CategoryID()
		require.True(t, ok)
		assert.Equal(t, category.ID(), gotID)
	})

	t.Run("missing category fails before any write", func(t *testing.T) {
		id := valueobjects.NewCategoryID()
		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		categoryRepo.On("GetByID", ctx, "owner-a", id).Return(nil, pkgerrors.NewNotFoundError("category"))
		handler := NewCreateBookmarkHandler(bookmarkRepo, categoryRepo, zap.NewNop())

		_, err := handler.Handle(ctx, commands.CreateBookmarkCommand{
			OwnerID:    "owner-a",
			Title:      "Go blog",
			URL:        "https://go.dev/blog",
			CategoryID: id.String(),
		})

		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
		bookmarkRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestUpdateBookmarkHandler(t *testing.T) {
	ctx := context.Background()

	strptr := func(s string) *string { return &s }

	t.Run("empty category id detaches the bookmark", func(t *testing.T) {
		category := fixtures.NewCategoryBuilder().WithOwner("owner-a").Build()
		bookmark := fixtures.NewBookmarkBuilder().WithOwner("owner-a").FiledUnder(category).Build()
		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		bookmarkRepo.On("GetByID", ctx, "owner-a", bookmark.ID()).Return(bookmark, nil)
		bookmarkRepo.On("Update", ctx, mock.AnythingOfType("*entities.Bookmark")).Return(nil)
		handler := NewUpdateBookmarkHandler(bookmarkRepo, categoryRepo, zap.NewNop())

		updated, err := handler.Handle(ctx, commands.UpdateBookmarkCommand{
			BookmarkID: bookmark.ID().String(),
			OwnerID:    "owner-a",
			CategoryID: strptr(""),
		})

		require.NoError(t, err)
		_, ok := updated.CategoryID()
		assert.False(t, ok)
		assert.Empty(t, updated.CategoryName())
	})

	t.Run("nil fields leave stored values untouched", func(t *testing.T) {
		bookmark := fixtures.NewBookmarkBuilder().WithOwner("owner-a").WithTitle("Original").Build()
		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		bookmarkRepo.On("GetByID", ctx, "owner-a", bookmark.ID()).Return(bookmark, nil)
		bookmarkRepo.On("Update", ctx, mock.AnythingOfType("*entities.Bookmark")).Return(nil)
		handler := NewUpdateBookmarkHandler(bookmarkRepo, categoryRepo, zap.NewNop())

		updated, err := handler.Handle(ctx, commands.UpdateBookmarkCommand{
			BookmarkID:  bookmark.ID().String(),
			OwnerID:     "owner-a",
			Description: strptr("now with a description"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Original", updated.Title())
		assert.Equal(t, "now with a description", updated.Description())
	})
}

func TestDeleteBookmarkHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting a foreign bookmark is not found", func(t *testing.T) {
		id := valueobjects.NewBookmarkID()
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		bookmarkRepo.On("GetByID", ctx, "owner-b", id).Return(nil, pkgerrors.NewNotFoundError("bookmark"))
		handler := NewDeleteBookmarkHandler(bookmarkRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.DeleteBookmarkCommand{
			BookmarkID: id.String(),
			OwnerID:    "owner-b",
		})

		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
		bookmarkRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deletes an owned bookmark", func(t *testing.T) {
		bookmark := fixtures.NewBookmarkBuilder().WithOwner("owner-a").Build()
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		bookmarkRepo.On("GetByID", ctx, "owner-a", bookmark.ID()).Return(bookmark, nil)
		bookmarkRepo.On("Delete", ctx, "owner-a", bookmark.ID()).Return(nil)
		handler := NewDeleteBookmarkHandler(bookmarkRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.DeleteBookmarkCommand{
			BookmarkID: bookmark.ID().String(),
			OwnerID:    "owner-a",
		})

		require.NoError(t, err)
		bookmarkRepo.AssertExpectations(t)
	})
}
