package handlers

import (
	"context"
	"errors"
	"testing"

	"linkvault/application/commands"
	"linkvault/domain/core/entities"
	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"
	"linkvault/tests/fixtures"
	"linkvault/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateCategoryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("creates category with trimmed name", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("Insert", ctx, mock.AnythingOfType("*entities.Category")).Return(nil)
		handler := NewCreateCategoryHandler(categoryRepo, zap.NewNop())

		category, err := handler.Handle(ctx, commands.CreateCategoryCommand{
			OwnerID: "owner-a",
			Name:    "  Work  ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Work", category.Name())
		_, hasOrder := category.SortOrder()
		assert.False(t, hasOrder, "fresh category must have no explicit sort order")
		categoryRepo.AssertExpectations(t)
	})

	t.Run("rejects empty name before any write", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		handler := NewCreateCategoryHandler(categoryRepo, zap.NewNop())

		_, err := handler.Handle(ctx, commands.CreateCategoryCommand{
			OwnerID: "owner-a",
			Name:    "   ",
		})

		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
		categoryRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("honors a pre-assigned id", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("Insert", ctx, mock.AnythingOfType("*entities.Category")).Return(nil)
		handler := NewCreateCategoryHandler(categoryRepo, zap.NewNop())
		id := valueobjects.NewCategoryID()

		category, err := handler.Handle(ctx, commands.CreateCategoryCommand{
			CategoryID: id.String(),
			OwnerID:    "owner-a",
			Name:       "Work",
		})

		require.NoError(t, err)
		assert.Equal(t, id.String(), category.ID().String())
	})
}

func TestRenameCategoryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("renames and propagates to dependents", func(t *testing.T) {
		category := fixtures.NewCategoryBuilder().WithOwner("owner-a").WithName("Reading").Build()
		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		categoryRepo.On("GetByID", ctx, "owner-a", category.ID()).Return(category, nil)
		categoryRepo.On("UpdateName", ctx, "owner-a", category.ID(), "Articles").Return(nil)
		bookmarkRepo.On("UpdateCategoryName", ctx, "owner-a", category.ID(), "Articles").Return(nil)
		handler := NewRenameCategoryHandler(categoryRepo, bookmarkRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.RenameCategoryCommand{
			CategoryID: category.ID().String(),
			OwnerID:    "owner-a",
			Name:       "Articles",
		})

		require.NoError(t, err)
		categoryRepo.AssertExpectations(t)
		bookmarkRepo.AssertExpectations(t)
	})

	t.Run("cross-owner rename is not found with no writes", func(t *testing.T) {
		category := fixtures.NewCategoryBuilder().WithOwner("owner-a").Build()
		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		categoryRepo.On("GetByID", ctx, "owner-b", category.ID()).Return(nil, pkgerrors.NewNotFoundError("category"))
		handler := NewRenameCategoryHandler(categoryRepo, bookmarkRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.RenameCategoryCommand{
			CategoryID: category.ID().String(),
			OwnerID:    "owner-b",
			Name:       "Stolen",
		})

		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
		categoryRepo.AssertNotCalled(t, "UpdateName", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		bookmarkRepo.AssertNotCalled(t, "UpdateCategoryName", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagation failure after committed rename is a partial failure", func(t *testing.T) {
		category := fixtures.NewCategoryBuilder().WithOwner("owner-a").WithName("Reading").Build()
		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		categoryRepo.On("GetByID", ctx, "owner-a", category.ID()).Return(category, nil)
		categoryRepo.On("UpdateName", ctx, "owner-a", category.ID(), "Articles").Return(nil)
		bookmarkRepo.On("UpdateCategoryName", ctx, "owner-a", category.ID(), "Articles").
			Return(errors.New("connection reset"))
		handler := NewRenameCategoryHandler(categoryRepo, bookmarkRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.RenameCategoryCommand{
			CategoryID: category.ID().String(),
			OwnerID:    "owner-a",
			Name:       "Articles",
		})

		pf := pkgerrors.GetPartialFailure(err)
		require.NotNil(t, pf, "expected a partial failure, got %v", err)
		assert.Equal(t, "rename_category", pf.Operation)
		assert.Equal(t, commands.StepCategoryRenamed, pf.LastCompletedStep)
		assert.Equal(t, []string{category.ID().String()}, pf.AffectedIDs)
	})
}

func TestReorderCategoriesHandler(t *testing.T) {
	ctx := context.Background()

	newIDs := func(n int) []valueobjects.CategoryID {
		ids := make([]valueobjects.CategoryID, n)
		for i := range ids {
			ids[i] = valueobjects.NewCategoryID()
		}
		return ids
	}

	rawIDs := func(ids []valueobjects.CategoryID) []string {
		raw := make([]string, len(ids))
		for i, id := range ids {
			raw[i] = id.String()
		}
		return raw
	}

	t.Run("assigns contiguous positions from list order", func(t *testing.T) {
		ids := newIDs(3)
		categoryRepo := new(mocks.MockCategoryRepository)
		for i, id := range ids {
			categoryRepo.On("UpdateSortOrder", ctx, "owner-a", id, i).Return(nil)
		}
		handler := NewReorderCategoriesHandler(categoryRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.ReorderCategoriesCommand{
			OwnerID:    "owner-a",
			OrderedIDs: rawIDs(ids),
		})

		require.NoError(t, err)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate ids before any write", func(t *testing.T) {
		id := valueobjects.NewCategoryID().String()
		categoryRepo := new(mocks.MockCategoryRepository)
		handler := NewReorderCategoriesHandler(categoryRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.ReorderCategoriesCommand{
			OwnerID:    "owner-a",
			OrderedIDs: []string{id, id},
		})

		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
		categoryRepo.AssertNotCalled(t, "UpdateSortOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mid-sequence failure reports applied and remaining ids", func(t *testing.T) {
		ids := newIDs(3)
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("UpdateSortOrder", ctx, "owner-a", ids[0], 0).Return(nil)
		categoryRepo.On("UpdateSortOrder", ctx, "owner-a", ids[1], 1).
			Return(pkgerrors.NewCollaboratorError("update_category_sort_order", errors.New("timeout")))
		handler := NewReorderCategoriesHandler(categoryRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.ReorderCategoriesCommand{
			OwnerID:    "owner-a",
			OrderedIDs: rawIDs(ids),
		})

		pf := pkgerrors.GetPartialFailure(err)
		require.NotNil(t, pf, "expected a partial failure, got %v", err)
		assert.Equal(t, "reorder_categories", pf.Operation)
		assert.Equal(t, []string{ids[0].String()}, pf.AffectedIDs)
		assert.Equal(t, []string{ids[1].String(), ids[2].String()}, pf.RemainingIDs)
		// The third position must never be written once the second failed.
		categoryRepo.AssertNotCalled(t, "UpdateSortOrder", ctx, "owner-a", ids[2], 2)
	})
}

func TestDeleteCategoryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades dependents then deletes the category", func(t *testing.T) {
		category := fixtures.NewCategoryBuilder().WithOwner("owner-a").WithName("Reading").Build()
		b1 := fixtures.NewBookmarkBuilder().WithOwner("owner-a").FiledUnder(category).Build()
		b2 := fixtures.NewBookmarkBuilder().WithOwner("owner-a").FiledUnder(category).Build()

		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		categoryRepo.On("GetByID", ctx, "owner-a", category.ID()).Return(category, nil)
		bookmarkRepo.On("ListByCategory", ctx, "owner-a", category.ID()).
			Return([]*entities.Bookmark{b1, b2}, nil)
		bookmarkRepo.On("Delete", ctx, "owner-a", b1.ID()).Return(nil)
		bookmarkRepo.On("Delete", ctx, "owner-a", b2.ID()).Return(nil)
		categoryRepo.On("Delete", ctx, "owner-a", category.ID()).Return(nil)
		handler := NewDeleteCategoryHandler(categoryRepo, bookmarkRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.DeleteCategoryCommand{
			CategoryID: category.ID().String(),
			OwnerID:    "owner-a",
		})

		require.NoError(t, err)
		categoryRepo.AssertExpectations(t)
		bookmarkRepo.AssertExpectations(t)
	})

	t.Run("detach policy unfiles dependents instead of deleting them", func(t *testing.T) {
		category := fixtures.NewCategoryBuilder().WithOwner("owner-a").Build()
		b1 := fixtures.NewBookmarkBuilder().WithOwner("owner-a").FiledUnder(category).Build()

		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		categoryRepo.On("GetByID", ctx, "owner-a", category.ID()).Return(category, nil)
		bookmarkRepo.On("ListByCategory", ctx, "owner-a", category.ID()).
			Return([]*entities.Bookmark{b1}, nil)
		bookmarkRepo.On("DetachCategory", ctx, "owner-a", b1.ID()).Return(nil)
		categoryRepo.On("Delete", ctx, "owner-a", category.ID()).Return(nil)
		handler := NewDeleteCategoryHandler(categoryRepo, bookmarkRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.DeleteCategoryCommand{
			CategoryID: category.ID().String(),
			OwnerID:    "owner-a",
			Detach:     true,
		})

		require.NoError(t, err)
		bookmarkRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second delete of the same category is not found", func(t *testing.T) {
		id := valueobjects.NewCategoryID()
		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		categoryRepo.On("GetByID", ctx, "owner-a", id).Return(nil, pkgerrors.NewNotFoundError("category"))
		handler := NewDeleteCategoryHandler(categoryRepo, bookmarkRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.DeleteCategoryCommand{
			CategoryID: id.String(),
			OwnerID:    "owner-a",
		})

		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("partial cascade failure keeps the category row", func(t *testing.T) {
		category := fixtures.NewCategoryBuilder().WithOwner("owner-a").WithName("Reading").Build()
		b1 := fixtures.NewBookmarkBuilder().WithOwner("owner-a").FiledUnder(category).Build()
		b2 := fixtures.NewBookmarkBuilder().WithOwner("owner-a").FiledUnder(category).Build()
		b3 := fixtures.NewBookmarkBuilder().WithOwner("owner-a").FiledUnder(category).Build()

		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		categoryRepo.On("GetByID", ctx, "owner-a", category.ID()).Return(category, nil)
		bookmarkRepo.On("ListByCategory", ctx, "owner-a", category.ID()).
			Return([]*entities.Bookmark{b1, b2, b3}, nil)
		bookmarkRepo.On("Delete", ctx, "owner-a", b1.ID()).Return(nil)
		bookmarkRepo.On("Delete", ctx, "owner-a", b2.ID()).
			Return(pkgerrors.NewCollaboratorError("delete_bookmark", errors.New("unavailable")))
		handler := NewDeleteCategoryHandler(categoryRepo, bookmarkRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.DeleteCategoryCommand{
			CategoryID: category.ID().String(),
			OwnerID:    "owner-a",
		})

		pf := pkgerrors.GetPartialFailure(err)
		require.NotNil(t, pf, "expected a partial failure, got %v", err)
		assert.Equal(t, "delete_category", pf.Operation)
		assert.Equal(t, string(commands.StepDependentsResolved), pf.LastCompletedStep)
		assert.Equal(t, []string{b1.ID().String()}, pf.AffectedIDs)
		assert.Equal(t, []string{b2.ID().String(), b3.ID().String()}, pf.RemainingIDs)
		// The category row must survive a failed cascade.
		categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("category delete failure after cleared cascade is a partial failure", func(t *testing.T) {
		category := fixtures.NewCategoryBuilder().WithOwner("owner-a").Build()
		categoryRepo := new(mocks.MockCategoryRepository)
		bookmarkRepo := new(mocks.MockBookmarkRepository)
		categoryRepo.On("GetByID", ctx, "owner-a", category.ID()).Return(category, nil)
		bookmarkRepo.On("ListByCategory", ctx, "owner-a", category.ID()).
			Return([]*entities.Bookmark{}, nil)
		categoryRepo.On("Delete", ctx, "owner-a", category.ID()).
			Return(pkgerrors.NewCollaboratorError("delete_category", errors.New("unavailable")))
		handler := NewDeleteCategoryHandler(categoryRepo, bookmarkRepo, zap.NewNop())

		err := handler.Handle(ctx, commands.DeleteCategoryCommand{
			CategoryID: category.ID().String(),
			OwnerID:    "owner-a",
		})

		pf := pkgerrors.GetPartialFailure(err)
		require.NotNil(t, pf, "expected a partial failure, got %v", err)
		assert.Equal(t, string(commands.StepDependentsCleared), pf.LastCompletedStep)
		assert.Equal(t, []string{category.ID().String()}, pf.RemainingIDs)
	})
}
