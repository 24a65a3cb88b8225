package handlers

import (
	"context"

	"linkvault/application/commands"
	"linkvault/application/ports"
	"linkvault/domain/core/entities"
	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"

	"go.uber.org/zap"
)

// DeleteCategoryHandler runs the category deletion protocol:
//
//	START -> OWNERSHIP_CHECKED -> DEPENDENTS_RESOLVED -> DEPENDENTS_CLEARED -> CATEGORY_DELETED
//
// Step ordering is the safety property: dependents are cleared one row at a
// time before the category row itself goes, so the category never dangles a
// reference to rows that are already gone. None of it is transactional; a
// failure mid-protocol is surfaced as a partial failure naming the last
// committed step and the ids cleared so far, and the category row is left
// in place. Re-running the command is safe: already-cleared dependents are
// simply no longer resolved.
type DeleteCategoryHandler struct {
	categoryRepo ports.CategoryRepository
	bookmarkRepo ports.BookmarkRepository
	logger       *zap.Logger
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(
	categoryRepo ports.CategoryRepository,
	bookmarkRepo ports.BookmarkRepository,
	logger *zap.Logger,
) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{
		categoryRepo: categoryRepo,
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

// Handle executes the delete category command
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd commands.DeleteCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	categoryID, err := valueobjects.NewCategoryIDFromString(cmd.CategoryID)
	if err != nil {
		return pkgerrors.NewValidationError("invalid category id").WithCause(err)
	}

	// OWNERSHIP_CHECKED: the category must exist and belong to the caller.
	// A second delete of the same category fails here with not found.
	if _, err := h.categoryRepo.GetByID(ctx, cmd.OwnerID, categoryID); err != nil {
		return err
	}

	// DEPENDENTS_RESOLVED: snapshot the bookmarks filed under the category.
	// Nothing has been written yet, so a failure here is an ordinary error.
	dependents, err := h.bookmarkRepo.ListByCategory(ctx, cmd.OwnerID, categoryID)
	if err != nil {
		return err
	}

	// DEPENDENTS_CLEARED: clear each dependent individually, in order. From
	// the first write onward a failure is a partial one: the rows cleared so
	// far stay cleared and the category row stays put.
	for i, bookmark := range dependents {
		if err := h.clearDependent(ctx, cmd, bookmark); err != nil {
			h.logger.Error("Category delete stopped while clearing dependents",
				zap.String("categoryID", cmd.CategoryID),
				zap.String("ownerID", cmd.OwnerID),
				zap.Int("cleared", i),
				zap.Int("total", len(dependents)),
				zap.Error(err),
			)
			return pkgerrors.NewPartialFailureError("delete_category", string(commands.StepDependentsResolved), err).
				WithAffected(bookmarkIDs(dependents[:i])).
				WithRemaining(bookmarkIDs(dependents[i:]))
		}
	}

	// CATEGORY_DELETED: the category row goes last. A failure here leaves a
	// fully cleared but still-listed category; retrying resolves zero
	// dependents and goes straight to this step.
	if err := h.categoryRepo.Delete(ctx, cmd.OwnerID, categoryID); err != nil {
		h.logger.Error("Category delete cleared dependents but could not remove the category row",
			zap.String("categoryID", cmd.CategoryID),
			zap.String("ownerID", cmd.OwnerID),
			zap.Error(err),
		)
		return pkgerrors.NewPartialFailureError("delete_category", string(commands.StepDependentsCleared), err).
			WithAffected(bookmarkIDs(dependents)).
			WithRemaining([]string{cmd.CategoryID})
	}

	h.logger.Info("Category deleted",
		zap.String("categoryID", cmd.CategoryID),
		zap.String("ownerID", cmd.OwnerID),
		zap.Int("dependentsCleared", len(dependents)),
		zap.Bool("detached", cmd.Detach),
	)

	return nil
}

func (h *DeleteCategoryHandler) clearDependent(ctx context.Context, cmd commands.DeleteCategoryCommand, bookmark *entities.Bookmark) error {
	if cmd.Detach {
		return h.bookmarkRepo.DetachCategory(ctx, cmd.OwnerID, bookmark.ID())
	}
	return h.bookmarkRepo.Delete(ctx, cmd.OwnerID, bookmark.ID())
}

func bookmarkIDs(bookmarks []*entities.Bookmark) []string {
	ids := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		ids = append(ids, b.ID().String())
	}
	return ids
}
