package handlers

import (
	"context"

	"linkvault/application/commands"
	"linkvault/application/ports"
	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"

	"go.uber.org/zap"
)

// RenameCategoryHandler handles category rename commands.
//
// A rename is two store writes: the category row's canonical name, then a
// bulk overwrite of the denormalized name cached on dependent bookmarks.
// The two are not transactional. When the propagation fails after the
// rename committed, the handler reports a partial failure rather than
// rolling back, so the caller can retry the propagation alone.
type RenameCategoryHandler struct {
	categoryRepo ports.CategoryRepository
	bookmarkRepo ports.BookmarkRepository
	logger       *zap.Logger
}

// NewRenameCategoryHandler creates a new rename category handler
func NewRenameCategoryHandler(
	categoryRepo ports.CategoryRepository,
	bookmarkRepo ports.BookmarkRepository,
	logger *zap.Logger,
) *RenameCategoryHandler {
	return &RenameCategoryHandler{
		categoryRepo: categoryRepo,
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

// Handle executes the rename category command
func (h *RenameCategoryHandler) Handle(ctx context.Context, cmd commands.RenameCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	categoryID, err := valueobjects.NewCategoryIDFromString(cmd.CategoryID)
	if err != nil {
		return pkgerrors.NewValidationError("invalid category id").WithCause(err)
	}

	// Ownership check before any write. A cross-owner id resolves to
	// nothing here, so no cross-owner mutation is possible below.
	category, err := h.categoryRepo.GetByID(ctx, cmd.OwnerID, categoryID)
	if err != nil {
		return err
	}

	// Validates and trims the new name; nothing written yet on failure.
	if err := category.Rename(cmd.Name); err != nil {
		return err
	}

	if err := h.categoryRepo.UpdateName(ctx, cmd.OwnerID, categoryID, category.Name()); err != nil {
		return err
	}

	// Propagate the new name into the denormalized copy on dependents.
	// The canonical rename above has already committed; a failure here
	// leaves bookmarks showing the stale cached name.
	if err := h.bookmarkRepo.UpdateCategoryName(ctx, cmd.OwnerID, categoryID, category.Name()); err != nil {
		h.logger.Error("Rename committed but propagation to bookmarks failed",
			zap.String("categoryID", cmd.CategoryID),
			zap.String("ownerID", cmd.OwnerID),
			zap.Error(err),
		)
		return pkgerrors.NewPartialFailureError("rename_category", commands.StepCategoryRenamed, err).
			WithAffected([]string{cmd.CategoryID})
	}

	h.logger.Info("Category renamed",
		zap.String("categoryID", cmd.CategoryID),
		zap.String("ownerID", cmd.OwnerID),
		zap.String("name", category.Name()),
	)

	return nil
}
