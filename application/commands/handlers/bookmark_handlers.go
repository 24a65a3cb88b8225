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

// CreateBookmarkHandler handles bookmark creation commands
type CreateBookmarkHandler struct {
	bookmarkRepo ports.BookmarkRepository
	categoryRepo ports.CategoryRepository
	logger       *zap.Logger
}

// NewCreateBookmarkHandler creates a new create bookmark handler
func NewCreateBookmarkHandler(
	bookmarkRepo ports.BookmarkRepository,
	categoryRepo ports.CategoryRepository,
	logger *zap.Logger,
) *CreateBookmarkHandler {
	return &CreateBookmarkHandler{
		bookmarkRepo: bookmarkRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Handle executes the create bookmark command. When a category is given it is
// resolved first so the denormalized name on the bookmark is taken from the
// category row, not from caller input.
func (h *CreateBookmarkHandler) Handle(ctx context.Context, cmd commands.CreateBookmarkCommand) (*entities.Bookmark, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	bookmark, err := entities.NewBookmark(cmd.OwnerID, cmd.Title, cmd.URL)
	if err != nil {
		return nil, err
	}

	if cmd.BookmarkID != "" {
		id, err := valueobjects.NewBookmarkIDFromString(cmd.BookmarkID)
		if err != nil {
			return nil, pkgerrors.NewValidationError("invalid bookmark id").WithCause(err)
		}
		bookmark, err = entities.ReconstructBookmark(id, bookmark.OwnerID(), bookmark.Title(), bookmark.URL(), "", "", nil, "", bookmark.CreatedAt())
		if err != nil {
			return nil, err
		}
	}

	if cmd.Description != "" {
		if err := bookmark.SetDescription(cmd.Description); err != nil {
			return nil, err
		}
	}
	if cmd.Icon != "" {
		bookmark.SetIcon(cmd.Icon)
	}

	if cmd.CategoryID != "" {
		if err := h.fileUnder(ctx, cmd.OwnerID, cmd.CategoryID, bookmark); err != nil {
			return nil, err
		}
	}

	if err := h.bookmarkRepo.Insert(ctx, bookmark); err != nil {
		return nil, err
	}

	h.logger.Info("Bookmark created",
		zap.String("bookmarkID", bookmark.ID().String()),
		zap.String("ownerID", cmd.OwnerID),
	)

	return bookmark, nil
}

func (h *CreateBookmarkHandler) fileUnder(ctx context.Context, ownerID, rawCategoryID string, bookmark *entities.Bookmark) error {
	categoryID, err := valueobjects.NewCategoryIDFromString(rawCategoryID)
	if err != nil {
		return pkgerrors.NewValidationError("invalid category id").WithCause(err)
	}
	category, err := h.categoryRepo.GetByID(ctx, ownerID, categoryID)
	if err != nil {
		return err
	}
	return bookmark.FileUnder(category)
}

// UpdateBookmarkHandler handles bookmark update commands
type UpdateBookmarkHandler struct {
	bookmarkRepo ports.BookmarkRepository
	categoryRepo ports.CategoryRepository
	logger       *zap.Logger
}

// NewUpdateBookmarkHandler creates a new update bookmark handler
func NewUpdateBookmarkHandler(
	bookmarkRepo ports.BookmarkRepository,
	categoryRepo ports.CategoryRepository,
	logger *zap.Logger,
) *UpdateBookmarkHandler {
	return &UpdateBookmarkHandler{
		bookmarkRepo: bookmarkRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Handle executes the update bookmark command. Nil command fields leave the
// stored value untouched. A non-nil empty CategoryID detaches the bookmark;
// a non-empty one re-files it, refreshing the denormalized category name.
func (h *UpdateBookmarkHandler) Handle(ctx context.Context, cmd commands.UpdateBookmarkCommand) (*entities.Bookmark, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	bookmarkID, err := valueobjects.NewBookmarkIDFromString(cmd.BookmarkID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("invalid bookmark id").WithCause(err)
	}

	bookmark, err := h.bookmarkRepo.GetByID(ctx, cmd.OwnerID, bookmarkID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := bookmark.SetTitle(*cmd.Title); err != nil {
			return nil, err
		}
	}
	if cmd.URL != nil {
		if err := bookmark.SetURL(*cmd.URL); err != nil {
			return nil, err
		}
	}
	if cmd.Description != nil {
		if err := bookmark.SetDescription(*cmd.Description); err != nil {
			return nil, err
		}
	}
	if cmd.Icon != nil {
		bookmark.SetIcon(*cmd.Icon)
	}

	if cmd.CategoryID != nil {
		if *cmd.CategoryID == "" {
			bookmark.Detach()
		} else {
			categoryID, err := valueobjects.NewCategoryIDFromString(*cmd.CategoryID)
			if err != nil {
				return nil, pkgerrors.NewValidationError("invalid category id").WithCause(err)
			}
			category, err := h.categoryRepo.GetByID(ctx, cmd.OwnerID, categoryID)
			if err != nil {
				return nil, err
			}
			if err := bookmark.FileUnder(category); err != nil {
				return nil, err
			}
		}
	}

	if err := h.bookmarkRepo.Update(ctx, bookmark); err != nil {
		return nil, err
	}

	h.logger.Info("Bookmark updated",
		zap.String("bookmarkID", cmd.BookmarkID),
		zap.String("ownerID", cmd.OwnerID),
	)

	return bookmark, nil
}

// DeleteBookmarkHandler handles bookmark deletion commands
type DeleteBookmarkHandler struct {
	bookmarkRepo ports.BookmarkRepository
	logger       *zap.Logger
}

// NewDeleteBookmarkHandler creates a new delete bookmark handler
func NewDeleteBookmarkHandler(bookmarkRepo ports.BookmarkRepository, logger *zap.Logger) *DeleteBookmarkHandler {
	return &DeleteBookmarkHandler{
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

// Handle executes the delete bookmark command
func (h *DeleteBookmarkHandler) Handle(ctx context.Context, cmd commands.DeleteBookmarkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	bookmarkID, err := valueobjects.NewBookmarkIDFromString(cmd.BookmarkID)
	if err != nil {
		return pkgerrors.NewValidationError("invalid bookmark id").WithCause(err)
	}

	// Existence check first so deleting a missing or foreign bookmark is a
	// not-found, not a silent no-op.
	if _, err := h.bookmarkRepo.GetByID(ctx, cmd.OwnerID, bookmarkID); err != nil {
		return err
	}

	if err := h.bookmarkRepo.Delete(ctx, cmd.OwnerID, bookmarkID); err != nil {
		return err
	}

	h.logger.Info("Bookmark deleted",
		zap.String("bookmarkID", cmd.BookmarkID),
		zap.String("ownerID", cmd.OwnerID),
	)

	return nil
}
