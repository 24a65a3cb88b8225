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

// CreateCategoryHandler handles category creation commands
type CreateCategoryHandler struct {
	categoryRepo ports.CategoryRepository
	logger       *zap.Logger
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(categoryRepo ports.CategoryRepository, logger *zap.Logger) *CreateCategoryHandler {
	return &CreateCategoryHandler{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Handle executes the create category command. Validation happens in the
// entity constructor: an empty or whitespace-only name fails before any row
// is written. A fresh category has no explicit sort order, so it sorts
// after all explicitly ordered categories until the next reorder commit.
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd commands.CreateCategoryCommand) (*entities.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	category, err := entities.NewCategory(cmd.OwnerID, cmd.Name)
	if err != nil {
		return nil, err
	}

	// The HTTP layer pre-assigns the id so it can respond with it; honor it
	// when present.
	if cmd.CategoryID != "" {
		id, err := valueobjects.NewCategoryIDFromString(cmd.CategoryID)
		if err != nil {
			return nil, pkgerrors.NewValidationError("invalid category id").WithCause(err)
		}
		category, err = entities.ReconstructCategory(id, category.OwnerID(), category.Name(), nil, category.CreatedAt())
		if err != nil {
			return nil, err
		}
	}

	if err := h.categoryRepo.Insert(ctx, category); err != nil {
		return nil, err
	}

	h.logger.Info("Category created",
		zap.String("categoryID", category.ID().String()),
		zap.String("ownerID", cmd.OwnerID),
	)

	return category, nil
}
