package handlers

import (
	"context"

	"linkvault/application/commands"
	"linkvault/application/ports"
	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"

	"go.uber.org/zap"
)

// ReorderCategoriesHandler commits a full reordering of an owner's
// categories. The desired order arrives as an id list; position i in the
// list becomes explicit sort order i. Each position is written as its own
// store update, in list order, so a mid-sequence failure leaves a prefix of
// the new order committed and the rest untouched.
type ReorderCategoriesHandler struct {
	categoryRepo ports.CategoryRepository
	logger       *zap.Logger
}

// NewReorderCategoriesHandler creates a new reorder categories handler
func NewReorderCategoriesHandler(categoryRepo ports.CategoryRepository, logger *zap.Logger) *ReorderCategoriesHandler {
	return &ReorderCategoriesHandler{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Handle executes the reorder categories command
func (h *ReorderCategoriesHandler) Handle(ctx context.Context, cmd commands.ReorderCategoriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// Parse every id up front; a malformed id fails the whole command
	// before any position is written.
	ids := make([]valueobjects.CategoryID, 0, len(cmd.OrderedIDs))
	for _, raw := range cmd.OrderedIDs {
		id, err := valueobjects.NewCategoryIDFromString(raw)
		if err != nil {
			return pkgerrors.NewValidationError("invalid category id").WithCause(err)
		}
		ids = append(ids, id)
	}

	for i, id := range ids {
		if err := h.categoryRepo.UpdateSortOrder(ctx, cmd.OwnerID, id, i); err != nil {
			h.logger.Error("Reorder stopped mid-sequence",
				zap.String("ownerID", cmd.OwnerID),
				zap.String("categoryID", id.String()),
				zap.Int("position", i),
				zap.Error(err),
			)
			return pkgerrors.NewPartialFailureError("reorder_categories", string(commands.StepStarted), err).
				WithAffected(cmd.OrderedIDs[:i]).
				WithRemaining(cmd.OrderedIDs[i:])
		}
	}

	h.logger.Info("Categories reordered",
		zap.String("ownerID", cmd.OwnerID),
		zap.Int("count", len(ids)),
	)

	return nil
}
