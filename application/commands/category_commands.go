package commands

import (
	pkgerrors "linkvault/pkg/errors"
)

// DeleteStep identifies a completed step of the category deletion protocol.
// The values double as the lastCompletedStep reported on partial failures.
type DeleteStep string

const (
	StepStarted            DeleteStep = "STARTED"
	StepOwnershipChecked   DeleteStep = "OWNERSHIP_CHECKED"
	StepDependentsResolved DeleteStep = "DEPENDENTS_RESOLVED"
	StepDependentsCleared  DeleteStep = "DEPENDENTS_CLEARED"
	StepCategoryDeleted    DeleteStep = "CATEGORY_DELETED"
)

// Rename steps, reported when the propagation half of a rename fails.
const (
	StepCategoryRenamed = "CATEGORY_RENAMED"
)

// CreateCategoryCommand creates a new category for the owner.
// The id is assigned by the caller so the HTTP layer can respond with it.
type CreateCategoryCommand struct {
	CategoryID string `json:"category_id"`
	OwnerID    string `json:"owner_id"`
	Name       string `json:"name"`
}

// Validate validates the command
func (cmd CreateCategoryCommand) Validate() error {
	if cmd.OwnerID == "" {
		return pkgerrors.NewUnauthorizedError("owner is required")
	}
	return nil
}

// RenameCategoryCommand renames an existing category and propagates the new
// name to the denormalized copy on dependent bookmarks.
type RenameCategoryCommand struct {
	CategoryID string `json:"category_id"`
	OwnerID    string `json:"owner_id"`
	Name       string `json:"name"`
}

// Validate validates the command
func (cmd RenameCategoryCommand) Validate() error {
	if cmd.OwnerID == "" {
		return pkgerrors.NewUnauthorizedError("owner is required")
	}
	if cmd.CategoryID == "" {
		return pkgerrors.NewValidationError("category id is required")
	}
	return nil
}

// ReorderCategoriesCommand commits a full reordering of the owner's
// categories. OrderedIDs is the desired final display order; positions are
// assigned 0-based and contiguous from list position.
type ReorderCategoriesCommand struct {
	OwnerID    string   `json:"owner_id"`
	OrderedIDs []string `json:"ordered_ids"`
}

// Validate validates the command
func (cmd ReorderCategoriesCommand) Validate() error {
	if cmd.OwnerID == "" {
		return pkgerrors.NewUnauthorizedError("owner is required")
	}
	if len(cmd.OrderedIDs) == 0 {
		return pkgerrors.NewValidationError("ordered ids are required")
	}
	seen := make(map[string]struct{}, len(cmd.OrderedIDs))
	for _, id := range cmd.OrderedIDs {
		if id == "" {
			return pkgerrors.NewValidationError("ordered ids cannot contain empty ids")
		}
		if _, dup := seen[id]; dup {
			return pkgerrors.NewValidationError("ordered ids cannot contain duplicates")
		}
		seen[id] = struct{}{}
	}
	return nil
}

// DeleteCategoryCommand deletes a category after clearing its dependents.
// Detach selects the step-3 policy: false cascade-deletes dependent
// bookmarks, true detaches them (clears category_id and the denormalized
// name) and keeps the bookmarks.
type DeleteCategoryCommand struct {
	CategoryID string `json:"category_id"`
	OwnerID    string `json:"owner_id"`
	Detach     bool   `json:"detach"`
}

// Validate validates the command
func (cmd DeleteCategoryCommand) Validate() error {
	if cmd.OwnerID == "" {
		return pkgerrors.NewUnauthorizedError("owner is required")
	}
	if cmd.CategoryID == "" {
		return pkgerrors.NewValidationError("category id is required")
	}
	return nil
}
