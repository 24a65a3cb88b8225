package queries

import (
	"time"

	pkgerrors "linkvault/pkg/errors"
)

// ListCategoriesQuery retrieves the owner's categories in display order
type ListCategoriesQuery struct {
	OwnerID string `json:"owner_id"`
}

// Validate validates the query
func (q ListCategoriesQuery) Validate() error {
	if q.OwnerID == "" {
		return pkgerrors.NewUnauthorizedError("owner is required")
	}
	return nil
}

// GetCategoryQuery retrieves a single category by id
type GetCategoryQuery struct {
	OwnerID    string `json:"owner_id"`
	CategoryID string `json:"category_id"`
}

// Validate validates the query
func (q GetCategoryQuery) Validate() error {
	if q.OwnerID == "" {
		return pkgerrors.NewUnauthorizedError("owner is required")
	}
	if q.CategoryID == "" {
		return pkgerrors.NewValidationError("category id is required")
	}
	return nil
}

// CategoryView is the read-side representation of a category
type CategoryView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SortOrder *int      `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// ListCategoriesResult is the response for a category listing
type ListCategoriesResult struct {
	Categories []CategoryView `json:"categories"`
}
