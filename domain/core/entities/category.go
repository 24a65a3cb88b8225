package entities

import (
	"strings"
	"time"

	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"
)

// MaxCategoryNameLength bounds category names
const MaxCategoryNameLength = 100

// Category is a user-scoped grouping of bookmarks.
// The entity encapsulates its invariants: the name is always non-empty and
// trimmed, owner and id never change after creation, and the sort order is
// either unset (sorts after all explicitly ordered categories) or a
// non-negative position assigned by a reorder commit.
type Category struct {
	id        valueobjects.CategoryID
	ownerID   string
	name      string
	sortOrder *int
	createdAt time.Time
}

// NewCategory creates a new category owned by ownerID.
// The name is trimmed; an empty result is a validation error. The sort order
// starts unset so a fresh category sorts after explicitly ordered ones.
func NewCategory(ownerID, name string) (*Category, error) {
	if ownerID == "" {
		return nil, pkgerrors.NewValidationError("owner is required")
	}

	trimmed, err := normalizeCategoryName(name)
	if err != nil {
		return nil, err
	}

	return &Category{
		id:        valueobjects.NewCategoryID(),
		ownerID:   ownerID,
		name:      trimmed,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructCategory rebuilds a category from persisted state.
// It bypasses creation-time defaults but still refuses rows that violate
// entity invariants.
func ReconstructCategory(
	id valueobjects.CategoryID,
	ownerID, name string,
	sortOrder *int,
	createdAt time.Time,
) (*Category, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("category id is required")
	}
	if ownerID == "" {
		return nil, pkgerrors.NewValidationError("owner is required")
	}
	if name == "" {
		return nil, pkgerrors.NewValidationError("category name cannot be empty")
	}

	return &Category{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		sortOrder: sortOrder,
		createdAt: createdAt,
	}, nil
}

// ID returns the category identifier
func (c *Category) ID() valueobjects.CategoryID {
	return c.id
}

// OwnerID returns the owning user id
func (c *Category) OwnerID() string {
	return c.ownerID
}

// Name returns the category name
func (c *Category) Name() string {
	return c.name
}

// SortOrder returns the explicit sort position, if one has been assigned
func (c *Category) SortOrder() (int, bool) {
	if c.sortOrder == nil {
		return 0, false
	}
	return *c.sortOrder, true
}

// CreatedAt returns the creation timestamp
func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

// Rename changes the category name. The denormalized copy on dependent
// bookmarks is NOT touched here; propagation is a separate store step.
func (c *Category) Rename(name string) error {
	trimmed, err := normalizeCategoryName(name)
	if err != nil {
		return err
	}
	c.name = trimmed
	return nil
}

// AssignSortOrder sets the explicit display position
func (c *Category) AssignSortOrder(position int) error {
	if position < 0 {
		return pkgerrors.NewValidationError("sort order cannot be negative")
	}
	pos := position
	c.sortOrder = &pos
	return nil
}

// ClearSortOrder removes the explicit display position
func (c *Category) ClearSortOrder() {
	c.sortOrder = nil
}

// IsOwnedBy checks ownership
func (c *Category) IsOwnedBy(userID string) bool {
	return c.ownerID == userID
}

// normalizeCategoryName trims and validates a category name
func normalizeCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", pkgerrors.NewValidationError("category name cannot be empty")
	}
	if len(trimmed) > MaxCategoryNameLength {
		return "", pkgerrors.NewValidationError("category name exceeds maximum length")
	}
	return trimmed, nil
}
