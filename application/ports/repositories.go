package ports

import (
	"context"

	"linkvault/domain/core/entities"
	"linkvault/domain/core/valueobjects"
)

// CategoryRepository defines the interface for category persistence.
// This is a port in hexagonal architecture - the application layer doesn't
// know it talks to PostgREST. Every method is scoped to an owner: rows
// belonging to other users are invisible, and owner-scoped updates of a row
// the owner doesn't hold are reported as not found.
type CategoryRepository interface {
	// Insert persists a new category
	Insert(ctx context.Context, category *entities.Category) error

	// GetByID retrieves a category owned by ownerID
	GetByID(ctx context.Context, ownerID string, id valueobjects.CategoryID) (*entities.Category, error)

	// ListByOwner retrieves all categories owned by ownerID, unordered
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Category, error)

	// UpdateName updates a single category's name
	UpdateName(ctx context.Context, ownerID string, id valueobjects.CategoryID, name string) error

	// UpdateSortOrder updates a single category's explicit sort position
	UpdateSortOrder(ctx context.Context, ownerID string, id valueobjects.CategoryID, position int) error

	// Delete removes a category row
	Delete(ctx context.Context, ownerID string, id valueobjects.CategoryID) error
}

// BookmarkRepository defines the interface for bookmark persistence,
// owner-scoped like CategoryRepository.
type BookmarkRepository interface {
	// Insert persists a new bookmark
	Insert(ctx context.Context, bookmark *entities.Bookmark) error

	// GetByID retrieves a bookmark owned by ownerID
	GetByID(ctx context.Context, ownerID string, id valueobjects.BookmarkID) (*entities.Bookmark, error)

	// ListByOwner retrieves all bookmarks owned by ownerID, newest first
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Bookmark, error)

	// ListByCategory retrieves the bookmarks filed under a category
	ListByCategory(ctx context.Context, ownerID string, categoryID valueobjects.CategoryID) ([]*entities.Bookmark, error)

	// Update persists changes to an existing bookmark
	Update(ctx context.Context, bookmark *entities.Bookmark) error

	// UpdateCategoryName overwrites the denormalized category name on every
	// bookmark filed under categoryID. Bulk, best-effort: it is the rename
	// propagation step, not part of any transaction with the rename itself.
	UpdateCategoryName(ctx context.Context, ownerID string, categoryID valueobjects.CategoryID, name string) error

	// DetachCategory clears the category reference and denormalized name on
	// a single bookmark
	DetachCategory(ctx context.Context, ownerID string, id valueobjects.BookmarkID) error

	// Delete removes a bookmark row
	Delete(ctx context.Context, ownerID string, id valueobjects.BookmarkID) error
}

// DirectoryRepository defines the interface for the public bookmark
// directory curated by admins. Reads are public; writes are gated by the
// HTTP layer's admin check.
type DirectoryRepository interface {
	// Insert publishes a new directory entry
	Insert(ctx context.Context, bookmark *entities.Bookmark) error

	// GetByID retrieves a directory entry
	GetByID(ctx context.Context, id valueobjects.BookmarkID) (*entities.Bookmark, error)

	// List retrieves the whole directory ordered by category name then title
	List(ctx context.Context) ([]*entities.Bookmark, error)

	// Update persists changes to a directory entry
	Update(ctx context.Context, bookmark *entities.Bookmark) error

	// Delete removes a directory entry
	Delete(ctx context.Context, id valueobjects.BookmarkID) error
}

// ProfileRepository exposes the per-user profile rows kept by the identity
// provider's database, used to resolve admin privileges.
type ProfileRepository interface {
	// IsAdmin reports whether the user's profile carries the admin flag
	IsAdmin(ctx context.Context, userID string) (bool, error)
}
