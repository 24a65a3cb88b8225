package queries

import (
	"time"

	pkgerrors "linkvault/pkg/errors"
)

// ListBookmarksQuery retrieves the owner's bookmarks, optionally filtered to
// a single category
type ListBookmarksQuery struct {
	OwnerID    string `json:"owner_id"`
	CategoryID string `json:"category_id"` // optional filter
}

// Validate validates the query
func (q ListBookmarksQuery) Validate() error {
	if q.OwnerID == "" {
		return pkgerrors.NewUnauthorizedError("owner is required")
	}
	return nil
}

// GetBookmarkQuery retrieves a single bookmark by id
type GetBookmarkQuery struct {
	OwnerID    string `json:"owner_id"`
	BookmarkID string `json:"bookmark_id"`
}

// Validate validates the query
func (q GetBookmarkQuery) Validate() error {
	if q.OwnerID == "" {
		return pkgerrors.NewUnauthorizedError("owner is required")
	}
	if q.BookmarkID == "" {
		return pkgerrors.NewValidationError("bookmark id is required")
	}
	return nil
}

// ListDirectoryQuery retrieves the public bookmark directory. It carries no
// owner because the directory is readable without authentication.
type ListDirectoryQuery struct{}

// Validate validates the query
func (q ListDirectoryQuery) Validate() error {
	return nil
}

// BookmarkView is the read-side representation of a bookmark
type BookmarkView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Description  string    `json:"description,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	CategoryID   *string   `json:"category_id"`
	CategoryName string    `json:"category,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListBookmarksResult is the response for a bookmark listing
type ListBookmarksResult struct {
	Bookmarks []BookmarkView `json:"bookmarks"`
}
