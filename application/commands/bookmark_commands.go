package commands

import (
	pkgerrors "linkvault/pkg/errors"
)

// CreateBookmarkCommand creates a new bookmark for the owner
type CreateBookmarkCommand struct {
	BookmarkID  string `json:"bookmark_id"`
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	CategoryID  string `json:"category_id"` // optional
}

// Validate validates the command
func (cmd CreateBookmarkCommand) Validate() error {
	if cmd.OwnerID == "" {
		return pkgerrors.NewUnauthorizedError("owner is required")
	}
	return nil
}

// UpdateBookmarkCommand updates an existing bookmark. Nil fields are left
// untouched; an explicit empty CategoryID detaches the bookmark.
type UpdateBookmarkCommand struct {
	BookmarkID  string  `json:"bookmark_id"`
	OwnerID     string  `json:"owner_id"`
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	CategoryID  *string `json:"category_id"`
}

// Validate validates the command
func (cmd UpdateBookmarkCommand) Validate() error {
	if cmd.OwnerID == "" {
		return pkgerrors.NewUnauthorizedError("owner is required")
	}
	if cmd.BookmarkID == "" {
		return pkgerrors.NewValidationError("bookmark id is required")
	}
	return nil
}

// DeleteBookmarkCommand deletes a single bookmark
type DeleteBookmarkCommand struct {
	BookmarkID string `json:"bookmark_id"`
	OwnerID    string `json:"owner_id"`
}

// Validate validates the command
func (cmd DeleteBookmarkCommand) Validate() error {
	if cmd.OwnerID == "" {
		return pkgerrors.NewUnauthorizedError("owner is required")
	}
	if cmd.BookmarkID == "" {
		return pkgerrors.NewValidationError("bookmark id is required")
	}
	return nil
}
