package supabase

import (
	"time"

	"linkvault/domain/core/entities"
	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"
	"linkvault/pkg/retry"
)

// categoryRow mirrors the bookmark_categories table
type categoryRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	SortOrder *int      `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// bookmarkRow mirrors the bookmarks table. Category is the denormalized
// category name column; CategoryID is the reference.
type bookmarkRow struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CategoryID  *string   `json:"category_id"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// publicBookmarkRow mirrors the public_bookmarks table. Directory entries
// carry a free-form category label and the publishing admin's id.
type publicBookmarkRow struct {
	ID          string    `json:"id"`
	PublisherID string    `json:"publisher_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// profileRow mirrors the public_profiles table
type profileRow struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"is_admin"`
}

func categoryToRow(c *entities.Category) categoryRow {
	row := categoryRow{
		ID:        c.ID().String(),
		UserID:    c.OwnerID(),
		Name:      c.Name(),
		CreatedAt: c.CreatedAt(),
	}
	if order, ok := c.SortOrder(); ok {
		row.SortOrder = &order
	}
	return row
}

func rowToCategory(row categoryRow) (*entities.Category, error) {
	id, err := valueobjects.NewCategoryIDFromString(row.ID)
	if err != nil {
		return nil, pkgerrors.NewInternalError("category row has invalid id").WithCause(err)
	}
	return entities.ReconstructCategory(id, row.UserID, row.Name, row.SortOrder, row.CreatedAt)
}

func bookmarkToRow(b *entities.Bookmark) bookmarkRow {
	row := bookmarkRow{
		ID:          b.ID().String(),
		UserID:      b.OwnerID(),
		Title:       b.Title(),
		URL:         b.URL(),
		Description: b.Description(),
		Icon:        b.Icon(),
		Category:    b.CategoryName(),
		CreatedAt:   b.CreatedAt(),
	}
	if categoryID, ok := b.CategoryID(); ok {
		id := categoryID.String()
		row.CategoryID = &id
	}
	return row
}

func rowToBookmark(row bookmarkRow) (*entities.Bookmark, error) {
	id, err := valueobjects.NewBookmarkIDFromString(row.ID)
	if err != nil {
		return nil, pkgerrors.NewInternalError("bookmark row has invalid id").WithCause(err)
	}
	var categoryID *valueobjects.CategoryID
	if row.CategoryID != nil && *row.CategoryID != "" {
		cid, err := valueobjects.NewCategoryIDFromString(*row.CategoryID)
		if err != nil {
			return nil, pkgerrors.NewInternalError("bookmark row has invalid category id").WithCause(err)
		}
		categoryID = &cid
	}
	return entities.ReconstructBookmark(id, row.UserID, row.Title, row.URL, row.Description, row.Icon, categoryID, row.Category, row.CreatedAt)
}

func publicBookmarkToRow(b *entities.Bookmark) publicBookmarkRow {
	return publicBookmarkRow{
		ID:          b.ID().String(),
		PublisherID: b.OwnerID(),
		Title:       b.Title(),
		URL:         b.URL(),
		Description: b.Description(),
		Icon:        b.Icon(),
		Category:    b.CategoryName(),
		CreatedAt:   b.CreatedAt(),
	}
}

func rowToPublicBookmark(row publicBookmarkRow) (*entities.Bookmark, error) {
	id, err := valueobjects.NewBookmarkIDFromString(row.ID)
	if err != nil {
		return nil, pkgerrors.NewInternalError("directory row has invalid id").WithCause(err)
	}
	return entities.ReconstructBookmark(id, row.PublisherID, row.Title, row.URL, row.Description, row.Icon, nil, row.Category, row.CreatedAt)
}

// collaboratorErr classifies a raw PostgREST error as a retryable
// collaborator failure. Errors already mapped to application types pass
// through untouched so not-found and validation outcomes never get retried.
func collaboratorErr(operation string, err error) error {
	if err == nil {
		return nil
	}
	if pkgerrors.GetAppError(err) != nil {
		return err
	}
	return retry.TransientError{Err: pkgerrors.NewCollaboratorError(operation, err)}
}
