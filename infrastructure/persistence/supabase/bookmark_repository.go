package supabase

import (
	"context"

	"linkvault/application/ports"
	"linkvault/domain/core/entities"
	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"
	"linkvault/pkg/retry"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// BookmarkRepository persists bookmarks through PostgREST, owner-scoped the
// same way as CategoryRepository.
type BookmarkRepository struct {
	client      *supa.Client
	table       string
	retryConfig retry.Config
	logger      *zap.Logger
}

// NewBookmarkRepository creates a PostgREST-backed bookmark repository
func NewBookmarkRepository(client *supa.Client, table string, logger *zap.Logger) *BookmarkRepository {
	return &BookmarkRepository{
		client:      client,
		table:       table,
		retryConfig: retry.DefaultConfig(),
		logger:      logger,
	}
}

var _ ports.BookmarkRepository = (*BookmarkRepository)(nil)

// Insert persists a new bookmark
func (r *BookmarkRepository) Insert(ctx context.Context, bookmark *entities.Bookmark) error {
	row := bookmarkToRow(bookmark)
	return retry.Do(ctx, r.retryConfig, func() error {
		_, _, err := r.client.From(r.table).Insert(row, false, "", "", "").Execute()
		return collaboratorErr("insert_bookmark", err)
	})
}

// GetByID retrieves a bookmark owned by ownerID
func (r *BookmarkRepository) GetByID(ctx context.Context, ownerID string, id valueobjects.BookmarkID) (*entities.Bookmark, error) {
	var rows []bookmarkRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Select("*", "", false).
			Eq("user_id", ownerID).
			Eq("id", id.String()).
			ExecuteTo(&rows)
		return collaboratorErr("get_bookmark", err)
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, pkgerrors.NewNotFoundError("bookmark")
	}
	return rowToBookmark(rows[0])
}

// ListByOwner retrieves all bookmarks owned by ownerID, newest first
func (r *BookmarkRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Bookmark, error) {
	var rows []bookmarkRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Select("*", "", false).
			Eq("user_id", ownerID).
			Order("created_at", &postgrest.OrderOpts{Ascending: false}).
			ExecuteTo(&rows)
		return collaboratorErr("list_bookmarks", err)
	})
	if err != nil {
		return nil, err
	}
	return rowsToBookmarks(rows)
}

// ListByCategory retrieves the bookmarks filed under a category
func (r *BookmarkRepository) ListByCategory(ctx context.Context, ownerID string, categoryID valueobjects.CategoryID) ([]*entities.Bookmark, error) {
	var rows []bookmarkRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Select("*", "", false).
			Eq("user_id", ownerID).
			Eq("category_id", categoryID.String()).
			Order("created_at", &postgrest.OrderOpts{Ascending: false}).
			ExecuteTo(&rows)
		return collaboratorErr("list_bookmarks_by_category", err)
	})
	if err != nil {
		return nil, err
	}
	return rowsToBookmarks(rows)
}

// Update persists changes to an existing bookmark
func (r *BookmarkRepository) Update(ctx context.Context, bookmark *entities.Bookmark) error {
	row := bookmarkToRow(bookmark)
	var updated []bookmarkRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Update(row, "representation", "").
			Eq("user_id", bookmark.OwnerID()).
			Eq("id", bookmark.ID().String()).
			ExecuteTo(&updated)
		return collaboratorErr("update_bookmark", err)
	})
	if err != nil {
		return err
	}
	if len(updated) == 0 {
		return pkgerrors.NewNotFoundError("bookmark")
	}
	return nil
}

// UpdateCategoryName overwrites the denormalized category name on every
// bookmark filed under categoryID. Matching zero bookmarks is success: a
// category with no dependents has nothing to propagate to.
func (r *BookmarkRepository) UpdateCategoryName(ctx context.Context, ownerID string, categoryID valueobjects.CategoryID, name string) error {
	return retry.Do(ctx, r.retryConfig, func() error {
		_, _, err := r.client.From(r.table).
			Update(map[string]interface{}{"category": name}, "", "").
			Eq("user_id", ownerID).
			Eq("category_id", categoryID.String()).
			Execute()
		return collaboratorErr("propagate_category_name", err)
	})
}

// DetachCategory clears the category reference and denormalized name on a
// single bookmark
func (r *BookmarkRepository) DetachCategory(ctx context.Context, ownerID string, id valueobjects.BookmarkID) error {
	var updated []bookmarkRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Update(map[string]interface{}{"category_id": nil, "category": ""}, "representation", "").
			Eq("user_id", ownerID).
			Eq("id", id.String()).
			ExecuteTo(&updated)
		return collaboratorErr("detach_bookmark", err)
	})
	if err != nil {
		return err
	}
	if len(updated) == 0 {
		return pkgerrors.NewNotFoundError("bookmark")
	}
	return nil
}

// Delete removes a bookmark row
func (r *BookmarkRepository) Delete(ctx context.Context, ownerID string, id valueobjects.BookmarkID) error {
	var deleted []bookmarkRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Delete("representation", "").
			Eq("user_id", ownerID).
			Eq("id", id.String()).
			ExecuteTo(&deleted)
		return collaboratorErr("delete_bookmark", err)
	})
	if err != nil {
		return err
	}
	if len(deleted) == 0 {
		return pkgerrors.NewNotFoundError("bookmark")
	}
	return nil
}

func rowsToBookmarks(rows []bookmarkRow) ([]*entities.Bookmark, error) {
	bookmarks := make([]*entities.Bookmark, 0, len(rows))
	for _, row := range rows {
		bookmark, err := rowToBookmark(row)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, bookmark)
	}
	return bookmarks, nil
}
