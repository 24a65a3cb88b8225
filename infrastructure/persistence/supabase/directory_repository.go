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

// DirectoryRepository persists the public bookmark directory. Directory rows
// are shared, so reads carry no owner filter; write access control happens
// at the HTTP layer.
type DirectoryRepository struct {
	client      *supa.Client
	table       string
	retryConfig retry.Config
	logger      *zap.Logger
}

// NewDirectoryRepository creates a PostgREST-backed directory repository
func NewDirectoryRepository(client *supa.Client, table string, logger *zap.Logger) *DirectoryRepository {
	return &DirectoryRepository{
		client:      client,
		table:       table,
		retryConfig: retry.DefaultConfig(),
		logger:      logger,
	}
}

var _ ports.DirectoryRepository = (*DirectoryRepository)(nil)

// Insert publishes a new directory entry
func (r *DirectoryRepository) Insert(ctx context.Context, bookmark *entities.Bookmark) error {
	row := publicBookmarkToRow(bookmark)
	return retry.Do(ctx, r.retryConfig, func() error {
		_, _, err := r.client.From(r.table).Insert(row, false, "", "", "").Execute()
		return collaboratorErr("insert_directory_entry", err)
	})
}

// GetByID retrieves a directory entry
func (r *DirectoryRepository) GetByID(ctx context.Context, id valueobjects.BookmarkID) (*entities.Bookmark, error) {
	var rows []publicBookmarkRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Select("*", "", false).
			Eq("id", id.String()).
			ExecuteTo(&rows)
		return collaboratorErr("get_directory_entry", err)
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, pkgerrors.NewNotFoundError("directory entry")
	}
	return rowToPublicBookmark(rows[0])
}

// List retrieves the whole directory ordered by category label then title
func (r *DirectoryRepository) List(ctx context.Context) ([]*entities.Bookmark, error) {
	var rows []publicBookmarkRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Select("*", "", false).
			Order("category", &postgrest.OrderOpts{Ascending: true}).
			Order("title", &postgrest.OrderOpts{Ascending: true}).
			ExecuteTo(&rows)
		return collaboratorErr("list_directory", err)
	})
	if err != nil {
		return nil, err
	}

	bookmarks := make([]*entities.Bookmark, 0, len(rows))
	for _, row := range rows {
		bookmark, err := rowToPublicBookmark(row)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, bookmark)
	}
	return bookmarks, nil
}

// Update persists changes to a directory entry
func (r *DirectoryRepository) Update(ctx context.Context, bookmark *entities.Bookmark) error {
	row := publicBookmarkToRow(bookmark)
	var updated []publicBookmarkRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Update(row, "representation", "").
			Eq("id", bookmark.ID().String()).
			ExecuteTo(&updated)
		return collaboratorErr("update_directory_entry", err)
	})
	if err != nil {
		return err
	}
	if len(updated) == 0 {
		return pkgerrors.NewNotFoundError("directory entry")
	}
	return nil
}

// Delete removes a directory entry
func (r *DirectoryRepository) Delete(ctx context.Context, id valueobjects.BookmarkID) error {
	var deleted []publicBookmarkRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Delete("representation", "").
			Eq("id", id.String()).
			ExecuteTo(&deleted)
		return collaboratorErr("delete_directory_entry", err)
	})
	if err != nil {
		return err
	}
	if len(deleted) == 0 {
		return pkgerrors.NewNotFoundError("directory entry")
	}
	return nil
}
