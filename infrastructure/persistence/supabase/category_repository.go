package supabase

import (
	"context"

	"linkvault/application/ports"
	"linkvault/domain/core/entities"
	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"
	"linkvault/pkg/retry"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// CategoryRepository persists categories through PostgREST.
//
// Every filter pairs user_id with the target id, so a row owned by someone
// else is indistinguishable from a missing row: owner-scoped reads and
// writes of foreign rows report not found. Calls run under a bounded retry;
// only raw transport failures are retried, mapped outcomes never are.
type CategoryRepository struct {
	client      *supa.Client
	table       string
	retryConfig retry.Config
	logger      *zap.Logger
}

// NewCategoryRepository creates a PostgREST-backed category repository
func NewCategoryRepository(client *supa.Client, table string, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		client:      client,
		table:       table,
		retryConfig: retry.DefaultConfig(),
		logger:      logger,
	}
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

// Insert persists a new category
func (r *CategoryRepository) Insert(ctx context.Context, category *entities.Category) error {
	row := categoryToRow(category)
	return retry.Do(ctx, r.retryConfig, func() error {
		_, _, err := r.client.From(r.table).Insert(row, false, "", "", "").Execute()
		return collaboratorErr("insert_category", err)
	})
}

// GetByID retrieves a category owned by ownerID
func (r *CategoryRepository) GetByID(ctx context.Context, ownerID string, id valueobjects.CategoryID) (*entities.Category, error) {
	var rows []categoryRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Select("*", "", false).
			Eq("user_id", ownerID).
			Eq("id", id.String()).
			ExecuteTo(&rows)
		return collaboratorErr("get_category", err)
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, pkgerrors.NewNotFoundError("category")
	}
	return rowToCategory(rows[0])
}

// ListByOwner retrieves all categories owned by ownerID. Display ordering is
// applied by the read side, not here.
func (r *CategoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Category, error) {
	var rows []categoryRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Select("*", "", false).
			Eq("user_id", ownerID).
			ExecuteTo(&rows)
		return collaboratorErr("list_categories", err)
	})
	if err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(rows))
	for _, row := range rows {
		category, err := rowToCategory(row)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// UpdateName updates a single category's name
func (r *CategoryRepository) UpdateName(ctx context.Context, ownerID string, id valueobjects.CategoryID, name string) error {
	return r.updateColumns(ctx, "update_category_name", ownerID, id, map[string]interface{}{"name": name})
}

// UpdateSortOrder updates a single category's explicit sort position
func (r *CategoryRepository) UpdateSortOrder(ctx context.Context, ownerID string, id valueobjects.CategoryID, position int) error {
	return r.updateColumns(ctx, "update_category_sort_order", ownerID, id, map[string]interface{}{"sort_order": position})
}

// Delete removes a category row
func (r *CategoryRepository) Delete(ctx context.Context, ownerID string, id valueobjects.CategoryID) error {
	var rows []categoryRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Delete("representation", "").
			Eq("user_id", ownerID).
			Eq("id", id.String()).
			ExecuteTo(&rows)
		return collaboratorErr("delete_category", err)
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return pkgerrors.NewNotFoundError("category")
	}
	return nil
}

// updateColumns applies a partial update to one owned row. PostgREST reports
// an update matching zero rows as success with an empty representation, so
// the representation is requested and checked to turn that into not found.
func (r *CategoryRepository) updateColumns(ctx context.Context, operation, ownerID string, id valueobjects.CategoryID, columns map[string]interface{}) error {
	var rows []categoryRow
	err := retry.Do(ctx, r.retryConfig, func() error {
		_, err := r.client.From(r.table).
			Update(columns, "representation", "").
			Eq("user_id", ownerID).
			Eq("id", id.String()).
			ExecuteTo(&rows)
		return collaboratorErr(operation, err)
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return pkgerrors.NewNotFoundError("category")
	}
	return nil
}
