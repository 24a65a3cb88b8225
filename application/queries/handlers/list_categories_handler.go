package handlers

import (
	"context"
	"sort"

	"linkvault/application/ports"
	"linkvault/application/queries"
	"linkvault/domain/core/entities"
	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"

	"go.uber.org/zap"
)

// ListCategoriesHandler serves the category listing in display order.
//
// Display order is computed here rather than pushed into the store query:
// explicitly ordered categories first by ascending position, then the
// unordered ones, with byte-wise name comparison breaking ties. Keeping the
// comparison in Go pins it to one deterministic collation instead of
// whatever the store's locale does.
type ListCategoriesHandler struct {
	categoryRepo ports.CategoryRepository
	logger       *zap.Logger
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(categoryRepo ports.CategoryRepository, logger *zap.Logger) *ListCategoriesHandler {
	return &ListCategoriesHandler{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context, query queries.ListCategoriesQuery) (*queries.ListCategoriesResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories, err := h.categoryRepo.ListByOwner(ctx, query.OwnerID)
	if err != nil {
		return nil, err
	}

	SortForDisplay(categories)

	views := make([]queries.CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, toCategoryView(c))
	}

	return &queries.ListCategoriesResult{Categories: views}, nil
}

// GetCategoryHandler serves a single category lookup
type GetCategoryHandler struct {
	categoryRepo ports.CategoryRepository
	logger       *zap.Logger
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(categoryRepo ports.CategoryRepository, logger *zap.Logger) *GetCategoryHandler {
	return &GetCategoryHandler{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Handle executes the get category query
func (h *GetCategoryHandler) Handle(ctx context.Context, query queries.GetCategoryQuery) (*queries.CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categoryID, err := valueobjects.NewCategoryIDFromString(query.CategoryID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("invalid category id").WithCause(err)
	}

	category, err := h.categoryRepo.GetByID(ctx, query.OwnerID, categoryID)
	if err != nil {
		return nil, err
	}

	view := toCategoryView(category)
	return &view, nil
}

// SortForDisplay orders categories the way the list endpoint presents them:
// explicit sort positions ascending, categories without a position after all
// that have one, and equal (or equally absent) positions broken by byte-wise
// ascending name.
func SortForDisplay(categories []*entities.Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		iOrder, iSet := categories[i].SortOrder()
		jOrder, jSet := categories[j].SortOrder()
		switch {
		case iSet && jSet:
			if iOrder != jOrder {
				return iOrder < jOrder
			}
		case iSet:
			return true
		case jSet:
			return false
		}
		return categories[i].Name() < categories[j].Name()
	})
}

func toCategoryView(c *entities.Category) queries.CategoryView {
	view := queries.CategoryView{
		ID:        c.ID().String(),
		Name:      c.Name(),
		CreatedAt: c.CreatedAt(),
	}
	if order, ok := c.SortOrder(); ok {
		view.SortOrder = &order
	}
	return view
}
