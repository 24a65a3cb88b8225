package handlers

import (
	"context"

	"linkvault/application/ports"
	"linkvault/application/queries"
	"linkvault/domain/core/entities"
	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"

	"go.uber.org/zap"
)

// ListBookmarksHandler serves the owner's bookmark listing, newest first,
// optionally filtered to one category
type ListBookmarksHandler struct {
	bookmarkRepo ports.BookmarkRepository
	logger       *zap.Logger
}

// NewListBookmarksHandler creates a new list bookmarks handler
func NewListBookmarksHandler(bookmarkRepo ports.BookmarkRepository, logger *zap.Logger) *ListBookmarksHandler {
	return &ListBookmarksHandler{
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

// Handle executes the list bookmarks query
func (h *ListBookmarksHandler) Handle(ctx context.Context, query queries.ListBookmarksQuery) (*queries.ListBookmarksResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		bookmarks []*entities.Bookmark
		err       error
	)
	if query.CategoryID != "" {
		categoryID, idErr := valueobjects.NewCategoryIDFromString(query.CategoryID)
		if idErr != nil {
			return nil, pkgerrors.NewValidationError("invalid category id").WithCause(idErr)
		}
		bookmarks, err = h.bookmarkRepo.ListByCategory(ctx, query.OwnerID, categoryID)
	} else {
		bookmarks, err = h.bookmarkRepo.ListByOwner(ctx, query.OwnerID)
	}
	if err != nil {
		return nil, err
	}

	views := make([]queries.BookmarkView, 0, len(bookmarks))
	for _, b := range bookmarks {
		views = append(views, ToBookmarkView(b))
	}

	return &queries.ListBookmarksResult{Bookmarks: views}, nil
}

// GetBookmarkHandler serves a single bookmark lookup
type GetBookmarkHandler struct {
	bookmarkRepo ports.BookmarkRepository
	logger       *zap.Logger
}

// NewGetBookmarkHandler creates a new get bookmark handler
func NewGetBookmarkHandler(bookmarkRepo ports.BookmarkRepository, logger *zap.Logger) *GetBookmarkHandler {
	return &GetBookmarkHandler{
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

// Handle executes the get bookmark query
func (h *GetBookmarkHandler) Handle(ctx context.Context, query queries.GetBookmarkQuery) (*queries.BookmarkView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bookmarkID, err := valueobjects.NewBookmarkIDFromString(query.BookmarkID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("invalid bookmark id").WithCause(err)
	}

	bookmark, err := h.bookmarkRepo.GetByID(ctx, query.OwnerID, bookmarkID)
	if err != nil {
		return nil, err
	}

	view := ToBookmarkView(bookmark)
	return &view, nil
}

// ListDirectoryHandler serves the public bookmark directory
type ListDirectoryHandler struct {
	directoryRepo ports.DirectoryRepository
	logger        *zap.Logger
}

// NewListDirectoryHandler creates a new list directory handler
func NewListDirectoryHandler(directoryRepo ports.DirectoryRepository, logger *zap.Logger) *ListDirectoryHandler {
	return &ListDirectoryHandler{
		directoryRepo: directoryRepo,
		logger:        logger,
	}
}

// Handle executes the list directory query
func (h *ListDirectoryHandler) Handle(ctx context.Context, query queries.ListDirectoryQuery) (*queries.ListBookmarksResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bookmarks, err := h.directoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]queries.BookmarkView, 0, len(bookmarks))
	for _, b := range bookmarks {
		views = append(views, ToBookmarkView(b))
	}

	return &queries.ListBookmarksResult{Bookmarks: views}, nil
}

// ToBookmarkView converts a bookmark entity to its read-side representation
func ToBookmarkView(b *entities.Bookmark) queries.BookmarkView {
	view := queries.BookmarkView{
		ID:           b.ID().String(),
		Title:        b.Title(),
		URL:          b.URL(),
		Description:  b.Description(),
		Icon:         b.Icon(),
		CategoryName: b.CategoryName(),
		CreatedAt:    b.CreatedAt(),
	}
	if categoryID, ok := b.CategoryID(); ok {
		id := categoryID.String()
		view.CategoryID = &id
	}
	return view
}
