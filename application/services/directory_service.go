package services

import (
	"context"

	"linkvault/application/ports"
	"linkvault/application/queries"
	"linkvault/domain/core/entities"
	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"

	"go.uber.org/zap"
)

// DirectoryService curates the public bookmark directory. Unlike the
// per-user stores, directory entries are shared: reads are open to everyone
// and writes are restricted to admins by the HTTP layer, so the service
// itself carries no owner scoping beyond recording which admin published an
// entry.
type DirectoryService struct {
	directoryRepo ports.DirectoryRepository
	logger        *zap.Logger
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(directoryRepo ports.DirectoryRepository, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{
		directoryRepo: directoryRepo,
		logger:        logger,
	}
}

// PublishEntryRequest describes a new directory entry
type PublishEntryRequest struct {
	PublisherID  string
	Title        string
	URL          string
	Description  string
	Icon         string
	CategoryName string
}

// UpdateEntryRequest describes changes to an existing entry. Nil fields are
// left untouched.
type UpdateEntryRequest struct {
	EntryID      string
	Title        *string
	URL          *string
	Description  *string
	Icon         *string
	CategoryName *string
}

// Publish adds a new entry to the public directory
func (s *DirectoryService) Publish(ctx context.Context, req PublishEntryRequest) (*queries.BookmarkView, error) {
	bookmark, err := entities.NewBookmark(req.PublisherID, req.Title, req.URL)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := bookmark.SetDescription(req.Description); err != nil {
			return nil, err
		}
	}
	if req.Icon != "" {
		bookmark.SetIcon(req.Icon)
	}
	if req.CategoryName != "" {
		bookmark.SetDirectoryCategory(req.CategoryName)
	}

	if err := s.directoryRepo.Insert(ctx, bookmark); err != nil {
		return nil, err
	}

	s.logger.Info("Directory entry published",
		zap.String("entryID", bookmark.ID().String()),
		zap.String("publisherID", req.PublisherID),
	)

	view := toView(bookmark)
	return &view, nil
}

// Update modifies an existing directory entry
func (s *DirectoryService) Update(ctx context.Context, req UpdateEntryRequest) (*queries.BookmarkView, error) {
	entryID, err := valueobjects.NewBookmarkIDFromString(req.EntryID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("invalid entry id").WithCause(err)
	}

	bookmark, err := s.directoryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := bookmark.SetTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.URL != nil {
		if err := bookmark.SetURL(*req.URL); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if err := bookmark.SetDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.Icon != nil {
		bookmark.SetIcon(*req.Icon)
	}
	if req.CategoryName != nil {
		bookmark.SetDirectoryCategory(*req.CategoryName)
	}

	if err := s.directoryRepo.Update(ctx, bookmark); err != nil {
		return nil, err
	}

	s.logger.Info("Directory entry updated", zap.String("entryID", req.EntryID))

	view := toView(bookmark)
	return &view, nil
}

// Remove deletes a directory entry
func (s *DirectoryService) Remove(ctx context.Context, rawEntryID string) error {
	entryID, err := valueobjects.NewBookmarkIDFromString(rawEntryID)
	if err != nil {
		return pkgerrors.NewValidationError("invalid entry id").WithCause(err)
	}

	if _, err := s.directoryRepo.GetByID(ctx, entryID); err != nil {
		return err
	}

	if err := s.directoryRepo.Delete(ctx, entryID); err != nil {
		return err
	}

	s.logger.Info("Directory entry removed", zap.String("entryID", rawEntryID))
	return nil
}

func toView(b *entities.Bookmark) queries.BookmarkView {
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
