// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"linkvault/application/ports"
	"linkvault/domain/core/entities"
	"linkvault/domain/core/valueobjects"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository mocks ports.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

var _ ports.CategoryRepository = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) Insert(ctx context.Context, category *entities.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, ownerID string, id valueobjects.CategoryID) (*entities.Category, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Category, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateName(ctx context.Context, ownerID string, id valueobjects.CategoryID, name string) error {
	args := m.Called(ctx, ownerID, id, name)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateSortOrder(ctx context.Context, ownerID string, id valueobjects.CategoryID, position int) error {
	args := m.Called(ctx, ownerID, id, position)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, ownerID string, id valueobjects.CategoryID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockBookmarkRepository mocks ports.BookmarkRepository
type MockBookmarkRepository struct {
	mock.Mock
}

var _ ports.BookmarkRepository = (*MockBookmarkRepository)(nil)

func (m *MockBookmarkRepository) Insert(ctx context.Context, bookmark *entities.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockBookmarkRepository) GetByID(ctx context.Context, ownerID string, id valueobjects.BookmarkID) (*entities.Bookmark, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Bookmark, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) ListByCategory(ctx context.Context, ownerID string, categoryID valueobjects.CategoryID) ([]*entities.Bookmark, error) {
	args := m.Called(ctx, ownerID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) Update(ctx context.Context, bookmark *entities.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockBookmarkRepository) UpdateCategoryName(ctx context.Context, ownerID string, categoryID valueobjects.CategoryID, name string) error {
	args := m.Called(ctx, ownerID, categoryID, name)
	return args.Error(0)
}

func (m *MockBookmarkRepository) DetachCategory(ctx context.Context, ownerID string, id valueobjects.BookmarkID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, ownerID string, id valueobjects.BookmarkID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockDirectoryRepository mocks ports.DirectoryRepository
type MockDirectoryRepository struct {
	mock.Mock
}

var _ ports.DirectoryRepository = (*MockDirectoryRepository)(nil)

func (m *MockDirectoryRepository) Insert(ctx context.Context, bookmark *entities.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockDirectoryRepository) GetByID(ctx context.Context, id valueobjects.BookmarkID) (*entities.Bookmark, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bookmark), args.Error(1)
}

func (m *MockDirectoryRepository) List(ctx context.Context) ([]*entities.Bookmark, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bookmark), args.Error(1)
}

func (m *MockDirectoryRepository) Update(ctx context.Context, bookmark *entities.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockDirectoryRepository) Delete(ctx context.Context, id valueobjects.BookmarkID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository mocks ports.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

var _ ports.ProfileRepository = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
