// Package fixtures provides test data builders.
package fixtures

import (
	"time"

	"linkvault/domain/core/entities"
	"linkvault/domain/core/valueobjects"
)

// CategoryBuilder builds category entities for tests
type CategoryBuilder struct {
	id        valueobjects.CategoryID
	ownerID   string
	name      string
	sortOrder *int
	createdAt time.Time
}

// NewCategoryBuilder creates a builder with sensible defaults
func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{
		id:        valueobjects.NewCategoryID(),
		ownerID:   "owner-a",
		name:      "Reading",
		createdAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CategoryBuilder) WithID(id valueobjects.CategoryID) *CategoryBuilder {
	b.id = id
	return b
}

func (b *CategoryBuilder) WithOwner(ownerID string) *CategoryBuilder {
	b.ownerID = ownerID
	return b
}

func (b *CategoryBuilder) WithName(name string) *CategoryBuilder {
	b.name = name
	return b
}

func (b *CategoryBuilder) WithSortOrder(position int) *CategoryBuilder {
	b.sortOrder = &position
	return b
}

// Build constructs the category, panicking on invalid fixture data
func (b *CategoryBuilder) Build() *entities.Category {
	category, err := entities.ReconstructCategory(b.id, b.ownerID, b.name, b.sortOrder, b.createdAt)
	if err != nil {
		panic(err)
	}
	return category
}

// BookmarkBuilder builds bookmark entities for tests
type BookmarkBuilder struct {
	id           valueobjects.BookmarkID
	ownerID      string
	title        string
	url          string
	description  string
	icon         string
	categoryID   *valueobjects.CategoryID
	categoryName string
	createdAt    time.Time
}

// NewBookmarkBuilder creates a builder with sensible defaults
func NewBookmarkBuilder() *BookmarkBuilder {
	return &BookmarkBuilder{
		id:        valueobjects.NewBookmarkID(),
		ownerID:   "owner-a",
		title:     "Example",
		url:       "https://example.com",
		createdAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookmarkBuilder) WithID(id valueobjects.BookmarkID) *BookmarkBuilder {
	b.id = id
	return b
}

func (b *BookmarkBuilder) WithOwner(ownerID string) *BookmarkBuilder {
	b.ownerID = ownerID
	return b
}

func (b *BookmarkBuilder) WithTitle(title string) *BookmarkBuilder {
	b.title = title
	return b
}

func (b *BookmarkBuilder) WithURL(url string) *BookmarkBuilder {
	b.url = url
	return b
}

func (b *BookmarkBuilder) FiledUnder(category *entities.Category) *BookmarkBuilder {
	id := category.ID()
	b.categoryID = &id
	b.categoryName = category.Name()
	return b
}

// Build constructs the bookmark, panicking on invalid fixture data
func (b *BookmarkBuilder) Build() *entities.Bookmark {
	bookmark, err := entities.ReconstructBookmark(b.id, b.ownerID, b.title, b.url, b.description, b.icon, b.categoryID, b.categoryName, b.createdAt)
	if err != nil {
		panic(err)
	}
	return bookmark
}
