package entities

import (
	"strings"
	"time"

	"linkvault/domain/core/valueobjects"
	pkgerrors "linkvault/pkg/errors"
)

const (
	MaxBookmarkTitleLength       = 200
	MaxBookmarkDescriptionLength = 2000
)

// Bookmark is a saved link owned by a single user, optionally filed under
// one of the owner's categories. The category name is denormalized onto the
// bookmark for display; it is a cache of the referenced category's name at
// last write, kept in sync only by the explicit rename propagation step.
type Bookmark struct {
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

// NewBookmark creates a new bookmark owned by ownerID
func NewBookmark(ownerID, title, rawURL string) (*Bookmark, error) {
	if ownerID == "" {
		return nil, pkgerrors.NewValidationError("owner is required")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, pkgerrors.NewValidationError("bookmark title cannot be empty")
	}
	if len(title) > MaxBookmarkTitleLength {
		return nil, pkgerrors.NewValidationError("bookmark title exceeds maximum length")
	}

	normalized, err := normalizeBookmarkURL(rawURL)
	if err != nil {
		return nil, err
	}

	return &Bookmark{
		id:        valueobjects.NewBookmarkID(),
		ownerID:   ownerID,
		title:     title,
		url:       normalized,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructBookmark rebuilds a bookmark from persisted state
func ReconstructBookmark(
	id valueobjects.BookmarkID,
	ownerID, title, url, description, icon string,
	categoryID *valueobjects.CategoryID,
	categoryName string,
	createdAt time.Time,
) (*Bookmark, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("bookmark id is required")
	}
	if ownerID == "" {
		return nil, pkgerrors.NewValidationError("owner is required")
	}

	return &Bookmark{
		id:           id,
		ownerID:      ownerID,
		title:        title,
		url:          url,
		description:  description,
		icon:         icon,
		categoryID:   categoryID,
		categoryName: categoryName,
		createdAt:    createdAt,
	}, nil
}

// ID returns the bookmark identifier
func (b *Bookmark) ID() valueobjects.BookmarkID {
	return b.id
}

// OwnerID returns the owning user id
func (b *Bookmark) OwnerID() string {
	return b.ownerID
}

// Title returns the bookmark title
func (b *Bookmark) Title() string {
	return b.title
}

// URL returns the bookmark URL
func (b *Bookmark) URL() string {
	return b.url
}

// Description returns the bookmark description
func (b *Bookmark) Description() string {
	return b.description
}

// Icon returns the bookmark icon URL
func (b *Bookmark) Icon() string {
	return b.icon
}

// CategoryID returns the referenced category id, if any
func (b *Bookmark) CategoryID() (valueobjects.CategoryID, bool) {
	if b.categoryID == nil {
		return valueobjects.CategoryID{}, false
	}
	return *b.categoryID, true
}

// CategoryName returns the denormalized category display name
func (b *Bookmark) CategoryName() string {
	return b.categoryName
}

// CreatedAt returns the creation timestamp
func (b *Bookmark) CreatedAt() time.Time {
	return b.createdAt
}

// SetTitle updates the title
func (b *Bookmark) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return pkgerrors.NewValidationError("bookmark title cannot be empty")
	}
	if len(title) > MaxBookmarkTitleLength {
		return pkgerrors.NewValidationError("bookmark title exceeds maximum length")
	}
	b.title = title
	return nil
}

// SetURL updates the URL
func (b *Bookmark) SetURL(rawURL string) error {
	normalized, err := normalizeBookmarkURL(rawURL)
	if err != nil {
		return err
	}
	b.url = normalized
	return nil
}

// SetDescription updates the description
func (b *Bookmark) SetDescription(description string) error {
	if len(description) > MaxBookmarkDescriptionLength {
		return pkgerrors.NewValidationError("bookmark description exceeds maximum length")
	}
	b.description = strings.TrimSpace(description)
	return nil
}

// SetIcon updates the icon URL
func (b *Bookmark) SetIcon(icon string) {
	b.icon = strings.TrimSpace(icon)
}

// FileUnder assigns the bookmark to a category, refreshing both the
// reference and the denormalized display name from the category entity.
func (b *Bookmark) FileUnder(category *Category) error {
	if category == nil {
		return pkgerrors.NewValidationError("category is required")
	}
	if !category.IsOwnedBy(b.ownerID) {
		return pkgerrors.NewForbiddenError("category belongs to a different owner")
	}
	id := category.ID()
	b.categoryID = &id
	b.categoryName = category.Name()
	return nil
}

// Detach removes the category assignment, clearing both the reference and
// the denormalized name.
func (b *Bookmark) Detach() {
	b.categoryID = nil
	b.categoryName = ""
}

// SetDirectoryCategory sets a free-form category label without a category
// reference. Public directory entries group by label only; they never point
// at any user's category rows.
func (b *Bookmark) SetDirectoryCategory(name string) {
	b.categoryID = nil
	b.categoryName = strings.TrimSpace(name)
}

// IsOwnedBy checks ownership
func (b *Bookmark) IsOwnedBy(userID string) bool {
	return b.ownerID == userID
}

// normalizeBookmarkURL trims a URL and prefixes https:// when no scheme is
// present, matching what the bookmark form does before saving.
func normalizeBookmarkURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", pkgerrors.NewValidationError("bookmark URL cannot be empty")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}
	return trimmed, nil
}
