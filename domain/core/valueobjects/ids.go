package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// CategoryID is a value object representing a unique category identifier
// Value objects are immutable and have no identity beyond their value
type CategoryID struct {
	value string
}

// NewCategoryID creates a new random CategoryID
func NewCategoryID() CategoryID {
	return CategoryID{value: uuid.New().String()}
}

// NewCategoryIDFromString creates a CategoryID from an existing string
func NewCategoryIDFromString(id string) (CategoryID, error) {
	if id == "" {
		return CategoryID{}, errors.New("category ID cannot be empty")
	}
	if !isValidUUID(id) {
		return CategoryID{}, errors.New("category ID must be a valid UUID")
	}
	return CategoryID{value: id}, nil
}

// String returns the string representation of the CategoryID
func (id CategoryID) String() string {
	return id.value
}

// Equals checks if two CategoryIDs are equal
func (id CategoryID) Equals(other CategoryID) bool {
	return id.value == other.value
}

// IsZero checks if the CategoryID is the zero value
func (id CategoryID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id CategoryID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *CategoryID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("CategoryID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}

// BookmarkID is a value object representing a unique bookmark identifier
type BookmarkID struct {
	value string
}

// NewBookmarkID creates a new random BookmarkID
func NewBookmarkID() BookmarkID {
	return BookmarkID{value: uuid.New().String()}
}

// NewBookmarkIDFromString creates a BookmarkID from an existing string
func NewBookmarkIDFromString(id string) (BookmarkID, error) {
	if id == "" {
		return BookmarkID{}, errors.New("bookmark ID cannot be empty")
	}
	if !isValidUUID(id) {
		return BookmarkID{}, errors.New("bookmark ID must be a valid UUID")
	}
	return BookmarkID{value: id}, nil
}

// String returns the string representation of the BookmarkID
func (id BookmarkID) String() string {
	return id.value
}

// Equals checks if two BookmarkIDs are equal
func (id BookmarkID) Equals(other BookmarkID) bool {
	return id.value == other.value
}

// IsZero checks if the BookmarkID is the zero value
func (id BookmarkID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id BookmarkID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *BookmarkID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("BookmarkID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}

// isValidUUID validates if a string is a valid UUID
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
