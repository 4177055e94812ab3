package utils

import (
	"errors"
	"fmt"
	"strings"

	"inventario-activos/models"
)

// Validation failures surfaced directly to the caller for corrective UI.
var (
	ErrInvalidTagFormat = errors.New("invalid property tag format")
	ErrDuplicateTag     = errors.New("property tag already in use")
	ErrQuantityMismatch = errors.New("tag count does not match quantity")
	ErrEmptyField       = errors.New("required field is empty")
)

// ValidateTagFormat checks the one-letter + four-digit tag pattern.
func ValidateTagFormat(tag string) error {
	if !models.IsValidPropertyTag(tag) {
		return fmt.Errorf("%w: %q", ErrInvalidTagFormat, tag)
	}
	return nil
}

// ValidateTagUnique checks the candidate tag against every existing item's
// tag, excluding the item being edited (matched by ID). Comparison is
// case-insensitive so hand-entered near-duplicates are caught; storage
// stays case-sensitive.
func ValidateTagUnique(tag string, items []models.Item, excludeItemID string) error {
	for _, item := range items {
		if item.ID == excludeItemID || item.PropertyTag == nil {
			continue
		}
		if strings.EqualFold(item.PropertyTag.String(), tag) {
			return fmt.Errorf("%w: %q is assigned to item %s", ErrDuplicateTag, tag, item.ID)
		}
	}
	return nil
}

// ValidateTag runs the format and uniqueness checks in order over an
// in-memory item snapshot. Pure and synchronous; callers supply a fresh
// item list.
func ValidateTag(tag string, items []models.Item, excludeItemID string) (models.PropertyTag, error) {
	if err := ValidateTagFormat(tag); err != nil {
		return "", err
	}
	if err := ValidateTagUnique(tag, items, excludeItemID); err != nil {
		return "", err
	}
	return models.PropertyTag(tag), nil
}

// ValidateTagRange parses a tag-range expression for a multi-item creation
// and checks that it expands to exactly quantity tags, each unique against
// the existing items and within the batch itself.
func ValidateTagRange(expr string, quantity int, items []models.Item) ([]models.PropertyTag, error) {
	tags, err := models.ParsePropertyTagRange(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTagFormat, err)
	}
	if len(tags) != quantity {
		return nil, fmt.Errorf("%w: expression yields %d tags for quantity %d",
			ErrQuantityMismatch, len(tags), quantity)
	}

	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		key := strings.ToUpper(tag.String())
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q repeats within the range", ErrDuplicateTag, tag)
		}
		seen[key] = struct{}{}
		if err := ValidateTagUnique(tag.String(), items, ""); err != nil {
			return nil, err
		}
	}
	return tags, nil
}

// ValidateItem checks the invariants every persisted item must hold.
func ValidateItem(item models.Item) error {
	if strings.TrimSpace(item.ID) == "" {
		return fmt.Errorf("%w: id", ErrEmptyField)
	}
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name", ErrEmptyField)
	}
	if item.Quantity < 1 {
		return fmt.Errorf("quantity must be positive, got %d", item.Quantity)
	}
	return nil
}

// ValidateSale checks the invariants every recorded sale must hold.
func ValidateSale(sale models.Sale) error {
	if strings.TrimSpace(sale.ItemID) == "" {
		return fmt.Errorf("%w: itemId", ErrEmptyField)
	}
	if sale.Date.IsZero() {
		return fmt.Errorf("%w: date", ErrEmptyField)
	}
	return nil
}
