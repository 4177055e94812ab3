package utils

import (
	"errors"
	"testing"
	"time"

	"inventario-activos/models"
)

func validSaleDate() time.Time {
	return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
}

func itemWithTag(id, tag string) models.Item {
	item := models.Item{ID: id, Name: "Chair", Quantity: 1}
	if tag != "" {
		t := models.PropertyTag(tag)
		item.PropertyTag = &t
	}
	return item
}

func TestValidateTag(t *testing.T) {
	existing := []models.Item{
		itemWithTag("item-1", "A0001"),
		itemWithTag("item-2", ""),
	}

	// A fresh tag passes both checks.
	tag, err := ValidateTag("B0002", existing, "")
	if err != nil {
		t.Fatalf("ValidateTag(B0002) error = %v", err)
	}
	if tag != "B0002" {
		t.Errorf("ValidateTag(B0002) = %q, want B0002", tag)
	}

	// A second item claiming A0001 is rejected.
	if _, err := ValidateTag("A0001", existing, ""); !errors.Is(err, ErrDuplicateTag) {
		t.Errorf("ValidateTag(A0001) error = %v, want ErrDuplicateTag", err)
	}

	// Uniqueness is case-insensitive.
	if _, err := ValidateTag("a0001", existing, ""); !errors.Is(err, ErrInvalidTagFormat) {
		t.Errorf("ValidateTag(a0001) error = %v, want ErrInvalidTagFormat", err)
	}

	// Editing the owning item keeps its own tag valid.
	if _, err := ValidateTag("A0001", existing, "item-1"); err != nil {
		t.Errorf("ValidateTag(A0001, exclude item-1) error = %v, want nil", err)
	}

	if _, err := ValidateTag("nope", existing, ""); !errors.Is(err, ErrInvalidTagFormat) {
		t.Errorf("ValidateTag(nope) error = %v, want ErrInvalidTagFormat", err)
	}
}

func TestValidateTagUniqueCaseInsensitive(t *testing.T) {
	existing := []models.Item{itemWithTag("item-1", "A0001")}

	// Stored casing differs from the candidate's; still a duplicate.
	err := ValidateTagUnique("a0001", existing, "")
	if !errors.Is(err, ErrDuplicateTag) {
		t.Errorf("ValidateTagUnique(a0001) error = %v, want ErrDuplicateTag", err)
	}
}

func TestValidateTagRange(t *testing.T) {
	existing := []models.Item{itemWithTag("item-1", "A0001")}

	tests := []struct {
		name     string
		expr     string
		quantity int
		wantErr  error
		wantLen  int
	}{
		{"exact count", "B0001-B0003", 3, nil, 3},
		{"mixed parts", "B0001-B0002,C0009", 3, nil, 3},
		{"count too low", "B0001-B0002", 3, ErrQuantityMismatch, 0},
		{"count too high", "B0001-B0005", 3, ErrQuantityMismatch, 0},
		{"collides with existing", "A0001-A0003", 3, ErrDuplicateTag, 0},
		{"repeats within batch", "B0001,B0001", 2, ErrDuplicateTag, 0},
		{"malformed expression", "B001-B003", 3, ErrInvalidTagFormat, 0},
	}

	for _, tt := range tests {
		tags, err := ValidateTagRange(tt.expr, tt.quantity, existing)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: error = %v, want %v", tt.name, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if len(tags) != tt.wantLen {
			t.Errorf("%s: got %d tags, want %d", tt.name, len(tags), tt.wantLen)
		}
	}
}

func TestValidateItem(t *testing.T) {
	tests := []struct {
		name    string
		item    models.Item
		wantErr bool
	}{
		{"valid", models.Item{ID: "item-1", Name: "Chair", Quantity: 1}, false},
		{"missing id", models.Item{Name: "Chair", Quantity: 1}, true},
		{"missing name", models.Item{ID: "item-1", Quantity: 1}, true},
		{"whitespace name", models.Item{ID: "item-1", Name: "  ", Quantity: 1}, true},
		{"zero quantity", models.Item{ID: "item-1", Name: "Chair"}, true},
		{"negative quantity", models.Item{ID: "item-1", Name: "Chair", Quantity: -2}, true},
	}

	for _, tt := range tests {
		err := ValidateItem(tt.item)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: ValidateItem error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateSale(t *testing.T) {
	valid := models.Sale{ItemID: "item-1"}
	valid.Date = validSaleDate()

	if err := ValidateSale(valid); err != nil {
		t.Errorf("ValidateSale(valid) error = %v", err)
	}

	missing := models.Sale{}
	missing.Date = validSaleDate()
	if err := ValidateSale(missing); !errors.Is(err, ErrEmptyField) {
		t.Errorf("ValidateSale(no item) error = %v, want ErrEmptyField", err)
	}

	noDate := models.Sale{ItemID: "item-1"}
	if err := ValidateSale(noDate); !errors.Is(err, ErrEmptyField) {
		t.Errorf("ValidateSale(no date) error = %v, want ErrEmptyField", err)
	}
}
