package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"inventario-activos/db"
	"inventario-activos/models"
)

// MirrorRepository persists decoded item rows into the item_mirror table.
type MirrorRepository struct{}

// NewMirrorRepository creates a new MirrorRepository.
func NewMirrorRepository() *MirrorRepository {
	return &MirrorRepository{}
}

// Ensure MirrorRepository implements MirrorRepositoryInterface
var _ MirrorRepositoryInterface = (*MirrorRepository)(nil)

// EnsureSchema creates the mirror table if it does not exist.
func (r *MirrorRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS item_mirror (
			id                   TEXT PRIMARY KEY,
			image_url            TEXT NOT NULL DEFAULT '',
			name                 TEXT NOT NULL,
			description          TEXT NOT NULL DEFAULT '',
			group_id             TEXT NOT NULL DEFAULT '',
			quantity             INTEGER NOT NULL DEFAULT 1,
			date_added           DATE,
			estimated_price      DOUBLE PRECISION,
			status               TEXT NOT NULL,
			last_known_room      TEXT NOT NULL DEFAULT '',
			updated_by           TEXT NOT NULL DEFAULT '',
			last_updated         TIMESTAMPTZ,
			property_tag         TEXT,
			purchase_receipt_url TEXT NOT NULL DEFAULT '',
			mirrored_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure mirror schema: %w", err)
	}
	return nil
}

// ExistsByID checks whether an item is already mirrored.
func (r *MirrorRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM item_mirror WHERE id = $1)`
	if err := db.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check mirror existence: %w", err)
	}
	return exists, nil
}

// Insert mirrors a new item row.
func (r *MirrorRepository) Insert(ctx context.Context, item models.Item) error {
	query := `
		INSERT INTO item_mirror (
			id, image_url, name, description, group_id, quantity, date_added,
			estimated_price, status, last_known_room, updated_by, last_updated,
			property_tag, purchase_receipt_url, mirrored_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
	`
	if _, err := db.DB.ExecContext(ctx, query, itemArgs(item)...); err != nil {
		return fmt.Errorf("failed to insert mirrored item %s: %w", item.ID, err)
	}
	return nil
}

// Update refreshes an already mirrored item row.
func (r *MirrorRepository) Update(ctx context.Context, item models.Item) error {
	query := `
		UPDATE item_mirror SET
			image_url = $2, name = $3, description = $4, group_id = $5,
			quantity = $6, date_added = $7, estimated_price = $8, status = $9,
			last_known_room = $10, updated_by = $11, last_updated = $12,
			property_tag = $13, purchase_receipt_url = $14, mirrored_at = NOW()
		WHERE id = $1
	`
	if _, err := db.DB.ExecContext(ctx, query, itemArgs(item)...); err != nil {
		return fmt.Errorf("failed to update mirrored item %s: %w", item.ID, err)
	}
	return nil
}

// ListItems returns mirrored items, optionally filtered by status.
func (r *MirrorRepository) ListItems(ctx context.Context, status string) ([]models.Item, error) {
	query := `
		SELECT id, image_url, name, description, group_id, quantity, date_added,
		       estimated_price, status, last_known_room, updated_by, last_updated,
		       property_tag, purchase_receipt_url
		FROM item_mirror
	`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY name, id`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mirrored items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		var roomName string
		var dateAdded, lastUpdated sql.NullTime
		var estimatedPrice sql.NullFloat64
		var propertyTag sql.NullString

		err := rows.Scan(
			&item.ID,
			&item.ImageURL,
			&item.Name,
			&item.Description,
			&item.GroupID,
			&item.Quantity,
			&dateAdded,
			&estimatedPrice,
			&item.Status,
			&roomName,
			&item.UpdatedBy,
			&lastUpdated,
			&propertyTag,
			&item.PurchaseReceiptURL,
		)
		if err != nil {
			log.Printf("❌ Error scanning mirrored item: %v", err)
			continue
		}

		item.LastKnownRoom = models.NewRoom(roomName)
		if dateAdded.Valid {
			item.DateAdded = dateAdded.Time
		}
		if estimatedPrice.Valid {
			price := estimatedPrice.Float64
			item.EstimatedPrice = &price
		}
		if lastUpdated.Valid {
			updated := lastUpdated.Time
			item.LastUpdated = &updated
		}
		if propertyTag.Valid && propertyTag.String != "" {
			if tag, err := models.ParsePropertyTag(propertyTag.String); err == nil {
				item.PropertyTag = &tag
			}
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mirrored items: %w", err)
	}
	return items, nil
}

// itemArgs flattens an item into SQL arguments, mapping absent optionals
// to NULL.
func itemArgs(item models.Item) []interface{} {
	var dateAdded interface{}
	if !item.DateAdded.IsZero() {
		dateAdded = item.DateAdded
	}
	var estimatedPrice interface{}
	if item.EstimatedPrice != nil {
		estimatedPrice = *item.EstimatedPrice
	}
	var lastUpdated interface{}
	if item.LastUpdated != nil {
		lastUpdated = *item.LastUpdated
	}
	var propertyTag interface{}
	if item.PropertyTag != nil {
		propertyTag = item.PropertyTag.String()
	}

	return []interface{}{
		item.ID,
		item.ImageURL,
		item.Name,
		item.Description,
		item.GroupID,
		item.Quantity,
		dateAdded,
		estimatedPrice,
		string(item.Status),
		item.LastKnownRoom.Name,
		item.UpdatedBy,
		lastUpdated,
		propertyTag,
		item.PurchaseReceiptURL,
	}
}
