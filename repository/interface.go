package repository

import (
	"context"

	"inventario-activos/models"
)

// MirrorRepositoryInterface defines the contract for the Postgres read
// mirror of the item sheet. The mirror serves reporting queries only and
// is never authoritative.
type MirrorRepositoryInterface interface {
	EnsureSchema(ctx context.Context) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	Insert(ctx context.Context, item models.Item) error
	Update(ctx context.Context, item models.Item) error
	ListItems(ctx context.Context, status string) ([]models.Item, error)
}
