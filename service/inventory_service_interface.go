package service

import (
	"context"

	"inventario-activos/models"
)

// InventoryServiceInterface defines the contract for item persistence
// operations against the backing sheet.
type InventoryServiceInterface interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id string) (*models.Item, error)
	CreateItem(ctx context.Context, item models.Item, tagInput string, actor string) (*models.Item, error)
	CreateBatch(ctx context.Context, group models.ItemGroup, quantity int, rangeExpr string, room models.Room, actor string) ([]models.Item, error)
	UpdateItem(ctx context.Context, updated models.Item, actor string) (*models.Item, error)
	DiscardItem(ctx context.Context, id string, actor string) (*models.Item, error)
}
