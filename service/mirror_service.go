package service

import (
	"context"
	"fmt"
	"log"

	"inventario-activos/repository"
)

// MirrorService copies the item sheet into the Postgres read mirror.
type MirrorService struct {
	inventory InventoryServiceInterface
	mirror    repository.MirrorRepositoryInterface
}

// NewMirrorService creates a new MirrorService.
func NewMirrorService(inventory InventoryServiceInterface, mirror repository.MirrorRepositoryInterface) *MirrorService {
	return &MirrorService{inventory: inventory, mirror: mirror}
}

// MirrorSyncResult summarizes one sync run.
type MirrorSyncResult struct {
	Total    int `json:"total"`
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Failed   int `json:"failed"`
}

// SyncItems pulls every item from the sheet and upserts it into the
// mirror. Individual row failures are logged and counted, not fatal.
func (s *MirrorService) SyncItems(ctx context.Context) (MirrorSyncResult, error) {
	log.Printf("🔄 Starting mirror sync...")

	var result MirrorSyncResult

	if err := s.mirror.EnsureSchema(ctx); err != nil {
		return result, fmt.Errorf("failed to prepare mirror: %w", err)
	}

	items, err := s.inventory.ListItems(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to fetch items for mirror sync: %w", err)
	}
	result.Total = len(items)

	for _, item := range items {
		exists, err := s.mirror.ExistsByID(ctx, item.ID)
		if err != nil {
			log.Printf("❌ Error checking mirrored item %s: %v", item.ID, err)
			result.Failed++
			continue
		}

		if exists {
			if err := s.mirror.Update(ctx, item); err != nil {
				log.Printf("❌ Error updating mirrored item %s: %v", item.ID, err)
				result.Failed++
				continue
			}
			result.Updated++
		} else {
			if err := s.mirror.Insert(ctx, item); err != nil {
				log.Printf("❌ Error inserting mirrored item %s: %v", item.ID, err)
				result.Failed++
				continue
			}
			result.Inserted++
		}
	}

	log.Printf("🎉 Mirror sync complete: %d total, %d inserted, %d updated, %d failed",
		result.Total, result.Inserted, result.Updated, result.Failed)
	return result, nil
}
