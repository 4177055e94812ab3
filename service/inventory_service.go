package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"inventario-activos/models"
	"inventario-activos/utils"
)

// InventoryService owns item persistence against the item sheet: creation,
// updates with audit history, and discarding. The sheet is the system of
// record; every call works on a fresh snapshot.
type InventoryService struct {
	sheets  *SheetsService
	history *HistoryLogService
}

// NewInventoryService creates an InventoryService.
func NewInventoryService(sheets *SheetsService, history *HistoryLogService) *InventoryService {
	return &InventoryService{sheets: sheets, history: history}
}

// Ensure InventoryService implements InventoryServiceInterface
var _ InventoryServiceInterface = (*InventoryService)(nil)

// ListItems fetches and decodes the item sheet. Rows that fail to decode
// (missing identity fields) are skipped, not errors.
func (s *InventoryService) ListItems(ctx context.Context) ([]models.Item, error) {
	vr, err := s.sheets.GetValues(ctx, s.sheets.Config().ItemSheet)
	if err != nil {
		return nil, err
	}
	return decodeItems(vr.Values), nil
}

// GetItem fetches one item by identifier.
func (s *InventoryService) GetItem(ctx context.Context, id string) (*models.Item, error) {
	vr, err := s.sheets.GetValues(ctx, s.sheets.Config().ItemSheet)
	if err != nil {
		return nil, err
	}
	idx := utils.LocateRow(id, vr.Values)
	if idx < 0 {
		return nil, fmt.Errorf("%w: item %s", ErrRowNotFound, id)
	}
	item, ok := models.ItemSchema.DecodeRow(vr.Values[idx+1])
	if !ok {
		return nil, fmt.Errorf("%w: item %s row is not decodable", ErrRowNotFound, id)
	}
	return item, nil
}

// CreateItem validates and persists a single new item. A non-empty
// tagInput is validated for format and uniqueness against the current item
// set before assignment.
func (s *InventoryService) CreateItem(ctx context.Context, item models.Item, tagInput string, actor string) (*models.Item, error) {
	actor = actorOrUnknown(actor)

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.DateAdded.IsZero() {
		item.DateAdded = time.Now()
	}
	if item.Status == "" {
		item.Status = models.ItemStatusAvailable
	}
	item.UpdatedBy = actor

	existing, err := s.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for validation: %w", err)
	}

	if tagInput != "" {
		tag, err := utils.ValidateTag(tagInput, existing, item.ID)
		if err != nil {
			return nil, err
		}
		item.PropertyTag = &tag
	}

	if err := utils.ValidateItem(item); err != nil {
		return nil, err
	}

	row := models.ItemSchema.EncodeRecord(&item)
	if _, err := s.sheets.SaveRow(ctx, s.sheets.Config().ItemSheet, item.ID, row); err != nil {
		return nil, err
	}
	log.Printf("✅ Created item %s (%s)", item.ID, item.Name)

	s.history.RecordBestEffort(ctx, item.ID, []models.HistoryAction{
		models.CreatedAction{By: actor, Date: time.Now()},
	})
	return &item, nil
}

// CreateBatch creates quantity items seeded from the group, one per tag in
// the range expression. The expression must expand to exactly quantity
// unique tags or nothing is written.
func (s *InventoryService) CreateBatch(ctx context.Context, group models.ItemGroup, quantity int, rangeExpr string, room models.Room, actor string) ([]models.Item, error) {
	actor = actorOrUnknown(actor)
	if group.ID == "" {
		group.ID = uuid.NewString()
	}

	existing, err := s.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for validation: %w", err)
	}

	tags, err := utils.ValidateTagRange(rangeExpr, quantity, existing)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	created := make([]models.Item, 0, len(tags))
	for i := range tags {
		tag := tags[i]
		item := models.Item{
			ID:             uuid.NewString(),
			Name:           group.Name,
			Description:    group.Description,
			ImageURL:       group.ImageURL,
			EstimatedPrice: group.EstimatedPrice,
			GroupID:        group.ID,
			Quantity:       1,
			DateAdded:      now,
			Status:         models.ItemStatusAvailable,
			LastKnownRoom:  room,
			UpdatedBy:      actor,
			PropertyTag:    &tag,
		}
		if err := utils.ValidateItem(item); err != nil {
			return created, err
		}
		row := models.ItemSchema.EncodeRecord(&item)
		if err := s.sheets.AppendRow(ctx, s.sheets.Config().ItemSheet, row); err != nil {
			return created, fmt.Errorf("failed to append item %s: %w", item.ID, err)
		}
		created = append(created, item)

		s.history.RecordBestEffort(ctx, item.ID, []models.HistoryAction{
			models.CreatedAction{By: actor, Date: now},
		})
	}

	log.Printf("✅ Created %d items for group %s (%s)", len(created), group.ID, group.Name)
	return created, nil
}

// UpdateItem persists an edited item: locate its row on a fresh snapshot,
// patch the covering range, and record field-level diffs in the history
// sheet as one batched best-effort write. A missing or undecodable target
// row is terminal; updates never fall back to appending, that would
// duplicate the identifier.
func (s *InventoryService) UpdateItem(ctx context.Context, updated models.Item, actor string) (*models.Item, error) {
	actor = actorOrUnknown(actor)
	if updated.ID == "" {
		return nil, fmt.Errorf("%w: id", utils.ErrEmptyField)
	}

	itemSheet := s.sheets.Config().ItemSheet
	vr, err := s.sheets.GetValues(ctx, itemSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to locate row for %q: %w", updated.ID, err)
	}

	idx := utils.LocateRow(updated.ID, vr.Values)
	if idx < 0 {
		return nil, fmt.Errorf("%w: item %s", ErrRowNotFound, updated.ID)
	}
	oldItem, ok := models.ItemSchema.DecodeRow(vr.Values[idx+1])
	if !ok {
		return nil, fmt.Errorf("%w: item %s row is not decodable", ErrRowNotFound, updated.ID)
	}

	if updated.PropertyTag != nil {
		items := decodeItems(vr.Values)
		if _, err := utils.ValidateTag(updated.PropertyTag.String(), items, updated.ID); err != nil {
			return nil, err
		}
	}
	if updated.Quantity == 0 {
		updated.Quantity = 1
	}
	if err := utils.ValidateItem(updated); err != nil {
		return nil, err
	}

	// Diff before stamping bookkeeping fields so the audit trail only
	// carries the caller's edits.
	now := time.Now()
	updated.UpdatedBy = oldItem.UpdatedBy
	updated.LastUpdated = oldItem.LastUpdated
	changes := models.ItemSchema.DiffFields(oldItem, &updated, actor, now)
	updated.UpdatedBy = actor
	updated.LastUpdated = &now

	row := models.ItemSchema.EncodeRecord(&updated)
	rangeA1 := utils.RowRange(itemSheet, idx, len(row))
	if err := s.sheets.UpdateRange(ctx, rangeA1, [][]string{row}); err != nil {
		return nil, err
	}
	log.Printf("✅ Updated item %s (%d field changes)", updated.ID, len(changes))

	s.history.RecordBestEffort(ctx, updated.ID, models.EditsFromChanges(changes))
	return &updated, nil
}

// DiscardItem removes an item from active inventory. The values API cannot
// drop a row without a structural rewrite, so the row stays addressable
// with status "discarded" and a Deleted history line.
func (s *InventoryService) DiscardItem(ctx context.Context, id string, actor string) (*models.Item, error) {
	actor = actorOrUnknown(actor)

	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item.Status = models.ItemStatusDiscarded
	item.UpdatedBy = actor
	item.LastUpdated = &now

	row := models.ItemSchema.EncodeRecord(item)
	if _, err := s.sheets.SaveRow(ctx, s.sheets.Config().ItemSheet, item.ID, row); err != nil {
		return nil, err
	}
	log.Printf("🗑️  Discarded item %s", item.ID)

	s.history.RecordBestEffort(ctx, item.ID, []models.HistoryAction{
		models.DeletedAction{By: actor, Date: now},
	})
	return item, nil
}

// decodeItems decodes all data rows of an item sheet snapshot, skipping
// rows that fail identity checks.
func decodeItems(values [][]string) []models.Item {
	var items []models.Item
	for i, row := range values {
		if i == 0 {
			continue
		}
		if item, ok := models.ItemSchema.DecodeRow(row); ok {
			items = append(items, *item)
		}
	}
	return items
}
