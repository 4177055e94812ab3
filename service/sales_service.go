package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"inventario-activos/models"
	"inventario-activos/utils"
)

// SalesService records sales: the sale row is appended to the sales sheet,
// the sold item's status is flipped, and a Sold history line plus an
// optional notification mail are emitted best-effort.
type SalesService struct {
	sheets    *SheetsService
	history   *HistoryLogService
	inventory InventoryServiceInterface
	mail      *MailService
}

// NewSalesService creates a SalesService. mail may be nil when
// notifications are not configured.
func NewSalesService(sheets *SheetsService, history *HistoryLogService, inventory InventoryServiceInterface, mail *MailService) *SalesService {
	return &SalesService{sheets: sheets, history: history, inventory: inventory, mail: mail}
}

// ListSales fetches and decodes the sales sheet. Rows without a parseable
// date are skipped.
func (s *SalesService) ListSales(ctx context.Context) ([]models.Sale, error) {
	vr, err := s.sheets.GetValues(ctx, s.sheets.Config().SaleSheet)
	if err != nil {
		return nil, err
	}
	var sales []models.Sale
	for i, row := range vr.Values {
		if i == 0 {
			continue
		}
		if sale, ok := models.SaleSchema.DecodeRow(row); ok {
			sales = append(sales, *sale)
		}
	}
	return sales, nil
}

// RecordSale validates and appends a sale row, then flips the sold item.
// The referenced item must exist.
func (s *SalesService) RecordSale(ctx context.Context, sale models.Sale, actor string) (*models.Sale, error) {
	actor = actorOrUnknown(actor)

	if sale.Date.IsZero() {
		sale.Date = time.Now()
	}
	if sale.Condition == "" {
		sale.Condition = models.SaleConditionNew
	}
	if sale.SoldBy == "" {
		sale.SoldBy = actor
	}
	if err := utils.ValidateSale(sale); err != nil {
		return nil, err
	}

	item, err := s.inventory.GetItem(ctx, sale.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sold item: %w", err)
	}

	row := models.SaleSchema.EncodeRecord(&sale)
	if err := s.sheets.AppendRow(ctx, s.sheets.Config().SaleSheet, row); err != nil {
		return nil, err
	}
	log.Printf("✅ Recorded sale of item %s to %s", sale.ItemID, sale.BuyerName)

	// The sale row is already the record of truth; status propagation to
	// the item sheet is not rolled back on failure.
	now := time.Now()
	item.Status = models.ItemStatusSold
	item.UpdatedBy = actor
	item.LastUpdated = &now
	itemRow := models.ItemSchema.EncodeRecord(item)
	if _, err := s.sheets.SaveRow(ctx, s.sheets.Config().ItemSheet, item.ID, itemRow); err != nil {
		log.Printf("⚠️  Failed to mark item %s as sold: %v", item.ID, err)
	}

	s.history.RecordBestEffort(ctx, sale.ItemID, []models.HistoryAction{
		models.SoldAction{
			Price: renderSalePrice(sale.Price),
			Buyer: sale.BuyerName,
			By:    sale.SoldBy,
			Date:  sale.Date,
		},
	})

	if s.mail != nil {
		if err := s.mail.NotifySale(ctx, *item, sale); err != nil {
			log.Printf("⚠️  Failed to send sale notification for item %s: %v", item.ID, err)
		}
	}
	return &sale, nil
}

func renderSalePrice(price *float64) string {
	if price == nil {
		return "an unrecorded price"
	}
	return strconv.FormatFloat(*price, 'f', -1, 64)
}
