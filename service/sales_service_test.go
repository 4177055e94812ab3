package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"inventario-activos/models"
)

func newTestSales(t *testing.T, itemRows ...[]string) (*SalesService, *fakeSheetBackend, func()) {
	t.Helper()
	items := [][]string{models.ItemSchema.Labels()}
	items = append(items, itemRows...)
	sheets, backend, srv := newTestSheets(t, map[string][][]string{
		"Items":   items,
		"Sales":   {models.SaleSchema.Labels()},
		"History": {{"ID", "Events..."}},
	})
	history := NewHistoryLogService(sheets)
	inventory := NewInventoryService(sheets, history)
	sales := NewSalesService(sheets, history, inventory, nil)
	return sales, backend, srv.Close
}

func TestRecordSale(t *testing.T) {
	sales, backend, closeSrv := newTestSales(t,
		encodedItemRow("item-1", "Chair", "A0001", "Storage B"),
	)
	defer closeSrv()

	price := 25.5
	sale := models.Sale{
		ItemID:    "item-1",
		Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Price:     &price,
		BuyerName: "Ana",
	}
	recorded, err := sales.RecordSale(context.Background(), sale, "erika")
	if err != nil {
		t.Fatalf("RecordSale() error = %v", err)
	}
	if recorded.SoldBy != "erika" {
		t.Errorf("SoldBy = %q, want erika", recorded.SoldBy)
	}
	if recorded.Condition != models.SaleConditionNew {
		t.Errorf("Condition = %q, want default new", recorded.Condition)
	}

	// The sale row landed.
	saleRows := backend.sheets["Sales"]
	if len(saleRows) != 2 {
		t.Fatalf("sales sheet has %d rows, want header + 1", len(saleRows))
	}
	decoded, ok := models.SaleSchema.DecodeRow(saleRows[1])
	if !ok {
		t.Fatalf("sale row is not decodable: %v", saleRows[1])
	}
	if decoded.ItemID != "item-1" || decoded.BuyerName != "Ana" {
		t.Errorf("decoded sale = %+v", decoded)
	}

	// The sold item was flipped.
	item, ok := models.ItemSchema.DecodeRow(backend.sheets["Items"][1])
	if !ok {
		t.Fatal("item row is not decodable after sale")
	}
	if item.Status != models.ItemStatusSold {
		t.Errorf("item status = %q, want sold", item.Status)
	}

	// The history carries the sold line.
	historyRows := backend.sheets["History"]
	if len(historyRows) != 2 {
		t.Fatalf("history sheet has %d rows, want header + 1", len(historyRows))
	}
	if got := historyRows[1][1]; !strings.HasPrefix(got, "Sold to Ana for 25.5 by erika on ") {
		t.Errorf("history line = %q", got)
	}
}

func TestRecordSaleUnknownItem(t *testing.T) {
	sales, backend, closeSrv := newTestSales(t)
	defer closeSrv()

	sale := models.Sale{ItemID: "missing", Date: time.Now()}
	if _, err := sales.RecordSale(context.Background(), sale, "erika"); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("RecordSale() error = %v, want ErrRowNotFound", err)
	}
	if len(backend.sheets["Sales"]) != 1 {
		t.Errorf("sale row written for an unknown item")
	}
}

func TestRecordSaleUnpricedHistoryLine(t *testing.T) {
	sales, backend, closeSrv := newTestSales(t,
		encodedItemRow("item-1", "Chair", "", "Storage B"),
	)
	defer closeSrv()

	sale := models.Sale{ItemID: "item-1", Date: time.Now(), BuyerName: "Ana"}
	if _, err := sales.RecordSale(context.Background(), sale, "erika"); err != nil {
		t.Fatalf("RecordSale() error = %v", err)
	}

	got := backend.sheets["History"][1][1]
	if !strings.HasPrefix(got, "Sold to Ana for an unrecorded price by erika on ") {
		t.Errorf("history line = %q", got)
	}
}

func TestListSalesSkipsUndecodableRows(t *testing.T) {
	sheets, _, srv := newTestSheets(t, map[string][][]string{
		"Sales": {
			models.SaleSchema.Labels(),
			{"item-1", "2024-03-15", "25.5", "good", "Ana"},
			{"item-2", "not-a-date"},
			{"", "2024-03-16"},
		},
	})
	defer srv.Close()
	sales := NewSalesService(sheets, NewHistoryLogService(sheets), nil, nil)

	got, err := sales.ListSales(context.Background())
	if err != nil {
		t.Fatalf("ListSales() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListSales() = %d sales, want 1", len(got))
	}
	if got[0].ItemID != "item-1" || got[0].Condition != models.SaleConditionGood {
		t.Errorf("decoded sale = %+v", got[0])
	}
}
