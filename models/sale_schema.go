package models

import "time"

// SaleSchema is the column layout of the sales sheet. Rows are keyed by the
// sold item's ID in column one; a missing or unparseable date rejects the
// whole row.
var SaleSchema = Schema[Sale]{
	RequiredTextField("Item ID", func(s *Sale) *string { return &s.ItemID }),
	DateField("Date", true, func(s *Sale) *time.Time { return &s.Date }),
	OptionalNumberField("Price", func(s *Sale) **float64 { return &s.Price }),
	EnumField("Condition", func(s *Sale) *SaleCondition { return &s.Condition }, ParseSaleCondition),
	TextField("Buyer Name", func(s *Sale) *string { return &s.BuyerName }),
	TextField("Buyer Contact", func(s *Sale) *string { return &s.BuyerContact }),
	TextField("Sold By", func(s *Sale) *string { return &s.SoldBy }),
	TextField("Department", func(s *Sale) *string { return &s.Department }),
	TextField("Receipt Image URL", func(s *Sale) *string { return &s.ReceiptImageURL }),
	TextField("Receipt PDF URL", func(s *Sale) *string { return &s.ReceiptPDFURL }),
}
