package models

import (
	"strings"
	"time"
)

// SaleCondition describes the condition an item was sold in.
type SaleCondition string

// Sale condition values.
const (
	SaleConditionNew  SaleCondition = "new"
	SaleConditionGood SaleCondition = "good"
	SaleConditionFair SaleCondition = "fair"
	SaleConditionPoor SaleCondition = "poor"
)

// ParseSaleCondition parses a condition cell value, defaulting to "new"
// when the value is empty or unparseable.
func ParseSaleCondition(s string) SaleCondition {
	switch SaleCondition(strings.ToLower(strings.TrimSpace(s))) {
	case SaleConditionGood:
		return SaleConditionGood
	case SaleConditionFair:
		return SaleConditionFair
	case SaleConditionPoor:
		return SaleConditionPoor
	default:
		return SaleConditionNew
	}
}

// Sale represents one sale row. ItemID references the sold item and the
// date is required: a row without a parseable date is rejected on decode.
type Sale struct {
	ItemID          string        `json:"itemId"`
	Date            time.Time     `json:"date"`
	Price           *float64      `json:"price,omitempty"`
	Condition       SaleCondition `json:"condition"`
	BuyerName       string        `json:"buyerName"`
	BuyerContact    string        `json:"buyerContact,omitempty"`
	SoldBy          string        `json:"soldBy"`
	Department      string        `json:"department"`
	ReceiptImageURL string        `json:"receiptImageUrl,omitempty"`
	ReceiptPDFURL   string        `json:"receiptPdfUrl,omitempty"`
}

// RecordSaleRequest is the request body for recording a sale.
type RecordSaleRequest struct {
	Sale  Sale   `json:"sale"`
	Actor string `json:"actor"`
}

// SaleListResponse is the response for listing decoded sale rows.
type SaleListResponse struct {
	Sales []Sale `json:"sales"`
}
