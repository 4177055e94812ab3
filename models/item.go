package models

import (
	"strings"
	"time"
)

// ItemStatus is the lifecycle state of an inventory item.
type ItemStatus string

// Item lifecycle states.
const (
	ItemStatusAvailable  ItemStatus = "available"
	ItemStatusCheckedOut ItemStatus = "checked-out"
	ItemStatusSold       ItemStatus = "sold"
	ItemStatusDiscarded  ItemStatus = "discarded"
)

// ParseItemStatus parses a status cell value, defaulting to "available"
// when the value is empty or unknown.
func ParseItemStatus(s string) ItemStatus {
	switch ItemStatus(strings.ToLower(strings.TrimSpace(s))) {
	case ItemStatusCheckedOut:
		return ItemStatusCheckedOut
	case ItemStatusSold:
		return ItemStatusSold
	case ItemStatusDiscarded:
		return ItemStatusDiscarded
	default:
		return ItemStatusAvailable
	}
}

// Item represents one tracked inventory item. The spreadsheet row keyed by
// ID is the system of record; this struct is the decoded in-memory view.
type Item struct {
	ID                 string       `json:"id"`
	ImageURL           string       `json:"imageUrl"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	GroupID            string       `json:"groupId,omitempty"`
	Quantity           int          `json:"quantity"`
	DateAdded          time.Time    `json:"dateAdded"`
	EstimatedPrice     *float64     `json:"estimatedPrice,omitempty"`
	Status             ItemStatus   `json:"status"`
	LastKnownRoom      Room         `json:"lastKnownRoom"`
	UpdatedBy          string       `json:"updatedBy"`
	LastUpdated        *time.Time   `json:"lastUpdated,omitempty"`
	PropertyTag        *PropertyTag `json:"propertyTag,omitempty"`
	PurchaseReceiptURL string       `json:"purchaseReceiptUrl,omitempty"`
}

// ItemGroup seeds shared attributes when creating several items at once.
// Groups are never persisted as rows; items reference them by ID.
type ItemGroup struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl"`
	EstimatedPrice *float64 `json:"estimatedPrice,omitempty"`
}

// CreateItemRequest is the request body for creating one item or a
// tag-range batch. Quantity > 1 switches to the batch path, where TagRange
// must expand to exactly Quantity tags.
type CreateItemRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl"`
	EstimatedPrice *float64 `json:"estimatedPrice,omitempty"`
	Room           string   `json:"room"`
	Quantity       int      `json:"quantity"`
	Tag            string   `json:"tag,omitempty"`
	TagRange       string   `json:"tagRange,omitempty"`
	Actor          string   `json:"actor"`
}

// UpdateItemRequest is the request body for editing an existing item.
type UpdateItemRequest struct {
	Item  Item   `json:"item"`
	Actor string `json:"actor"`
}

// ItemListResponse is the response for listing decoded item rows.
type ItemListResponse struct {
	Items []Item `json:"items"`
}
