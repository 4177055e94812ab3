package models

import "time"

// ItemSchema is the canonical column layout of the item sheet. The first
// eleven columns are the original layout; quantity, group and purchase
// receipt were added later and live at the end so historical rows stay
// addressable.
var ItemSchema = Schema[Item]{
	RequiredTextField("ID", func(i *Item) *string { return &i.ID }),
	TextField("Image URL", func(i *Item) *string { return &i.ImageURL }),
	RequiredTextField("Name", func(i *Item) *string { return &i.Name }),
	TextField("Description", func(i *Item) *string { return &i.Description }),
	DateField("Date Added", false, func(i *Item) *time.Time { return &i.DateAdded }),
	OptionalNumberField("Estimated Price", func(i *Item) **float64 { return &i.EstimatedPrice }),
	EnumField("Status", func(i *Item) *ItemStatus { return &i.Status }, ParseItemStatus),
	RoomField("Last Known Room", func(i *Item) *Room { return &i.LastKnownRoom }),
	TextField("Updated By", func(i *Item) *string { return &i.UpdatedBy }),
	OptionalTimestampField("Last Updated", func(i *Item) **time.Time { return &i.LastUpdated }),
	TagField("Property Tag", func(i *Item) **PropertyTag { return &i.PropertyTag }),
	IntField("Quantity", func(i *Item) *int { return &i.Quantity }, 1),
	TextField("Group", func(i *Item) *string { return &i.GroupID }),
	TextField("Purchase Receipt URL", func(i *Item) *string { return &i.PurchaseReceiptURL }),
}
