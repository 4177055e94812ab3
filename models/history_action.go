package models

import (
	"fmt"
	"time"
)

// UnknownActor is recorded when an operation carries no actor attribution.
const UnknownActor = "unknown"

// HistoryAction is one auditable event on an item. Actions render to a
// single human-readable line; lines are append-only and never parsed back.
type HistoryAction interface {
	Line() string
}

// CreatedAction records item creation.
type CreatedAction struct {
	By   string
	Date time.Time
}

// Line renders the action as one history cell.
func (a CreatedAction) Line() string {
	return fmt.Sprintf("Created by %s on %s", a.By, a.Date.Format(ShortDateFormat))
}

// EditedAction records one field-level change.
type EditedAction struct {
	Field string
	Old   string
	New   string
	By    string
	Date  time.Time
}

// Line renders the action as one history cell.
func (a EditedAction) Line() string {
	return fmt.Sprintf("Edited '%s' from '%s' to '%s' by %s on %s",
		a.Field, a.Old, a.New, a.By, a.Date.Format(ShortDateFormat))
}

// DeletedAction records item removal from active inventory.
type DeletedAction struct {
	By   string
	Date time.Time
}

// Line renders the action as one history cell.
func (a DeletedAction) Line() string {
	return fmt.Sprintf("Deleted by %s on %s", a.By, a.Date.Format(ShortDateFormat))
}

// SoldAction records a sale.
type SoldAction struct {
	Price string
	Buyer string
	By    string
	Date  time.Time
}

// Line renders the action as one history cell.
func (a SoldAction) Line() string {
	return fmt.Sprintf("Sold to %s for %s by %s on %s",
		a.Buyer, a.Price, a.By, a.Date.Format(ShortDateFormat))
}

// EditsFromChanges converts codec diff events into history actions,
// preserving field order.
func EditsFromChanges(changes []FieldChange) []HistoryAction {
	actions := make([]HistoryAction, 0, len(changes))
	for _, c := range changes {
		actions = append(actions, EditedAction{
			Field: c.Field,
			Old:   c.Old,
			New:   c.New,
			By:    c.By,
			Date:  c.Date,
		})
	}
	return actions
}
