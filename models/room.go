package models

import "strings"

// PlaceholderRoomName is the room picker's unselected entry. It must never
// be treated as a real location.
const PlaceholderRoomName = "Select a room"

// Room is a physical location an item can live in. Identity is the
// lowercased trimmed name; display casing is preserved.
type Room struct {
	Name string `json:"name"`
}

// NewRoom creates a Room from a raw name, trimming surrounding whitespace.
func NewRoom(name string) Room {
	return Room{Name: strings.TrimSpace(name)}
}

// ID returns the room's derived identifier.
func (r Room) ID() string {
	return strings.ToLower(r.Name)
}

// Equal reports whether two rooms share an identifier.
func (r Room) Equal(other Room) bool {
	return r.ID() == other.ID()
}

// IsZero reports whether the room has no name.
func (r Room) IsZero() bool {
	return r.Name == ""
}

// IsPlaceholder reports whether the room is the picker placeholder.
func (r Room) IsPlaceholder() bool {
	return strings.EqualFold(r.Name, PlaceholderRoomName)
}
