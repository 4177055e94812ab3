package service

import (
	"context"
	"fmt"
	"log"

	"inventario-activos/models"
	"inventario-activos/utils"
)

// roomSheetHeader is seeded into an empty room sheet before the first data
// row, so row 1 is always the header that readers skip.
var roomSheetHeader = []string{"Name"}

// RoomService manages the room list sheet. Rooms are identified by their
// lowercased name; the picker placeholder never reaches a real list.
type RoomService struct {
	sheets *SheetsService
}

// NewRoomService creates a RoomService.
func NewRoomService(sheets *SheetsService) *RoomService {
	return &RoomService{sheets: sheets}
}

// ListRooms fetches the room sheet, dropping empty names, the placeholder
// entry and duplicates (first occurrence wins).
func (r *RoomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	vr, err := r.sheets.GetValues(ctx, r.sheets.Config().RoomSheet)
	if err != nil {
		return nil, err
	}
	return roomsFromValues(vr.Values), nil
}

// AddRoom appends a new room. Names are unique by derived identifier.
func (r *RoomService) AddRoom(ctx context.Context, name string) (models.Room, error) {
	room := models.NewRoom(name)
	if room.IsZero() {
		return models.Room{}, fmt.Errorf("%w: room name", utils.ErrEmptyField)
	}
	if room.IsPlaceholder() {
		return models.Room{}, fmt.Errorf("room name %q is reserved", name)
	}

	roomSheet := r.sheets.Config().RoomSheet
	vr, err := r.sheets.GetValues(ctx, roomSheet)
	if err != nil {
		return models.Room{}, fmt.Errorf("failed to load rooms for validation: %w", err)
	}
	for _, other := range roomsFromValues(vr.Values) {
		if room.Equal(other) {
			return models.Room{}, fmt.Errorf("room %q already exists", other.Name)
		}
	}

	if len(vr.Values) == 0 {
		if err := r.sheets.AppendRow(ctx, roomSheet, roomSheetHeader); err != nil {
			return models.Room{}, fmt.Errorf("failed to seed room sheet header: %w", err)
		}
	}

	if err := r.sheets.AppendRow(ctx, roomSheet, []string{room.Name}); err != nil {
		return models.Room{}, err
	}
	log.Printf("✅ Added room %s", room.Name)
	return room, nil
}

// roomsFromValues decodes a room sheet snapshot, skipping the header row,
// blanks, the placeholder and duplicates.
func roomsFromValues(values [][]string) []models.Room {
	seen := make(map[string]struct{})
	var rooms []models.Room
	for i, row := range values {
		if i == 0 || len(row) == 0 {
			continue
		}
		room := models.NewRoom(row[0])
		if room.IsZero() || room.IsPlaceholder() {
			continue
		}
		if _, dup := seen[room.ID()]; dup {
			continue
		}
		seen[room.ID()] = struct{}{}
		rooms = append(rooms, room)
	}
	return rooms
}
