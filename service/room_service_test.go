package service

import (
	"context"
	"errors"
	"testing"

	"inventario-activos/models"
	"inventario-activos/utils"
)

func TestListRoomsFiltersNoise(t *testing.T) {
	sheets, _, srv := newTestSheets(t, map[string][][]string{
		"Rooms": {
			{"Name"},
			{"Storage B"},
			{""},
			{models.PlaceholderRoomName},
			{"Room 214"},
			{"storage b"}, // duplicate by identifier
		},
	})
	defer srv.Close()
	rooms := NewRoomService(sheets)

	got, err := rooms.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("ListRooms() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListRooms() = %d rooms, want 2: %v", len(got), got)
	}
	if got[0].Name != "Storage B" || got[1].Name != "Room 214" {
		t.Errorf("ListRooms() = %v", got)
	}
}

func TestAddRoom(t *testing.T) {
	sheets, backend, srv := newTestSheets(t, map[string][][]string{
		"Rooms": {{"Name"}, {"Storage B"}},
	})
	defer srv.Close()
	rooms := NewRoomService(sheets)

	room, err := rooms.AddRoom(context.Background(), "  Room 214 ")
	if err != nil {
		t.Fatalf("AddRoom() error = %v", err)
	}
	if room.Name != "Room 214" {
		t.Errorf("Name = %q, want trimmed Room 214", room.Name)
	}
	last := backend.sheets["Rooms"][len(backend.sheets["Rooms"])-1]
	if last[0] != "Room 214" {
		t.Errorf("appended row = %v", last)
	}
}

func TestAddRoomSeedsHeaderOnEmptySheet(t *testing.T) {
	sheets, backend, srv := newTestSheets(t, map[string][][]string{
		"Rooms": {},
	})
	defer srv.Close()
	rooms := NewRoomService(sheets)

	if _, err := rooms.AddRoom(context.Background(), "Storage B"); err != nil {
		t.Fatalf("AddRoom() error = %v", err)
	}

	// Row 1 must be the header, never the first room.
	got := backend.sheets["Rooms"]
	if len(got) != 2 {
		t.Fatalf("rooms sheet has %d rows, want header + 1: %v", len(got), got)
	}
	if got[0][0] != "Name" || got[1][0] != "Storage B" {
		t.Errorf("rooms sheet = %v, want [[Name] [Storage B]]", got)
	}

	// And the room shows up in listings right away.
	listed, err := rooms.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("ListRooms() error = %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "Storage B" {
		t.Errorf("ListRooms() = %v, want [Storage B]", listed)
	}
}

func TestAddRoomRejections(t *testing.T) {
	sheets, backend, srv := newTestSheets(t, map[string][][]string{
		"Rooms": {{"Name"}, {"Storage B"}},
	})
	defer srv.Close()
	rooms := NewRoomService(sheets)

	if _, err := rooms.AddRoom(context.Background(), "  "); !errors.Is(err, utils.ErrEmptyField) {
		t.Errorf("AddRoom(blank) error = %v, want ErrEmptyField", err)
	}
	if _, err := rooms.AddRoom(context.Background(), models.PlaceholderRoomName); err == nil {
		t.Error("AddRoom(placeholder) succeeded, want rejection")
	}
	if _, err := rooms.AddRoom(context.Background(), "storage b"); err == nil {
		t.Error("AddRoom(case-variant duplicate) succeeded, want rejection")
	}
	if len(backend.sheets["Rooms"]) != 2 {
		t.Errorf("rooms sheet grew on rejected adds: %v", backend.sheets["Rooms"])
	}
}
