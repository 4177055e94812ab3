package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"inventario-activos/models"
	"inventario-activos/service"
)

// RoomController handles HTTP requests for rooms
type RoomController struct {
	rooms *service.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(rooms *service.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

// AddRoom handles POST /admin/rooms
func (c *RoomController) AddRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	room, err := c.rooms.AddRoom(ctx, req.Name)
	if err != nil {
		respondError(w, "add room", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(room)
}

// ListRooms handles GET /admin/rooms
func (c *RoomController) ListRooms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	rooms, err := c.rooms.ListRooms(ctx)
	if err != nil {
		respondError(w, "list rooms", err)
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rooms); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
