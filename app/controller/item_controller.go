package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"inventario-activos/models"
	"inventario-activos/service"

	"github.com/google/uuid"
)

// Uploaded images are capped before decoding the multipart form.
const maxImageUploadBytes = 20 << 20

// ItemController handles HTTP requests for inventory items
type ItemController struct {
	inventory service.InventoryServiceInterface
	store     service.ObjectStore
}

// NewItemController creates a new ItemController. store may be nil when no
// object store is configured; image endpoints then return 503.
func NewItemController(inventory service.InventoryServiceInterface, store service.ObjectStore) *ItemController {
	return &ItemController{
		inventory: inventory,
		store:     store,
	}
}

// CreateItem handles POST /admin/items
// Quantity > 1 creates a tag-range batch sharing name, description and price.
func (c *ItemController) CreateItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	if req.Quantity > 1 {
		group := models.ItemGroup{
			ID:             uuid.New().String(),
			Name:           req.Name,
			Description:    req.Description,
			ImageURL:       req.ImageURL,
			EstimatedPrice: req.EstimatedPrice,
		}
		items, err := c.inventory.CreateBatch(ctx, group, req.Quantity, req.TagRange, models.NewRoom(req.Room), req.Actor)
		if err != nil {
			respondError(w, "create items", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.ItemListResponse{Items: items})
		return
	}

	item := models.Item{
		Name:           req.Name,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		EstimatedPrice: req.EstimatedPrice,
		LastKnownRoom:  models.NewRoom(req.Room),
		Quantity:       req.Quantity,
	}
	created, err := c.inventory.CreateItem(ctx, item, req.Tag, req.Actor)
	if err != nil {
		respondError(w, "create item", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// ListItems handles GET /admin/items
func (c *ItemController) ListItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	items, err := c.inventory.ListItems(ctx)
	if err != nil {
		respondError(w, "list items", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.ItemListResponse{Items: items}); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetItem handles GET /admin/items/:id
func (c *ItemController) GetItem(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/items/")
	if id == "" {
		http.Error(w, "id parameter is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	item, err := c.inventory.GetItem(ctx, id)
	if err != nil {
		respondError(w, "get item", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(item); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// UpdateItem handles PUT /admin/items/:id
func (c *ItemController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/items/")
	if id == "" {
		http.Error(w, "id parameter is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	req.Item.ID = id

	ctx := context.Background()
	updated, err := c.inventory.UpdateItem(ctx, req.Item, req.Actor)
	if err != nil {
		respondError(w, "update item", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// DiscardItem handles POST /admin/items/:id/discard
// The row is kept and flipped to discarded so its history stays intact.
func (c *ItemController) DiscardItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/admin/items/")
	id := strings.TrimSuffix(path, "/discard")
	if id == "" {
		http.Error(w, "id parameter is required", http.StatusBadRequest)
		return
	}

	actor := r.URL.Query().Get("actor")

	ctx := context.Background()
	item, err := c.inventory.DiscardItem(ctx, id, actor)
	if err != nil {
		respondError(w, "discard item", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"item":   item,
	})
}

// UploadImage handles POST /admin/items/:id/image
// Stores the uploaded image and records its URL on the item row.
func (c *ItemController) UploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.store == nil {
		http.Error(w, "Object store is not configured", http.StatusServiceUnavailable)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/admin/items/")
	id := strings.TrimSuffix(path, "/image")
	if id == "" {
		http.Error(w, "id parameter is required", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read uploaded file", http.StatusInternalServerError)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	ctx := context.Background()

	item, err := c.inventory.GetItem(ctx, id)
	if err != nil {
		respondError(w, "get item", err)
		return
	}

	url, err := c.store.Put(ctx, data, fmt.Sprintf("images/%s.jpg", id), contentType)
	if err != nil {
		respondError(w, "upload image", err)
		return
	}

	item.ImageURL = url
	actor := r.FormValue("actor")
	if _, err := c.inventory.UpdateItem(ctx, *item, actor); err != nil {
		respondError(w, "record image URL", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "success",
		"imageUrl": url,
	})
}

// GetImage handles GET /admin/items/:id/image
// Streams the stored image bytes.
func (c *ItemController) GetImage(w http.ResponseWriter, r *http.Request) {
	if c.store == nil {
		http.Error(w, "Object store is not configured", http.StatusServiceUnavailable)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/admin/items/")
	id := strings.TrimSuffix(path, "/image")
	if id == "" {
		http.Error(w, "id parameter is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	data, err := c.store.Get(ctx, fmt.Sprintf("images/%s.jpg", id))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get image: %v", err), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int((24*time.Hour).Seconds())))
	w.Write(data)
}
