package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventario-activos/models"
	"inventario-activos/service"
	"inventario-activos/utils"
)

// fakeInventory implements service.InventoryServiceInterface with canned
// behavior per item identifier.
type fakeInventory struct {
	items   map[string]models.Item
	created []models.Item
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{items: make(map[string]models.Item)}
}

func (f *fakeInventory) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeInventory) GetItem(ctx context.Context, id string) (*models.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: item %s", service.ErrRowNotFound, id)
	}
	return &item, nil
}

func (f *fakeInventory) CreateItem(ctx context.Context, item models.Item, tagInput string, actor string) (*models.Item, error) {
	if tagInput == "TAKEN" {
		return nil, fmt.Errorf("%w: %q", utils.ErrDuplicateTag, tagInput)
	}
	item.ID = "new-item"
	f.created = append(f.created, item)
	f.items[item.ID] = item
	return &item, nil
}

func (f *fakeInventory) CreateBatch(ctx context.Context, group models.ItemGroup, quantity int, rangeExpr string, room models.Room, actor string) ([]models.Item, error) {
	var created []models.Item
	for i := 0; i < quantity; i++ {
		item := models.Item{ID: fmt.Sprintf("batch-%d", i), Name: group.Name, GroupID: "group-1"}
		created = append(created, item)
		f.items[item.ID] = item
	}
	f.created = append(f.created, created...)
	return created, nil
}

func (f *fakeInventory) UpdateItem(ctx context.Context, updated models.Item, actor string) (*models.Item, error) {
	if _, ok := f.items[updated.ID]; !ok {
		return nil, fmt.Errorf("%w: item %s", service.ErrRowNotFound, updated.ID)
	}
	f.items[updated.ID] = updated
	return &updated, nil
}

func (f *fakeInventory) DiscardItem(ctx context.Context, id string, actor string) (*models.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: item %s", service.ErrRowNotFound, id)
	}
	item.Status = models.ItemStatusDiscarded
	f.items[id] = item
	return &item, nil
}

func TestCreateItemSingle(t *testing.T) {
	inventory := newFakeInventory()
	c := NewItemController(inventory, nil)

	body := `{"name":"Office Chair","room":"Storage B","quantity":1,"tag":"A0001","actor":"erika"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/items", strings.NewReader(body))
	w := httptest.NewRecorder()
	c.CreateItem(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var item models.Item
	if err := json.NewDecoder(w.Body).Decode(&item); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if item.ID != "new-item" || item.Name != "Office Chair" {
		t.Errorf("response item = %+v", item)
	}
	if len(inventory.created) != 1 {
		t.Errorf("created %d items, want 1", len(inventory.created))
	}
}

func TestCreateItemBatchPath(t *testing.T) {
	inventory := newFakeInventory()
	c := NewItemController(inventory, nil)

	body := `{"name":"Folding Chair","quantity":3,"tagRange":"B0001-B0003","actor":"erika"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/items", strings.NewReader(body))
	w := httptest.NewRecorder()
	c.CreateItem(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var resp models.ItemListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Items) != 3 {
		t.Errorf("response items = %d, want 3", len(resp.Items))
	}
}

func TestCreateItemDuplicateTagIs400(t *testing.T) {
	c := NewItemController(newFakeInventory(), nil)

	body := `{"name":"Chair","quantity":1,"tag":"TAKEN"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/items", strings.NewReader(body))
	w := httptest.NewRecorder()
	c.CreateItem(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestUpdateItemUsesPathID(t *testing.T) {
	inventory := newFakeInventory()
	inventory.items["item-1"] = models.Item{ID: "item-1", Name: "Chair", Quantity: 1}
	c := NewItemController(inventory, nil)

	body := `{"item":{"name":"Desk Chair","quantity":1},"actor":"erika"}`
	req := httptest.NewRequest(http.MethodPut, "/admin/items/item-1", strings.NewReader(body))
	w := httptest.NewRecorder()
	c.UpdateItem(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if got := inventory.items["item-1"].Name; got != "Desk Chair" {
		t.Errorf("stored name = %q, want Desk Chair", got)
	}
}

func TestUpdateItemNotFoundIs404(t *testing.T) {
	c := NewItemController(newFakeInventory(), nil)

	body := `{"item":{"name":"Chair","quantity":1}}`
	req := httptest.NewRequest(http.MethodPut, "/admin/items/missing", strings.NewReader(body))
	w := httptest.NewRecorder()
	c.UpdateItem(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestDiscardItem(t *testing.T) {
	inventory := newFakeInventory()
	inventory.items["item-1"] = models.Item{ID: "item-1", Name: "Chair"}
	c := NewItemController(inventory, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/items/item-1/discard?actor=erika", nil)
	w := httptest.NewRecorder()
	c.DiscardItem(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if got := inventory.items["item-1"].Status; got != models.ItemStatusDiscarded {
		t.Errorf("status = %q, want discarded", got)
	}
}

func TestImageEndpointsWithoutStore(t *testing.T) {
	c := NewItemController(newFakeInventory(), nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/items/item-1/image", nil)
	w := httptest.NewRecorder()
	c.UploadImage(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("UploadImage status = %d, want 503", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/items/item-1/image", nil)
	w = httptest.NewRecorder()
	c.GetImage(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("GetImage status = %d, want 503", w.Code)
	}
}
