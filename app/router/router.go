package router

import (
	"net/http"
	"strings"

	"inventario-activos/app/controller"
)

type Controllers struct {
	Item  *controller.ItemController
	Sale  *controller.SaleController
	Room  *controller.RoomController
	Admin *controller.AdminController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Items collection - handles both POST (create) and GET (list)
	http.HandleFunc("/admin/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Item.CreateItem(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Item.ListItems(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Item actions and item by ID
	http.HandleFunc("/admin/items/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/items/")

		// Route to specific actions first
		if strings.HasSuffix(path, "/discard") {
			controllers.Item.DiscardItem(w, r)
			return
		}
		if strings.HasSuffix(path, "/image") {
			if r.Method == http.MethodPost {
				controllers.Item.UploadImage(w, r)
			} else if r.Method == http.MethodGet {
				controllers.Item.GetImage(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Item by ID - handles both GET (get) and PUT (update)
		if r.Method == http.MethodGet {
			controllers.Item.GetItem(w, r)
		} else if r.Method == http.MethodPut {
			controllers.Item.UpdateItem(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Sales collection - handles both POST (record) and GET (list)
	http.HandleFunc("/admin/sales", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Sale.RecordSale(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Sale.ListSales(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Rooms collection - handles both POST (add) and GET (list)
	http.HandleFunc("/admin/rooms", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Room.AddRoom(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Room.ListRooms(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Database mirror sync
	http.HandleFunc("/admin/mirror/sync", controllers.Admin.SyncMirror)

	// XLSX export of the item sheet
	http.HandleFunc("/admin/export", controllers.Admin.ExportItems)
}
