package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"inventario-activos/service"
)

// AdminController handles maintenance endpoints: the Postgres mirror sync
// and the spreadsheet export.
type AdminController struct {
	mirror *service.MirrorService
	export *service.ExportService
}

// NewAdminController creates a new AdminController. mirror may be nil when
// no database is configured; the sync endpoint then returns 503.
func NewAdminController(mirror *service.MirrorService, export *service.ExportService) *AdminController {
	return &AdminController{
		mirror: mirror,
		export: export,
	}
}

// SyncMirror handles POST /admin/mirror/sync
func (c *AdminController) SyncMirror(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.mirror == nil {
		http.Error(w, "Database mirror is not configured", http.StatusServiceUnavailable)
		return
	}

	ctx := context.Background()
	result, err := c.mirror.SyncItems(ctx)
	if err != nil {
		respondError(w, "sync mirror", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ExportItems handles GET /admin/export
// Returns the item sheet as a downloadable XLSX workbook.
func (c *AdminController) ExportItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	data, err := c.export.ExportItemsXLSX(ctx)
	if err != nil {
		respondError(w, "export items", err)
		return
	}

	filename := fmt.Sprintf("inventory-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}
