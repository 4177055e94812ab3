package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"inventario-activos/models"
	"inventario-activos/service"
)

// SaleController handles HTTP requests for sales
type SaleController struct {
	sales *service.SalesService
}

// NewSaleController creates a new SaleController
func NewSaleController(sales *service.SalesService) *SaleController {
	return &SaleController{sales: sales}
}

// RecordSale handles POST /admin/sales
// Appends the sale row, flips the item to sold and logs the sale in its
// history.
func (c *SaleController) RecordSale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	sale, err := c.sales.RecordSale(ctx, req.Sale, req.Actor)
	if err != nil {
		respondError(w, "record sale", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sale)
}

// ListSales handles GET /admin/sales
func (c *SaleController) ListSales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	sales, err := c.sales.ListSales(ctx)
	if err != nil {
		respondError(w, "list sales", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.SaleListResponse{Sales: sales}); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
