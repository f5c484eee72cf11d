package handler

import (
	"encoding/json"
	"net/http"

	"stockroom-api/internal/model"
	"stockroom-api/internal/service"
	"stockroom-api/pkg/apierror"
	"stockroom-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// InventoryHandler handles inventory-related HTTP requests.
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// List handles GET /api/inventory
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, items)
}

// Get handles GET /api/inventory/{id}
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.inventoryService.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, item)
}

// Create handles POST /api/inventory
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	item, err := h.inventoryService.Create(r.Context(), input)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, item)
}

// Update handles PUT /api/inventory/{id}
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	input, err := decodeInput(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	item, err := h.inventoryService.Update(r.Context(), id, input)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, item)
}

// Delete handles DELETE /api/inventory/{id}
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.inventoryService.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}

	response.Message(w, "Item deleted successfully")
}

// decodeInput decodes the typed write payload. Unknown fields (including
// id and timestamps) are ignored; malformed JSON fails fast with a 400.
func decodeInput(r *http.Request) (model.ItemInput, error) {
	var input model.ItemInput
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return input, apierror.Validation("invalid request body")
	}
	return input, nil
}
