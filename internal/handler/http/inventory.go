package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rangeops/backoffice-go/internal/domain/inventory"
	"github.com/rangeops/backoffice-go/internal/handler/http/response"
)

type InventoryHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
	GetByUPC(w http.ResponseWriter, r *http.Request)
}

type InventoryHandlerImpl struct {
	inventoryService inventory.InventoryService
}

func NewInventoryHandler(inventoryService inventory.InventoryService) InventoryHandler {
	return &InventoryHandlerImpl{inventoryService: inventoryService}
}

// Search implements InventoryHandler.
func (h *InventoryHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	result, err := h.inventoryService.Search(r.Context(), r.URL.Query().Get("q"), page)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, &response.Meta{
		Page:       result.Page,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

// GetByUPC implements InventoryHandler.
func (h *InventoryHandlerImpl) GetByUPC(w http.ResponseWriter, r *http.Request) {
	item, err := h.inventoryService.GetByUPC(r.Context(), chi.URLParam(r, "upc"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}
