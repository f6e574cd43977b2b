package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yummy-restaurant/backend/internal/adapter/logger"
	"github.com/yummy-restaurant/backend/internal/domain"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

type MenuHandler struct {
	service interfaces.CatalogService
	logger  logger.Logger
}

func NewMenuHandler(service interfaces.CatalogService, logger logger.Logger) *MenuHandler {
	return &MenuHandler{service: service, logger: logger}
}

type SaveMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type MenuItemResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

func toMenuItemResponse(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.InexactFloat64(),
		Category:    string(item.Category),
		Image:       item.Image,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
	}
}

func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAvailable(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]MenuItemResponse, len(items))
	for i := range items {
		resp[i] = toMenuItemResponse(&items[i])
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "Invalid menu item id", http.StatusBadRequest, nil)
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toMenuItemResponse(item))
}

func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req SaveMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	item, err := h.service.CreateItem(r.Context(), saveCommand(req))
	if err != nil {
		h.logger.Error("menu_create_failed", "Failed to create menu item", "", nil, err)
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toMenuItemResponse(item))
}

func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "Invalid menu item id", http.StatusBadRequest, nil)
		return
	}

	var req SaveMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), id, saveCommand(req))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toMenuItemResponse(item))
}

func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "Invalid menu item id", http.StatusBadRequest, nil)
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Menu item deleted"})
}

func saveCommand(req SaveMenuItemRequest) interfaces.SaveMenuItemCommand {
	return interfaces.SaveMenuItemCommand{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Available:   req.Available,
	}
}
