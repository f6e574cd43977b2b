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

type OrderHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{service: service, logger: logger}
}

// CreateOrderRequest carries only item references and quantities. Prices
// are resolved server-side against the catalog.
type CreateOrderRequest struct {
	Items []OrderLineRequest `json:"items"`
}

type OrderLineRequest struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type OrderResponse struct {
	ID         int                 `json:"id"`
	UserID     int                 `json:"user_id"`
	Items      []OrderLineResponse `json:"items"`
	TotalPrice float64             `json:"total_price"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
}

type OrderLineResponse struct {
	MenuItemID int     `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type StatusLogResponse struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

func toOrderResponse(order *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:         order.ID,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice.InexactFloat64(),
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
	}
	for _, line := range order.Lines {
		resp.Items = append(resp.Items, OrderLineResponse{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			Price:      line.Price.InexactFloat64(),
		})
	}
	return resp
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	uid, _ := userID(r)

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	cmd := interfaces.PlaceOrderCommand{UserID: uid}
	for _, item := range req.Items {
		cmd.Lines = append(cmd.Lines, domain.CartLine{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	order, err := h.service.PlaceOrder(r.Context(), cmd)
	if err != nil {
		h.logger.Error("order_creation_failed", "Failed to place order", "", nil, err)
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	uid, _ := userID(r)

	orders, err := h.service.ListOrders(r.Context(), uid, isAdmin(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "Invalid order id", http.StatusBadRequest, nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status), userName(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "Invalid order id", http.StatusBadRequest, nil)
		return
	}

	logs, err := h.service.GetStatusHistory(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]StatusLogResponse, len(logs))
	for i, log := range logs {
		resp[i] = StatusLogResponse{
			Status:    string(log.Status),
			ChangedBy: log.ChangedBy,
			ChangedAt: log.ChangedAt,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}
