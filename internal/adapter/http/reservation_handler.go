package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yummy-restaurant/backend/internal/adapter/logger"
	"github.com/yummy-restaurant/backend/internal/domain"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

type ReservationHandler struct {
	service interfaces.ReservationService
	logger  logger.Logger
}

func NewReservationHandler(service interfaces.ReservationService, logger logger.Logger) *ReservationHandler {
	return &ReservationHandler{service: service, logger: logger}
}

type CreateReservationRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

type ReservationResponse struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status"`
}

func toReservationResponse(res *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              res.ID,
		Name:            res.Name,
		Phone:           res.Phone,
		Email:           res.Email,
		Date:            res.Date,
		Time:            res.Time,
		Guests:          res.Guests,
		SpecialRequests: res.SpecialRequests,
		Status:          string(res.Status),
		CreatedAt:       res.CreatedAt,
	}
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	cmd := interfaces.CreateReservationCommand{
		Name:            strings.TrimSpace(req.Name),
		Phone:           strings.TrimSpace(req.Phone),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Date:            strings.TrimSpace(req.Date),
		Time:            strings.TrimSpace(req.Time),
		Guests:          req.Guests,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	}

	res, err := h.service.CreateReservation(r.Context(), cmd)
	if err != nil {
		h.logger.Error("reservation_creation_failed", "Failed to create reservation", "", nil, err)
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toReservationResponse(res))
}

func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.ListReservations(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]ReservationResponse, len(reservations))
	for i, res := range reservations {
		resp[i] = toReservationResponse(res)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *ReservationHandler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "Invalid reservation id", http.StatusBadRequest, nil)
		return
	}

	var req UpdateReservationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	res, err := h.service.UpdateStatus(r.Context(), id, domain.ReservationStatus(req.Status))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toReservationResponse(res))
}
