package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/yummy-restaurant/backend/internal/adapter/logger"
	"github.com/yummy-restaurant/backend/internal/domain"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

type ReviewHandler struct {
	service interfaces.ReviewService
	logger  logger.Logger
}

func NewReviewHandler(service interfaces.ReviewService, logger logger.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, logger: logger}
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewResponse struct {
	ID        int       `json:"id"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
	TotalReviews  int              `json:"totalReviews"`
}

func toReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, summary, err := h.service.ListReviews(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := ReviewListResponse{
		Reviews:       make([]ReviewResponse, len(reviews)),
		AverageRating: summary.AverageRating,
		TotalReviews:  summary.TotalReviews,
	}
	for i := range reviews {
		resp.Reviews[i] = toReviewResponse(&reviews[i])
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	uid, _ := userID(r)

	var req SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	cmd := interfaces.SubmitReviewCommand{
		UserID:   uid,
		UserName: userName(r),
		Rating:   req.Rating,
		Comment:  strings.TrimSpace(req.Comment),
	}

	review, err := h.service.SubmitReview(r.Context(), cmd)
	if err != nil {
		h.logger.Error("review_creation_failed", "Failed to submit review", "", nil, err)
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toReviewResponse(review))
}
