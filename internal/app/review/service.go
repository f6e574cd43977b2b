package review

import (
	"context"

	"github.com/yummy-restaurant/backend/internal/adapter/logger"
	"github.com/yummy-restaurant/backend/internal/domain"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

type Service struct {
	repo   interfaces.ReviewRepository
	logger logger.Logger
}

func NewService(repo interfaces.ReviewRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) SubmitReview(ctx context.Context, cmd interfaces.SubmitReviewCommand) (*domain.Review, error) {
	review, err := domain.NewReview(cmd.UserID, cmd.UserName, cmd.Rating, cmd.Comment)
	if err != nil {
		s.logger.Error("review_validation_failed", "Review validation failed", "", nil, err)
		return nil, err
	}

	if err := s.repo.Create(ctx, review); err != nil {
		s.logger.Error("db_insert_failed", "Failed to create review", "", nil, err)
		return nil, err
	}

	s.logger.Debug("review_created", "Review created", "", map[string]interface{}{
		"review_id": review.ID,
		"rating":    review.Rating,
	})
	return review, nil
}

// ListReviews returns every review newest first together with the summary
// recomputed from the full collection.
func (s *Service) ListReviews(ctx context.Context) ([]domain.Review, domain.ReviewSummary, error) {
	reviews, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, domain.ReviewSummary{}, err
	}
	return reviews, domain.Summarize(reviews), nil
}
