package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yummy-restaurant/backend/internal/domain"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

type nopLogger struct{}

func (nopLogger) Info(string, string, string, map[string]interface{})         {}
func (nopLogger) Debug(string, string, string, map[string]interface{})        {}
func (nopLogger) Error(string, string, string, map[string]interface{}, error) {}

type fakeReviewRepo struct {
	nextID  int
	reviews []domain.Review
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	r.nextID++
	review.ID = r.nextID
	// Newest first, matching the SQL ordering.
	r.reviews = append([]domain.Review{*review}, r.reviews...)
	return nil
}

func (r *fakeReviewRepo) ListAll(ctx context.Context) ([]domain.Review, error) {
	return r.reviews, nil
}

func TestSubmitReview(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewService(repo, nopLogger{})

	review, err := svc.SubmitReview(context.Background(), interfaces.SubmitReviewCommand{
		UserID: 7, UserName: "Alex", Rating: 5, Comment: "Great food!",
	})
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.Len(t, repo.reviews, 1)
}

func TestSubmitReview_Invalid(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewService(repo, nopLogger{})

	review, err := svc.SubmitReview(context.Background(), interfaces.SubmitReviewCommand{
		UserID: 7, UserName: "Alex", Rating: 9, Comment: "",
	})

	assert.Nil(t, review)
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, repo.reviews)
}

func TestListReviews_SummaryRecomputedOnRead(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewService(repo, nopLogger{})

	reviews, summary, err := svc.ListReviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.Equal(t, 0, summary.TotalReviews)
	assert.Equal(t, 0.0, summary.AverageRating)

	for _, rating := range []int{5, 3} {
		_, err := svc.SubmitReview(context.Background(), interfaces.SubmitReviewCommand{
			UserID: 1, UserName: "Alex", Rating: rating, Comment: "ok",
		})
		require.NoError(t, err)
	}

	reviews, summary, err = svc.ListReviews(context.Background())
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, 2, summary.TotalReviews)
	assert.Equal(t, 4.0, summary.AverageRating)
}
