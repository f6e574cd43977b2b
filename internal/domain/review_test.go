package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	review, err := NewReview(7, "Alex", 5, "Great food!")
	require.NoError(t, err)

	assert.Equal(t, 7, review.UserID)
	assert.Equal(t, 5, review.Rating)
}

func TestNewReview_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		comment string
	}{
		{"rating too low", 0, "ok"},
		{"rating too high", 6, "ok"},
		{"missing comment", 4, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review, err := NewReview(1, "Alex", tt.rating, tt.comment)
			assert.Nil(t, review)
			assert.Error(t, err)
		})
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalReviews)
	assert.Equal(t, 0.0, summary.AverageRating)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		count   int
		mean    float64
	}{
		{"two reviews", []int{5, 3}, 2, 4.0},
		{"rounds to one decimal", []int{5, 4, 4}, 3, 4.3},
		{"single review", []int{2}, 1, 2.0},
		{"rounds half up", []int{4, 3}, 2, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]Review, len(tt.ratings))
			for i, r := range tt.ratings {
				reviews[i] = Review{Rating: r}
			}

			summary := Summarize(reviews)

			assert.Equal(t, tt.count, summary.TotalReviews)
			assert.Equal(t, tt.mean, summary.AverageRating)
		})
	}
}
