package domain

import (
	"math"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer review. Reviews are append-only: there is no
// update or delete path.
type Review struct {
	ID        int
	UserID    int
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// NewReview validates the submitted rating and comment.
func NewReview(userID int, userName string, rating int, comment string) (*Review, error) {
	var errs ValidationErrors
	if rating < MinRating || rating > MaxRating {
		errs = append(errs, ValidationError{Field: "rating", Message: "rating must be between 1 and 5"})
	}
	if comment == "" {
		errs = append(errs, ValidationError{Field: "comment", Message: "comment is required"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &Review{
		UserID:    userID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}, nil
}

// ReviewSummary is derived from the full review collection on each read.
type ReviewSummary struct {
	TotalReviews  int
	AverageRating float64
}

// Summarize computes the review count and the mean rating, rounded to one
// decimal place. An empty collection yields a zero mean.
func Summarize(reviews []Review) ReviewSummary {
	if len(reviews) == 0 {
		return ReviewSummary{}
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))

	return ReviewSummary{
		TotalReviews:  len(reviews),
		AverageRating: math.Round(mean*10) / 10,
	}
}
