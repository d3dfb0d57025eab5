package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateReview = "review created successfully"
	MessageSuccessGetReviews   = "reviews retrieved successfully"

	MessageFailedCreateReview = "failed to create review"
	MessageFailedGetReviews   = "failed to retrieve reviews"

	ErrReviewNotFound      = errors.New("review not found")
	ErrDuplicateReview     = errors.New("user already reviewed this restaurant")
	ErrInvalidReviewRating = errors.New("rating must be between 1 and 5")
)

type (
	CreateReviewRequest struct {
		RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
		Rating       int    `json:"rating" validate:"required,min=1,max=5"`
		Comment      string `json:"comment" validate:"omitempty,max=2000"`
	}

	ReviewResponse struct {
		ID           string    `json:"id"`
		RestaurantID string    `json:"restaurant_id"`
		UserID       string    `json:"user_id"`
		UserName     string    `json:"user_name,omitempty"`
		Rating       int       `json:"rating"`
		Comment      string    `json:"comment,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
