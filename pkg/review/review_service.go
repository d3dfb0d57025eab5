package review

import (
	"context"
	"errors"

	"dinemap/domain"
	"dinemap/entities"
	"dinemap/pkg/restaurant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		CreateReview(ctx context.Context, req domain.CreateReviewRequest, userID string) (domain.ReviewResponse, error)
		GetReviews(ctx context.Context, restaurantID string, page, limit int) ([]*domain.ReviewResponse, int64, error)
	}

	reviewService struct {
		reviewRepository     ReviewRepository
		restaurantRepository restaurant.RestaurantRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, restaurantRepository restaurant.RestaurantRepository) ReviewService {
	return &reviewService{
		reviewRepository:     reviewRepository,
		restaurantRepository: restaurantRepository,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req domain.CreateReviewRequest, userID string) (domain.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.ReviewResponse{}, domain.ErrInvalidReviewRating
	}

	if _, err := s.restaurantRepository.GetRestaurantByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.ReviewResponse{}, err
	}

	if _, err := s.reviewRepository.GetReviewByUser(ctx, req.RestaurantID, userID); err == nil {
		return domain.ReviewResponse{}, domain.ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ReviewResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}
	restaurantUUID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	review := &entities.Review{
		ID:           uuid.New(),
		RestaurantID: restaurantUUID,
		UserID:       userUUID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}

	// Recompute the aggregate; a stale value is corrected on the next review.
	if avg, count, err := s.reviewRepository.GetRatingStats(ctx, req.RestaurantID); err == nil {
		_ = s.restaurantRepository.UpdateRating(ctx, req.RestaurantID, avg, int(count))
	}

	return domain.ReviewResponse{
		ID:           review.ID.String(),
		RestaurantID: review.RestaurantID.String(),
		UserID:       review.UserID.String(),
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}, nil
}

func (s *reviewService) GetReviews(ctx context.Context, restaurantID string, page, limit int) ([]*domain.ReviewResponse, int64, error) {
	reviews, count, err := s.reviewRepository.GetReviews(ctx, restaurantID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		item := &domain.ReviewResponse{
			ID:           review.ID.String(),
			RestaurantID: review.RestaurantID.String(),
			UserID:       review.UserID.String(),
			Rating:       review.Rating,
			Comment:      review.Comment,
			CreatedAt:    review.CreatedAt,
		}
		if review.User != nil {
			item.UserName = review.User.Name
		}
		result = append(result, item)
	}

	return result, count, nil
}
