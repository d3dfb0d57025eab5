package review

import (
	"context"

	"dinemap/entities"

	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		CreateReview(ctx context.Context, review *entities.Review) error
		GetReviewByUser(ctx context.Context, restaurantID, userID string) (*entities.Review, error)
		GetReviews(ctx context.Context, restaurantID string, page, limit int) ([]*entities.Review, int64, error)
		GetRatingStats(ctx context.Context, restaurantID string) (float64, int64, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetReviewByUser(ctx context.Context, restaurantID, userID string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetReviews(ctx context.Context, restaurantID string, page, limit int) ([]*entities.Review, int64, error) {
	var reviews []*entities.Review
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Review{}).
		Where("restaurant_id = ?", restaurantID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("User").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, count, nil
}

func (r *reviewRepository) GetRatingStats(ctx context.Context, restaurantID string) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}

	if err := r.db.WithContext(ctx).Model(&entities.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("restaurant_id = ?", restaurantID).
		Scan(&result).Error; err != nil {
		return 0, 0, err
	}

	return result.Avg, result.Count, nil
}
