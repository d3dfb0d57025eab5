package claim

import (
	"context"
	"time"

	"dinemap/entities"

	"gorm.io/gorm"
)

type (
	ClaimRepository interface {
		CreateClaim(ctx context.Context, claim *entities.RestaurantClaim) error
		GetClaimByID(ctx context.Context, id string) (*entities.RestaurantClaim, error)
		GetPendingClaim(ctx context.Context, restaurantID string) (*entities.RestaurantClaim, error)
		GetClaims(ctx context.Context, status string, page, limit int) ([]*entities.RestaurantClaim, int64, error)
		UpdateClaimStatus(ctx context.Context, id string, status string, decidedAt *time.Time) error
	}

	claimRepository struct {
		db *gorm.DB
	}
)

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) CreateClaim(ctx context.Context, claim *entities.RestaurantClaim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *claimRepository) GetClaimByID(ctx context.Context, id string) (*entities.RestaurantClaim, error) {
	var claim entities.RestaurantClaim
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Preload("User").
		Where("id = ?", id).
		First(&claim).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) GetPendingClaim(ctx context.Context, restaurantID string) (*entities.RestaurantClaim, error) {
	var claim entities.RestaurantClaim
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND status = ?", restaurantID, "Pending").
		First(&claim).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) GetClaims(ctx context.Context, status string, page, limit int) ([]*entities.RestaurantClaim, int64, error) {
	var claims []*entities.RestaurantClaim
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.RestaurantClaim{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Restaurant").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&claims).Error; err != nil {
		return nil, 0, err
	}

	return claims, count, nil
}

func (r *claimRepository) UpdateClaimStatus(ctx context.Context, id string, status string, decidedAt *time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.RestaurantClaim{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "decided_at": decidedAt}).Error
}
