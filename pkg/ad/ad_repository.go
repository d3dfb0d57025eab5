package ad

import (
	"context"
	"time"

	"dinemap/entities"

	"gorm.io/gorm"
)

type (
	AdRepository interface {
		CreateAdPlacement(ctx context.Context, placement *entities.AdPlacement) error
		GetAdPlacementByOrderID(ctx context.Context, orderID string) (*entities.AdPlacement, error)
		GetActiveAds(ctx context.Context, cityID, slot string) ([]*entities.AdPlacement, error)
		CountActiveInSlot(ctx context.Context, cityID, slot string, startsAt, endsAt time.Time) (int64, error)
		UpdateAdStatus(ctx context.Context, orderID, status string, paidAt *time.Time) error
	}

	adRepository struct {
		db *gorm.DB
	}
)

func NewAdRepository(db *gorm.DB) AdRepository {
	return &adRepository{db: db}
}

func (r *adRepository) CreateAdPlacement(ctx context.Context, placement *entities.AdPlacement) error {
	return r.db.WithContext(ctx).Create(placement).Error
}

func (r *adRepository) GetAdPlacementByOrderID(ctx context.Context, orderID string) (*entities.AdPlacement, error) {
	var placement entities.AdPlacement
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("order_id = ?", orderID).
		First(&placement).Error; err != nil {
		return nil, err
	}
	return &placement, nil
}

func (r *adRepository) GetActiveAds(ctx context.Context, cityID, slot string) ([]*entities.AdPlacement, error) {
	var placements []*entities.AdPlacement
	now := time.Now()

	query := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("status = ? AND starts_at <= ? AND ends_at >= ?", "Active", now, now)
	if cityID != "" {
		query = query.Where("city_id = ?", cityID)
	}
	if slot != "" {
		query = query.Where("slot = ?", slot)
	}

	if err := query.Order("starts_at asc").Find(&placements).Error; err != nil {
		return nil, err
	}
	return placements, nil
}

func (r *adRepository) CountActiveInSlot(ctx context.Context, cityID, slot string, startsAt, endsAt time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.AdPlacement{}).
		Where("city_id = ? AND slot = ? AND status IN ?", cityID, slot, []string{"Pending", "Active"}).
		Where("starts_at < ? AND ends_at > ?", endsAt, startsAt).
		Count(&count).Error
	return count, err
}

func (r *adRepository) UpdateAdStatus(ctx context.Context, orderID, status string, paidAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if paidAt != nil {
		updates["paid_at"] = paidAt
	}
	return r.db.WithContext(ctx).Model(&entities.AdPlacement{}).
		Where("order_id = ?", orderID).
		Updates(updates).Error
}
