package city

import (
	"context"

	"dinemap/entities"

	"gorm.io/gorm"
)

type (
	CityRepository interface {
		CreateCity(ctx context.Context, city *entities.City) error
		GetCityByID(ctx context.Context, id string) (*entities.City, error)
		GetCityBySlug(ctx context.Context, slug string) (*entities.City, error)
		GetCities(ctx context.Context, page, limit int) ([]*entities.City, int64, error)
		CountRestaurants(ctx context.Context, cityID string) (int64, error)
	}

	cityRepository struct {
		db *gorm.DB
	}
)

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) CreateCity(ctx context.Context, city *entities.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *cityRepository) GetCityByID(ctx context.Context, id string) (*entities.City, error) {
	var city entities.City
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) GetCityBySlug(ctx context.Context, slug string) (*entities.City, error) {
	var city entities.City
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) GetCities(ctx context.Context, page, limit int) ([]*entities.City, int64, error) {
	var cities []*entities.City
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.City{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("name asc").Find(&cities).Error; err != nil {
		return nil, 0, err
	}

	return cities, count, nil
}

func (r *cityRepository) CountRestaurants(ctx context.Context, cityID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Where("city_id = ?", cityID).
		Count(&count).Error
	return count, err
}
