package restaurant

import (
	"context"

	"dinemap/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RestaurantRepository interface {
		CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error
		GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error)
		GetRestaurantBySlug(ctx context.Context, slug string) (*entities.Restaurant, error)
		GetRestaurantByPlaceID(ctx context.Context, placeID string) (*entities.Restaurant, error)
		SlugExists(ctx context.Context, slug string) (bool, error)
		GetRestaurants(ctx context.Context, citySlug, cuisineSlug string, page, limit int) ([]*entities.Restaurant, int64, error)
		GetRestaurantsWithPlaceID(ctx context.Context, offset, limit int) ([]*entities.Restaurant, int64, error)
		UpdateImageURL(ctx context.Context, id string, imageURL string) error
		UpdateRating(ctx context.Context, id string, rating float64, ratingCount int) error
		SetClaimed(ctx context.Context, id string, verified bool) error
		IncrementPageViews(ctx context.Context, id string) error

		// Photos
		CreatePhoto(ctx context.Context, photo *entities.RestaurantPhoto) error
		GetPhotos(ctx context.Context, restaurantID string) ([]*entities.RestaurantPhoto, error)
		DeletePhotos(ctx context.Context, restaurantID string) error

		// Cuisine links
		GetCuisineBySlug(ctx context.Context, slug string) (*entities.Cuisine, error)
		LinkCuisine(ctx context.Context, restaurantID, cuisineID string) error
		GetCuisineSlugs(ctx context.Context, restaurantID string) ([]string, error)

		// Favorites
		CreateFavorite(ctx context.Context, favorite *entities.Favorite) error
		DeleteFavorite(ctx context.Context, userID, restaurantID string) error
		GetFavorites(ctx context.Context, userID string) ([]*entities.Favorite, error)
	}

	restaurantRepository struct {
		db *gorm.DB
	}
)

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).
		Preload("City").
		Preload("Photos").
		Where("id = ?", id).
		First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetRestaurantBySlug(ctx context.Context, slug string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).
		Preload("City").
		Preload("Photos").
		Where("slug = ?", slug).
		First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetRestaurantByPlaceID(ctx context.Context, placeID string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).Where("google_place_id = ?", placeID).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *restaurantRepository) GetRestaurants(ctx context.Context, citySlug, cuisineSlug string, page, limit int) ([]*entities.Restaurant, int64, error) {
	var restaurants []*entities.Restaurant
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Restaurant{})

	if citySlug != "" {
		query = query.Joins("JOIN cities ON cities.id = restaurants.city_id").
			Where("cities.slug = ?", citySlug)
	}

	if cuisineSlug != "" {
		query = query.
			Joins("JOIN restaurant_cuisines ON restaurant_cuisines.restaurant_id = restaurants.id").
			Joins("JOIN cuisines ON cuisines.id = restaurant_cuisines.cuisine_id").
			Where("cuisines.slug = ?", cuisineSlug)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("City").
		Offset(offset).Limit(limit).
		Order("rating desc, rating_count desc").
		Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}

	return restaurants, count, nil
}

func (r *restaurantRepository) GetRestaurantsWithPlaceID(ctx context.Context, offset, limit int) ([]*entities.Restaurant, int64, error) {
	var restaurants []*entities.Restaurant
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Where("google_place_id IS NOT NULL")

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("City").Offset(offset).Limit(limit).Order("created_at asc").Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}

	return restaurants, count, nil
}

func (r *restaurantRepository) UpdateImageURL(ctx context.Context, id string, imageURL string) error {
	return r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"image_url": imageURL}).Error
}

func (r *restaurantRepository) UpdateRating(ctx context.Context, id string, rating float64, ratingCount int) error {
	return r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "rating_count": ratingCount}).Error
}

func (r *restaurantRepository) SetClaimed(ctx context.Context, id string, verified bool) error {
	return r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_claimed": true, "is_verified": verified}).Error
}

func (r *restaurantRepository) IncrementPageViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Where("id = ?", id).
		UpdateColumn("page_views", gorm.Expr("page_views + 1")).Error
}

func (r *restaurantRepository) CreatePhoto(ctx context.Context, photo *entities.RestaurantPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *restaurantRepository) GetPhotos(ctx context.Context, restaurantID string) ([]*entities.RestaurantPhoto, error) {
	var photos []*entities.RestaurantPhoto
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at asc").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *restaurantRepository) DeletePhotos(ctx context.Context, restaurantID string) error {
	return r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Delete(&entities.RestaurantPhoto{}).Error
}

func (r *restaurantRepository) GetCuisineBySlug(ctx context.Context, slug string) (*entities.Cuisine, error) {
	var cuisine entities.Cuisine
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&cuisine).Error; err != nil {
		return nil, err
	}
	return &cuisine, nil
}

func (r *restaurantRepository) LinkCuisine(ctx context.Context, restaurantID, cuisineID string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.RestaurantCuisine{}).
		Where("restaurant_id = ? AND cuisine_id = ?", restaurantID, cuisineID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return err
	}
	cuisineUUID, err := uuid.Parse(cuisineID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&entities.RestaurantCuisine{
		ID:           uuid.New(),
		RestaurantID: restaurantUUID,
		CuisineID:    cuisineUUID,
	}).Error
}

func (r *restaurantRepository) GetCuisineSlugs(ctx context.Context, restaurantID string) ([]string, error) {
	var slugs []string
	if err := r.db.WithContext(ctx).Model(&entities.RestaurantCuisine{}).
		Joins("JOIN cuisines ON cuisines.id = restaurant_cuisines.cuisine_id").
		Where("restaurant_cuisines.restaurant_id = ?", restaurantID).
		Pluck("cuisines.slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}

func (r *restaurantRepository) CreateFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *restaurantRepository) DeleteFavorite(ctx context.Context, userID, restaurantID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&entities.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *restaurantRepository) GetFavorites(ctx context.Context, userID string) ([]*entities.Favorite, error) {
	var favorites []*entities.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}
