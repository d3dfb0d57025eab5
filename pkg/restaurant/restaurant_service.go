package restaurant

import (
	"context"
	"encoding/json"
	"errors"

	"dinemap/domain"
	"dinemap/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RestaurantService interface {
		GetRestaurants(ctx context.Context, citySlug, cuisineSlug string, page, limit int) ([]*domain.RestaurantSummary, int64, error)
		GetRestaurantBySlug(ctx context.Context, slug string) (*domain.RestaurantDetail, error)
		AddFavorite(ctx context.Context, req domain.AddFavoriteRequest, userID string) error
		RemoveFavorite(ctx context.Context, restaurantID string, userID string) error
		GetFavorites(ctx context.Context, userID string) ([]*domain.FavoriteResponse, error)
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
	}
)

func NewRestaurantService(restaurantRepository RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepository: restaurantRepository}
}

func (s *restaurantService) GetRestaurants(ctx context.Context, citySlug, cuisineSlug string, page, limit int) ([]*domain.RestaurantSummary, int64, error) {
	restaurants, count, err := s.restaurantRepository.GetRestaurants(ctx, citySlug, cuisineSlug, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.RestaurantSummary, 0, len(restaurants))
	for _, restaurant := range restaurants {
		cuisines, err := s.restaurantRepository.GetCuisineSlugs(ctx, restaurant.ID.String())
		if err != nil {
			cuisines = nil
		}

		summary := &domain.RestaurantSummary{
			ID:          restaurant.ID.String(),
			Name:        restaurant.Name,
			Slug:        restaurant.Slug,
			Address:     restaurant.Address,
			PriceRange:  restaurant.PriceRange,
			Rating:      restaurant.Rating,
			RatingCount: restaurant.RatingCount,
			ImageURL:    restaurant.ImageURL,
			IsVerified:  restaurant.IsVerified,
			Cuisines:    cuisines,
		}
		if restaurant.City != nil {
			summary.CitySlug = restaurant.City.Slug
		}
		result = append(result, summary)
	}

	return result, count, nil
}

func (s *restaurantService) GetRestaurantBySlug(ctx context.Context, slug string) (*domain.RestaurantDetail, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}

	// Page-view counting is best effort; a failed increment never blocks the read.
	_ = s.restaurantRepository.IncrementPageViews(ctx, restaurant.ID.String())

	cuisines, err := s.restaurantRepository.GetCuisineSlugs(ctx, restaurant.ID.String())
	if err != nil {
		cuisines = nil
	}

	var openingHours domain.OpeningHours
	if restaurant.OpeningHours != "" {
		if err := json.Unmarshal([]byte(restaurant.OpeningHours), &openingHours); err != nil {
			openingHours = nil
		}
	}

	photos := make([]string, 0, len(restaurant.Photos))
	for _, photo := range restaurant.Photos {
		if photo.IsApproved {
			photos = append(photos, photo.URL)
		}
	}

	detail := &domain.RestaurantDetail{
		ID:              restaurant.ID.String(),
		Name:            restaurant.Name,
		Slug:            restaurant.Slug,
		Address:         restaurant.Address,
		PostalCode:      restaurant.PostalCode,
		Latitude:        restaurant.Latitude,
		Longitude:       restaurant.Longitude,
		Phone:           restaurant.Phone,
		Website:         restaurant.Website,
		PriceRange:      restaurant.PriceRange,
		Rating:          restaurant.Rating,
		RatingCount:     restaurant.RatingCount,
		ImageURL:        restaurant.ImageURL,
		IsVerified:      restaurant.IsVerified,
		IsClaimed:       restaurant.IsClaimed,
		OpeningHours:    openingHours,
		Photos:          photos,
		Cuisines:        cuisines,
		MetaTitle:       restaurant.MetaTitle,
		MetaDescription: restaurant.MetaDescription,
		CreatedAt:       restaurant.CreatedAt,
	}

	if restaurant.City != nil {
		detail.City = &domain.CityResponse{
			ID:     restaurant.City.ID.String(),
			Name:   restaurant.City.Name,
			Slug:   restaurant.City.Slug,
			Region: restaurant.City.Region,
		}
	}

	return detail, nil
}

func (s *restaurantService) AddFavorite(ctx context.Context, req domain.AddFavoriteRequest, userID string) error {
	if _, err := s.restaurantRepository.GetRestaurantByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRestaurantNotFound
		}
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	restaurantUUID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return domain.ErrParseUUID
	}

	favorite := &entities.Favorite{
		ID:           uuid.New(),
		UserID:       userUUID,
		RestaurantID: restaurantUUID,
	}

	if err := s.restaurantRepository.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyFavorited
		}
		return err
	}

	return nil
}

func (s *restaurantService) RemoveFavorite(ctx context.Context, restaurantID string, userID string) error {
	if err := s.restaurantRepository.DeleteFavorite(ctx, userID, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

func (s *restaurantService) GetFavorites(ctx context.Context, userID string) ([]*domain.FavoriteResponse, error) {
	favorites, err := s.restaurantRepository.GetFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		item := &domain.FavoriteResponse{
			RestaurantID: favorite.RestaurantID.String(),
			CreatedAt:    favorite.CreatedAt,
		}
		if favorite.Restaurant != nil {
			item.Name = favorite.Restaurant.Name
			item.Slug = favorite.Restaurant.Slug
			item.ImageURL = favorite.Restaurant.ImageURL
		}
		result = append(result, item)
	}

	return result, nil
}
