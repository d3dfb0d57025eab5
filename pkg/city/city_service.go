package city

import (
	"context"
	"errors"

	"dinemap/domain"
	"dinemap/entities"

	"gorm.io/gorm"
)

type (
	CityService interface {
		GetCities(ctx context.Context, page, limit int) ([]*domain.CityResponse, int64, error)
		GetCityBySlug(ctx context.Context, slug string) (*domain.CityResponse, error)
	}

	cityService struct {
		cityRepository CityRepository
	}
)

func NewCityService(cityRepository CityRepository) CityService {
	return &cityService{cityRepository: cityRepository}
}

func (s *cityService) GetCities(ctx context.Context, page, limit int) ([]*domain.CityResponse, int64, error) {
	cities, count, err := s.cityRepository.GetCities(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.CityResponse, 0, len(cities))
	for _, city := range cities {
		result = append(result, toCityResponse(city, 0))
	}

	return result, count, nil
}

func (s *cityService) GetCityBySlug(ctx context.Context, slug string) (*domain.CityResponse, error) {
	city, err := s.cityRepository.GetCityBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCityNotFound
		}
		return nil, err
	}

	restaurantCount, err := s.cityRepository.CountRestaurants(ctx, city.ID.String())
	if err != nil {
		return nil, err
	}

	return toCityResponse(city, restaurantCount), nil
}

func toCityResponse(city *entities.City, restaurantCount int64) *domain.CityResponse {
	return &domain.CityResponse{
		ID:              city.ID.String(),
		Name:            city.Name,
		Slug:            city.Slug,
		Region:          city.Region,
		Latitude:        city.Latitude,
		Longitude:       city.Longitude,
		Description:     city.Description,
		MetaTitle:       city.MetaTitle,
		MetaDescription: city.MetaDescription,
		RestaurantCount: restaurantCount,
	}
}
