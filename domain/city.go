package domain

import (
	"errors"
)

var (
	MessageSuccessGetCities = "cities retrieved successfully"
	MessageSuccessGetCity   = "city retrieved successfully"

	MessageFailedGetCities = "failed to retrieve cities"
	MessageFailedGetCity   = "failed to retrieve city"

	ErrCityNotFound = errors.New("city not found")
)

type (
	CityResponse struct {
		ID              string  `json:"id"`
		Name            string  `json:"name"`
		Slug            string  `json:"slug"`
		Region          string  `json:"region,omitempty"`
		Latitude        float64 `json:"latitude"`
		Longitude       float64 `json:"longitude"`
		Description     string  `json:"description,omitempty"`
		MetaTitle       string  `json:"meta_title,omitempty"`
		MetaDescription string  `json:"meta_description,omitempty"`
		RestaurantCount int64   `json:"restaurant_count,omitempty"`
	}
)
