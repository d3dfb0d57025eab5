package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRestaurants     = "restaurants retrieved successfully"
	MessageSuccessGetRestaurant      = "restaurant retrieved successfully"
	MessageSuccessAddFavorite        = "restaurant added to favorites"
	MessageSuccessRemoveFavorite     = "restaurant removed from favorites"
	MessageSuccessGetFavorites       = "favorites retrieved successfully"

	MessageFailedGetRestaurants  = "failed to retrieve restaurants"
	MessageFailedGetRestaurant   = "failed to retrieve restaurant"
	MessageFailedAddFavorite     = "failed to add favorite"
	MessageFailedRemoveFavorite  = "failed to remove favorite"
	MessageFailedGetFavorites    = "failed to retrieve favorites"

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrAlreadyFavorited   = errors.New("restaurant already in favorites")
	ErrFavoriteNotFound   = errors.New("favorite not found")
)

type (
	// DayHours holds opening and closing time for a single weekday in HH:MM.
	// A weekday absent from OpeningHours means the hours are not stated,
	// not that the restaurant is closed.
	DayHours struct {
		Open  string `json:"open"`
		Close string `json:"close"`
	}

	OpeningHours map[string]DayHours

	RestaurantSummary struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Slug        string   `json:"slug"`
		Address     string   `json:"address"`
		CitySlug    string   `json:"city_slug,omitempty"`
		PriceRange  string   `json:"price_range,omitempty"`
		Rating      float64  `json:"rating"`
		RatingCount int      `json:"rating_count"`
		ImageURL    string   `json:"image_url,omitempty"`
		IsVerified  bool     `json:"is_verified"`
		Cuisines    []string `json:"cuisines,omitempty"`
	}

	RestaurantDetail struct {
		ID              string       `json:"id"`
		Name            string       `json:"name"`
		Slug            string       `json:"slug"`
		Address         string       `json:"address"`
		PostalCode      string       `json:"postal_code,omitempty"`
		City            *CityResponse `json:"city,omitempty"`
		Latitude        float64      `json:"latitude"`
		Longitude       float64      `json:"longitude"`
		Phone           string       `json:"phone,omitempty"`
		Website         string       `json:"website,omitempty"`
		PriceRange      string       `json:"price_range,omitempty"`
		Rating          float64      `json:"rating"`
		RatingCount     int          `json:"rating_count"`
		ImageURL        string       `json:"image_url,omitempty"`
		IsVerified      bool         `json:"is_verified"`
		IsClaimed       bool         `json:"is_claimed"`
		OpeningHours    OpeningHours `json:"opening_hours,omitempty"`
		Photos          []string     `json:"photos,omitempty"`
		Cuisines        []string     `json:"cuisines,omitempty"`
		MetaTitle       string       `json:"meta_title,omitempty"`
		MetaDescription string       `json:"meta_description,omitempty"`
		CreatedAt       time.Time    `json:"created_at"`
	}

	AddFavoriteRequest struct {
		RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
	}

	FavoriteResponse struct {
		RestaurantID string    `json:"restaurant_id"`
		Name         string    `json:"name"`
		Slug         string    `json:"slug"`
		ImageURL     string    `json:"image_url,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
