package domain

import (
	"errors"
)

var (
	MessageSuccessSeedCities    = "city batch processed"
	MessageSuccessImportRadius  = "radius import processed"
	MessageSuccessRefreshPhotos = "photo refresh processed"

	MessageFailedSeedCities    = "failed to process city batch"
	MessageFailedImportRadius  = "failed to process radius import"
	MessageFailedRefreshPhotos = "failed to process photo refresh"

	ErrMissingPlacesAPIKey = errors.New("places API key not configured")
)

type (
	SeedCitiesRequest struct {
		StartIndex int `json:"start_index" validate:"min=0"`
		BatchSize  int `json:"batch_size" validate:"omitempty,min=1,max=10"`
	}

	SeedCityResult struct {
		City     string `json:"city"`
		Imported int    `json:"imported"`
		Error    string `json:"error,omitempty"`
	}

	SeedCitiesResponse struct {
		Results     []SeedCityResult `json:"results"`
		NextIndex   *int             `json:"next_index"`
		HasMore     bool             `json:"has_more"`
		Processed   int              `json:"processed"`
		TotalCities int              `json:"total_cities"`
	}

	ImportRadiusRequest struct {
		Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
		Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
		Radius    int     `json:"radius" validate:"required,min=100,max=50000"`
	}

	ImportRadiusDetails struct {
		Imported      []string `json:"imported"`
		Skipped       []string `json:"skipped"`
		Errors        []string `json:"errors"`
		CitiesCreated []string `json:"cities_created"`
	}

	ImportRadiusResponse struct {
		Imported      int                 `json:"imported"`
		Skipped       int                 `json:"skipped"`
		Errors        int                 `json:"errors"`
		CitiesCreated int                 `json:"cities_created"`
		Details       ImportRadiusDetails `json:"details"`
	}

	RefreshPhotosRequest struct {
		RestaurantID string `json:"restaurant_id" validate:"omitempty,uuid"`
		BatchSize    int    `json:"batch_size" validate:"omitempty,min=1,max=50"`
		Offset       int    `json:"offset" validate:"min=0"`
	}

	RefreshPhotosResponse struct {
		Processed        int      `json:"processed"`
		PhotosDownloaded int      `json:"photos_downloaded"`
		Errors           []string `json:"errors"`
		HasMore          bool     `json:"has_more"`
		NextOffset       *int     `json:"next_offset"`
		TotalRestaurants int64    `json:"total_restaurants"`
	}
)
