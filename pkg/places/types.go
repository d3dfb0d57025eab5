package places

import (
	"fmt"
)

type (
	LatLng struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}

	Geometry struct {
		Location LatLng `json:"location"`
	}

	Photo struct {
		PhotoReference string `json:"photo_reference"`
		Width          int    `json:"width"`
		Height         int    `json:"height"`
	}

	AddressComponent struct {
		LongName  string   `json:"long_name"`
		ShortName string   `json:"short_name"`
		Types     []string `json:"types"`
	}

	OpeningHoursPayload struct {
		WeekdayText []string `json:"weekday_text"`
	}

	// Candidate is a venue returned by a nearby search, carrying only the
	// fields needed to decide whether a full detail fetch is worthwhile.
	Candidate struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		Vicinity         string   `json:"vicinity"`
		Geometry         Geometry `json:"geometry"`
		Rating           float64  `json:"rating"`
		UserRatingsTotal int      `json:"user_ratings_total"`
		Types            []string `json:"types"`
	}

	Details struct {
		PlaceID           string               `json:"place_id"`
		Name              string               `json:"name"`
		FormattedAddress  string               `json:"formatted_address"`
		AddressComponents []AddressComponent   `json:"address_components"`
		Geometry          Geometry             `json:"geometry"`
		FormattedPhone    string               `json:"formatted_phone_number"`
		Website           string               `json:"website"`
		Rating            float64              `json:"rating"`
		UserRatingsTotal  int                  `json:"user_ratings_total"`
		PriceLevel        *int                 `json:"price_level"`
		Types             []string             `json:"types"`
		Photos            []Photo              `json:"photos"`
		OpeningHours      *OpeningHoursPayload `json:"opening_hours"`
	}

	nearbySearchResponse struct {
		Status       string      `json:"status"`
		ErrorMessage string      `json:"error_message"`
		Results      []Candidate `json:"results"`
	}

	detailsResponse struct {
		Status       string   `json:"status"`
		ErrorMessage string   `json:"error_message"`
		Result       *Details `json:"result"`
	}
)

// StatusError is returned when the Places API answers with a non-OK status
// field, which is distinct from the HTTP status of the response.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("places API status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("places API status %s", e.Status)
}
