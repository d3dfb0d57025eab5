package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

type (
	Client interface {
		NearbySearch(ctx context.Context, lat, lng float64, radiusMeters int, keyword string) ([]Candidate, error)
		PlaceDetails(ctx context.Context, placeID string, fields []string) (*Details, error)
		PhotoURL(photoReference string, maxWidth int) string
	}

	client struct {
		httpClient *http.Client
		baseURL    string
		apiKey     string
	}
)

// Option configures a Client.
type Option func(*client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

func NewClient(apiKey string, opts ...Option) Client {
	c := &client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) NearbySearch(ctx context.Context, lat, lng float64, radiusMeters int, keyword string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", "restaurant")
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	params.Set("key", c.apiKey)

	var payload nearbySearchResponse
	if err := c.get(ctx, fmt.Sprintf("%s/nearbysearch/json?%s", c.baseURL, params.Encode()), &payload); err != nil {
		return nil, err
	}

	if payload.Status == "ZERO_RESULTS" {
		return []Candidate{}, nil
	}
	if payload.Status != "OK" {
		return nil, &StatusError{Status: payload.Status, Message: payload.ErrorMessage}
	}

	return payload.Results, nil
}

func (c *client) PlaceDetails(ctx context.Context, placeID string, fields []string) (*Details, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}
	params.Set("key", c.apiKey)

	var payload detailsResponse
	if err := c.get(ctx, fmt.Sprintf("%s/details/json?%s", c.baseURL, params.Encode()), &payload); err != nil {
		return nil, err
	}

	if payload.Status != "OK" || payload.Result == nil {
		return nil, &StatusError{Status: payload.Status, Message: payload.ErrorMessage}
	}

	return payload.Result, nil
}

func (c *client) PhotoURL(photoReference string, maxWidth int) string {
	params := url.Values{}
	params.Set("photo_reference", photoReference)
	params.Set("maxwidth", strconv.Itoa(maxWidth))
	params.Set("key", c.apiKey)
	return fmt.Sprintf("%s/photo?%s", c.baseURL, params.Encode())
}

func (c *client) get(ctx context.Context, requestURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places API error: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
