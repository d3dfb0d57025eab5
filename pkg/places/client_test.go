package places

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbySearch(t *testing.T) {
	t.Run("returns candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/nearbysearch/json", r.URL.Path)
			assert.Equal(t, "restaurant", r.URL.Query().Get("type"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			fmt.Fprint(w, `{
				"status": "OK",
				"results": [
					{"place_id": "p1", "name": "Burger Haus", "rating": 4.5, "user_ratings_total": 120},
					{"place_id": "p2", "name": "Trattoria Roma", "rating": 4.2, "user_ratings_total": 88}
				]
			}`)
		}))
		defer server.Close()

		c := NewClient("test-key", WithBaseURL(server.URL))
		candidates, err := c.NearbySearch(context.Background(), 52.52, 13.405, 4000, "")

		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, "p1", candidates[0].PlaceID)
		assert.Equal(t, 4.5, candidates[0].Rating)
	})

	t.Run("zero results is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "ZERO_RESULTS", "results": []}`)
		}))
		defer server.Close()

		c := NewClient("test-key", WithBaseURL(server.URL))
		candidates, err := c.NearbySearch(context.Background(), 0, 0, 1000, "")

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("non-ok status surfaces as StatusError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`)
		}))
		defer server.Close()

		c := NewClient("bad-key", WithBaseURL(server.URL))
		_, err := c.NearbySearch(context.Background(), 52.52, 13.405, 4000, "")

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, "REQUEST_DENIED", statusErr.Status)
	})
}

func TestPlaceDetails(t *testing.T) {
	t.Run("returns details with fields param", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/details/json", r.URL.Path)
			assert.Equal(t, "p1", r.URL.Query().Get("place_id"))
			assert.Equal(t, "name,price_level", r.URL.Query().Get("fields"))

			fmt.Fprint(w, `{
				"status": "OK",
				"result": {"place_id": "p1", "name": "Burger Haus", "price_level": 2}
			}`)
		}))
		defer server.Close()

		c := NewClient("test-key", WithBaseURL(server.URL))
		details, err := c.PlaceDetails(context.Background(), "p1", []string{"name", "price_level"})

		require.NoError(t, err)
		assert.Equal(t, "Burger Haus", details.Name)
		require.NotNil(t, details.PriceLevel)
		assert.Equal(t, 2, *details.PriceLevel)
	})

	t.Run("missing result is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "NOT_FOUND"}`)
		}))
		defer server.Close()

		c := NewClient("test-key", WithBaseURL(server.URL))
		_, err := c.PlaceDetails(context.Background(), "gone", nil)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, "NOT_FOUND", statusErr.Status)
	})

	t.Run("http error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := NewClient("test-key", WithBaseURL(server.URL))
		_, err := c.PlaceDetails(context.Background(), "p1", nil)
		assert.Error(t, err)
	})
}

func TestPhotoURL(t *testing.T) {
	c := NewClient("test-key", WithBaseURL("https://example.test/place"))
	u := c.PhotoURL("ref-123", 1600)

	assert.Contains(t, u, "https://example.test/place/photo?")
	assert.Contains(t, u, "photo_reference=ref-123")
	assert.Contains(t, u, "maxwidth=1600")
}
