package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"dinemap/domain"
	"dinemap/entities"
	"dinemap/internal/utils"
	"dinemap/internal/utils/storage"
	"dinemap/pkg/city"
	"dinemap/pkg/places"
	"dinemap/pkg/restaurant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultSeedBatchSize  = 2
	defaultPhotoBatchSize = 10
	maxVenuesPerCity      = 15
	maxPhotosPerVenue     = 6
	nearbyRadiusMeters    = 4000
	photoMaxWidth         = 1600
)

// Cooperative delay between detail fetches to stay under the third-party
// quota. Batches are small and operator-triggered, so a fixed sleep is enough.
var detailFetchDelay = 150 * time.Millisecond

var detailFields = []string{
	"place_id", "name", "formatted_address", "address_components", "geometry",
	"formatted_phone_number", "website", "rating", "user_ratings_total",
	"price_level", "types", "photos", "opening_hours",
}

type (
	ImporterService interface {
		SeedCities(ctx context.Context, req domain.SeedCitiesRequest) (*domain.SeedCitiesResponse, error)
		ImportRadius(ctx context.Context, req domain.ImportRadiusRequest) (*domain.ImportRadiusResponse, error)
		RefreshPhotos(ctx context.Context, req domain.RefreshPhotosRequest) (*domain.RefreshPhotosResponse, error)
	}

	importerService struct {
		restaurantRepository restaurant.RestaurantRepository
		cityRepository       city.CityRepository
		placesClient         places.Client
		s3                   storage.AwsS3
		httpClient           *http.Client
	}
)

// NewImporterService wires the import pipeline. placesClient may be nil when
// no API key is configured; every batch operation then fails fast before any
// work is done.
func NewImporterService(
	restaurantRepository restaurant.RestaurantRepository,
	cityRepository city.CityRepository,
	placesClient places.Client,
	s3 storage.AwsS3,
) ImporterService {
	return &importerService{
		restaurantRepository: restaurantRepository,
		cityRepository:       cityRepository,
		placesClient:         placesClient,
		s3:                   s3,
		httpClient:           &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *importerService) SeedCities(ctx context.Context, req domain.SeedCitiesRequest) (*domain.SeedCitiesResponse, error) {
	if s.placesClient == nil {
		return nil, domain.ErrMissingPlacesAPIKey
	}

	batchSize := req.BatchSize
	if batchSize <= 0 {
		batchSize = defaultSeedBatchSize
	}

	start := req.StartIndex
	if start >= len(seedCities) {
		return &domain.SeedCitiesResponse{
			Results:     []domain.SeedCityResult{},
			TotalCities: len(seedCities),
		}, nil
	}

	end := start + batchSize
	if end > len(seedCities) {
		end = len(seedCities)
	}

	resolver := city.NewResolver(s.cityRepository)
	results := make([]domain.SeedCityResult, 0, end-start)

	for _, seed := range seedCities[start:end] {
		result := domain.SeedCityResult{City: seed.Name}

		cityRow, _, err := resolver.EnsureCity(ctx, seed.Name, seed.Region, seed.Latitude, seed.Longitude)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		candidates, err := s.placesClient.NearbySearch(ctx, seed.Latitude, seed.Longitude, nearbyRadiusMeters, "")
		if err != nil {
			result.Error = fmt.Sprintf("nearby search: %v", err)
			results = append(results, result)
			continue
		}

		for i, candidate := range topRated(candidates, maxVenuesPerCity) {
			if i > 0 {
				time.Sleep(detailFetchDelay)
			}
			outcome, _, _ := s.importPlace(ctx, resolver, candidate, cityRow)
			if outcome == outcomeImported {
				result.Imported++
			}
		}

		results = append(results, result)
	}

	resp := &domain.SeedCitiesResponse{
		Results:     results,
		Processed:   len(results),
		TotalCities: len(seedCities),
		HasMore:     end < len(seedCities),
	}
	if resp.HasMore {
		next := end
		resp.NextIndex = &next
	}

	return resp, nil
}

func (s *importerService) ImportRadius(ctx context.Context, req domain.ImportRadiusRequest) (*domain.ImportRadiusResponse, error) {
	if s.placesClient == nil {
		return nil, domain.ErrMissingPlacesAPIKey
	}

	candidates, err := s.placesClient.NearbySearch(ctx, req.Latitude, req.Longitude, req.Radius, "")
	if err != nil {
		return nil, err
	}

	resolver := city.NewResolver(s.cityRepository)
	resp := &domain.ImportRadiusResponse{
		Details: domain.ImportRadiusDetails{
			Imported:      []string{},
			Skipped:       []string{},
			Errors:        []string{},
			CitiesCreated: []string{},
		},
	}

	for i, candidate := range candidates {
		if i > 0 {
			time.Sleep(detailFetchDelay)
		}

		outcome, reason, createdCities := s.importPlace(ctx, resolver, candidate, nil)
		resp.Details.CitiesCreated = append(resp.Details.CitiesCreated, createdCities...)

		switch outcome {
		case outcomeImported:
			resp.Imported++
			resp.Details.Imported = append(resp.Details.Imported, candidate.Name)
		case outcomeSkipped:
			resp.Skipped++
			resp.Details.Skipped = append(resp.Details.Skipped, candidate.Name)
		case outcomeFailed:
			resp.Errors++
			resp.Details.Errors = append(resp.Details.Errors, fmt.Sprintf("%s: %s", candidate.Name, reason))
		}
	}

	resp.CitiesCreated = len(resp.Details.CitiesCreated)
	return resp, nil
}

func (s *importerService) RefreshPhotos(ctx context.Context, req domain.RefreshPhotosRequest) (*domain.RefreshPhotosResponse, error) {
	if s.placesClient == nil {
		return nil, domain.ErrMissingPlacesAPIKey
	}

	batchSize := req.BatchSize
	if batchSize <= 0 {
		batchSize = defaultPhotoBatchSize
	}

	resp := &domain.RefreshPhotosResponse{Errors: []string{}}

	var targets []*entities.Restaurant
	if req.RestaurantID != "" {
		target, err := s.restaurantRepository.GetRestaurantByID(ctx, req.RestaurantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrRestaurantNotFound
			}
			return nil, err
		}
		targets = []*entities.Restaurant{target}
		resp.TotalRestaurants = 1
	} else {
		var err error
		var total int64
		targets, total, err = s.restaurantRepository.GetRestaurantsWithPlaceID(ctx, req.Offset, batchSize)
		if err != nil {
			return nil, err
		}
		resp.TotalRestaurants = total
	}

	for i, target := range targets {
		if target.GooglePlaceID == nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: no place id", target.Slug))
			continue
		}

		if i > 0 {
			time.Sleep(detailFetchDelay)
		}

		details, err := s.placesClient.PlaceDetails(ctx, *target.GooglePlaceID, []string{"photos"})
		if err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", target.Slug, err))
			continue
		}

		resp.Processed++

		if len(details.Photos) == 0 {
			continue
		}

		previous, err := s.restaurantRepository.GetPhotos(ctx, target.ID.String())
		if err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: list photos: %v", target.Slug, err))
			continue
		}

		// Full replace: stored photos are deleted, not merged with upstream.
		if err := s.restaurantRepository.DeletePhotos(ctx, target.ID.String()); err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: delete photos: %v", target.Slug, err))
			continue
		}

		citySlug := ""
		if target.City != nil {
			citySlug = target.City.Slug
		}

		photos := details.Photos
		if len(photos) > maxPhotosPerVenue {
			photos = photos[:maxPhotosPerVenue]
		}

		var primaryURL string
		overwritten := make(map[string]bool, len(photos))
		for index, photo := range photos {
			objectKey := photoObjectKey(citySlug, target.Slug, index)
			sourceURL := s.placesClient.PhotoURL(photo.PhotoReference, photoMaxWidth)
			storedURL := s.rehostPhoto(ctx, sourceURL, objectKey)
			if storedURL == "" {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: photo %d download failed", target.Slug, index))
				continue
			}
			overwritten[objectKey] = true

			if err := s.restaurantRepository.CreatePhoto(ctx, &entities.RestaurantPhoto{
				ID:           uuid.New(),
				RestaurantID: target.ID,
				URL:          storedURL,
				IsPrimary:    index == 0,
				IsApproved:   true,
			}); err != nil {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: photo %d persist: %v", target.Slug, index, err))
				continue
			}

			resp.PhotosDownloaded++
			if index == 0 {
				primaryURL = storedURL
			}
		}

		if primaryURL != "" {
			if err := s.restaurantRepository.UpdateImageURL(ctx, target.ID.String(), primaryURL); err != nil {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: primary image update: %v", target.Slug, err))
			}
		}

		// A shrinking photo set leaves higher-index objects behind in the
		// bucket; purge whatever the fresh pass did not overwrite.
		for _, old := range previous {
			objectKey := s.s3.GetObjectKeyFromLink(old.URL)
			if objectKey == "" || overwritten[objectKey] {
				continue
			}
			if err := s.s3.DeleteFile(objectKey); err != nil {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: purge %s: %v", target.Slug, objectKey, err))
			}
		}
	}

	if req.RestaurantID == "" {
		resp.HasMore = int64(req.Offset+batchSize) < resp.TotalRestaurants
		if resp.HasMore {
			next := req.Offset + batchSize
			resp.NextOffset = &next
		}
	}

	return resp, nil
}

type placeOutcome int

const (
	outcomeImported placeOutcome = iota
	outcomeSkipped
	outcomeFailed
)

// importPlace runs the shared fetch → normalize → dedupe → persist sequence
// for one candidate. knownCity pins the area when the orchestrator already
// resolved it (city seeder); otherwise the area is derived from the detail
// address components. Returns the outcome, a failure reason, and the names of
// any cities created along the way.
func (s *importerService) importPlace(ctx context.Context, resolver *city.Resolver, candidate places.Candidate, knownCity *entities.City) (placeOutcome, string, []string) {
	if _, err := s.restaurantRepository.GetRestaurantByPlaceID(ctx, candidate.PlaceID); err == nil {
		return outcomeSkipped, "already imported", nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return outcomeFailed, fmt.Sprintf("lookup: %v", err), nil
	}

	details, err := s.placesClient.PlaceDetails(ctx, candidate.PlaceID, detailFields)
	if err != nil {
		return outcomeFailed, fmt.Sprintf("detail fetch: %v", err), nil
	}

	var createdCities []string
	cityRow := knownCity
	if cityRow == nil {
		info := places.ExtractCityInfo(details.AddressComponents, details.Geometry.Location.Lat, details.Geometry.Location.Lng)
		if info == nil {
			return outcomeFailed, "no locality in address components", nil
		}

		resolved, created, err := resolver.EnsureCity(ctx, info.Name, info.Region, info.Latitude, info.Longitude)
		if err != nil {
			return outcomeFailed, fmt.Sprintf("city resolution: %v", err), nil
		}
		if created {
			createdCities = append(createdCities, resolved.Name)
		}
		cityRow = resolved
	}

	slug := utils.UniqueSlug(utils.Slugify(details.Name), func(candidateSlug string) bool {
		exists, err := s.restaurantRepository.SlugExists(ctx, candidateSlug)
		return err == nil && exists
	})

	var imageURL string
	if len(details.Photos) > 0 {
		sourceURL := s.placesClient.PhotoURL(details.Photos[0].PhotoReference, photoMaxWidth)
		imageURL = s.rehostPhoto(ctx, sourceURL, photoObjectKey(cityRow.Slug, slug, 0))
	}

	var hoursJSON string
	if details.OpeningHours != nil {
		if hours := places.ParseOpeningHours(details.OpeningHours.WeekdayText); len(hours) > 0 {
			if raw, err := json.Marshal(hours); err == nil {
				hoursJSON = string(raw)
			}
		}
	}

	placeID := details.PlaceID
	if placeID == "" {
		placeID = candidate.PlaceID
	}

	row := &entities.Restaurant{
		ID:              uuid.New(),
		GooglePlaceID:   &placeID,
		Name:            details.Name,
		Slug:            slug,
		Address:         details.FormattedAddress,
		PostalCode:      places.ExtractPostalCode(details.AddressComponents),
		CityID:          cityRow.ID,
		Latitude:        details.Geometry.Location.Lat,
		Longitude:       details.Geometry.Location.Lng,
		Phone:           details.FormattedPhone,
		Website:         details.Website,
		PriceRange:      places.MapPriceLevel(details.PriceLevel),
		Rating:          details.Rating,
		RatingCount:     details.UserRatingsTotal,
		ImageURL:        imageURL,
		OpeningHours:    hoursJSON,
		MetaTitle:       fmt.Sprintf("%s – %s | DineMap", details.Name, cityRow.Name),
		MetaDescription: fmt.Sprintf("%s in %s: opening hours, prices, photos and reviews on DineMap.", details.Name, cityRow.Name),
	}

	if err := s.restaurantRepository.CreateRestaurant(ctx, row); err != nil {
		// A concurrent import can win the race on slug or place id; the
		// record exists either way, so the candidate is a skip, not a failure.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return outcomeSkipped, "already imported", createdCities
		}
		return outcomeFailed, fmt.Sprintf("persist: %v", err), createdCities
	}

	if imageURL != "" {
		if err := s.restaurantRepository.CreatePhoto(ctx, &entities.RestaurantPhoto{
			ID:           uuid.New(),
			RestaurantID: row.ID,
			URL:          imageURL,
			IsPrimary:    true,
			IsApproved:   true,
		}); err != nil {
			log.Printf("photo row insert failed for %s: %v", row.Slug, err)
		}
	}

	for _, cuisineSlug := range places.CuisinesForTypes(details.Types) {
		cuisine, err := s.restaurantRepository.GetCuisineBySlug(ctx, cuisineSlug)
		if err != nil {
			continue
		}
		if err := s.restaurantRepository.LinkCuisine(ctx, row.ID.String(), cuisine.ID.String()); err != nil {
			log.Printf("cuisine link failed for %s: %v", row.Slug, err)
		}
	}

	return outcomeImported, "", createdCities
}

// topRated returns up to n candidates ordered by rating, breaking ties by
// rating count.
func topRated(candidates []places.Candidate, n int) []places.Candidate {
	sorted := make([]places.Candidate, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].UserRatingsTotal > sorted[j].UserRatingsTotal
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
