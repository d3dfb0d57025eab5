package city

import (
	"context"
	"fmt"
	"strings"

	"dinemap/entities"
	"dinemap/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resolver looks up or creates cities during an import batch. Lookups and
// creations are cached in memory for the lifetime of one batch invocation so
// venues sharing an area do not hit the store repeatedly; create a fresh
// Resolver per batch and discard it afterwards.
type Resolver struct {
	repo  CityRepository
	cache map[string]*entities.City
}

func NewResolver(repo CityRepository) *Resolver {
	return &Resolver{
		repo:  repo,
		cache: make(map[string]*entities.City),
	}
}

// EnsureCity returns the existing city matching the name's slug, or creates
// one with templated description and SEO text. An existing city is never
// modified by an import.
func (r *Resolver) EnsureCity(ctx context.Context, name, region string, lat, lng float64) (*entities.City, bool, error) {
	cacheKey := strings.ToLower(name)
	if cached, ok := r.cache[cacheKey]; ok {
		return cached, false, nil
	}

	slug := utils.Slugify(name)

	existing, err := r.repo.GetCityBySlug(ctx, slug)
	if err == nil {
		r.cache[cacheKey] = existing
		return existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	city := &entities.City{
		ID:              uuid.New(),
		Name:            name,
		Slug:            slug,
		Region:          region,
		Latitude:        lat,
		Longitude:       lng,
		Description:     cityDescription(name, region),
		MetaTitle:       fmt.Sprintf("Best Restaurants in %s | DineMap", name),
		MetaDescription: fmt.Sprintf("Browse the top-rated restaurants in %s. Opening hours, prices, photos and reviews.", name),
	}

	if err := r.repo.CreateCity(ctx, city); err != nil {
		// A concurrent import may have created the same slug; resolve to it.
		if resolved, lookupErr := r.repo.GetCityBySlug(ctx, slug); lookupErr == nil {
			r.cache[cacheKey] = resolved
			return resolved, false, nil
		}
		return nil, false, err
	}

	r.cache[cacheKey] = city
	return city, true, nil
}

func cityDescription(name, region string) string {
	if region != "" {
		return fmt.Sprintf("%s in %s is home to a diverse restaurant scene. Use DineMap to find the best places to eat, from casual cafes to fine dining.", name, region)
	}
	return fmt.Sprintf("%s is home to a diverse restaurant scene. Use DineMap to find the best places to eat, from casual cafes to fine dining.", name)
}
