package migration

import (
	"fmt"
	"log"

	"dinemap/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cuisineSeed is the directory's cuisine taxonomy. Slugs must stay in sync
// with the category tag mapping in pkg/places.
var cuisineSeed = map[string]string{
	"italian":       "Italian",
	"french":        "French",
	"spanish":       "Spanish",
	"greek":         "Greek",
	"chinese":       "Chinese",
	"japanese":      "Japanese",
	"thai":          "Thai",
	"vietnamese":    "Vietnamese",
	"indian":        "Indian",
	"korean":        "Korean",
	"mexican":       "Mexican",
	"turkish":       "Turkish",
	"lebanese":      "Lebanese",
	"american":      "American",
	"steakhouse":    "Steakhouse",
	"seafood":       "Seafood",
	"vegetarian":    "Vegetarian",
	"vegan":         "Vegan",
	"mediterranean": "Mediterranean",
	"cafe":          "Café",
	"bar":           "Bar",
}

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.City{},
		&entities.Cuisine{},
		&entities.Restaurant{},
		&entities.RestaurantPhoto{},
		&entities.RestaurantCuisine{},
		&entities.Review{},
		&entities.Favorite{},
		&entities.RestaurantClaim{},
		&entities.AdPlacement{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	if err := seedCuisines(db); err != nil {
		log.Fatalf("Error seeding cuisines: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

func seedCuisines(db *gorm.DB) error {
	for slug, name := range cuisineSeed {
		cuisine := entities.Cuisine{Name: name, Slug: slug}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&cuisine).Error; err != nil {
			return err
		}
	}
	return nil
}
