package config

import (
	"os"
	"time"

	"dinemap/internal/api/handlers"
	"dinemap/internal/api/routes"
	"dinemap/internal/middleware"
	"dinemap/internal/utils"
	"dinemap/internal/utils/storage"
	"dinemap/pkg/ad"
	"dinemap/pkg/city"
	"dinemap/pkg/claim"
	"dinemap/pkg/importer"
	"dinemap/pkg/jwt"
	"dinemap/pkg/places"
	"dinemap/pkg/restaurant"
	"dinemap/pkg/review"
	"dinemap/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Berlin",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// The importer tolerates a nil places client and fails fast per request,
	// so the app still boots without an API key configured.
	var placesClient places.Client
	if apiKey := utils.GetConfig("GOOGLE_PLACES_API_KEY"); apiKey != "" {
		placesClient = places.NewClient(apiKey)
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	cityRepository := city.NewCityRepository(db)
	restaurantRepository := restaurant.NewRestaurantRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	claimRepository := claim.NewClaimRepository(db)
	adRepository := ad.NewAdRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	cityService := city.NewCityService(cityRepository)
	restaurantService := restaurant.NewRestaurantService(restaurantRepository)
	reviewService := review.NewReviewService(reviewRepository, restaurantRepository)
	claimService := claim.NewClaimService(claimRepository, restaurantRepository, s3)
	adService := ad.NewAdService(adRepository, restaurantRepository)
	importerService := importer.NewImporterService(restaurantRepository, cityRepository, placesClient, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	cityHandler := handlers.NewCityHandler(cityService)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	claimHandler := handlers.NewClaimHandler(claimService, validator)
	adHandler := handlers.NewAdHandler(adService, validator)
	importHandler := handlers.NewImportHandler(importerService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		CityHandler:       cityHandler,
		RestaurantHandler: restaurantHandler,
		ReviewHandler:     reviewHandler,
		ClaimHandler:      claimHandler,
		AdHandler:         adHandler,
		ImportHandler:     importHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
