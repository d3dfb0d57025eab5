package routes

import (
	"dinemap/internal/api/handlers"
	"dinemap/internal/middleware"
	"dinemap/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	CityHandler       handlers.CityHandler
	RestaurantHandler handlers.RestaurantHandler
	ReviewHandler     handlers.ReviewHandler
	ClaimHandler      handlers.ClaimHandler
	AdHandler         handlers.AdHandler
	ImportHandler     handlers.ImportHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Cities()
	c.Restaurants()
	c.Claims()
	c.Ads()
	c.AdminImport()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("/favorites", c.Middleware.AuthMiddleware(c.JWTService), c.RestaurantHandler.GetFavorites)
		user.Post("/favorites", c.Middleware.AuthMiddleware(c.JWTService), c.RestaurantHandler.AddFavorite)
		user.Delete("/favorites/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RestaurantHandler.RemoveFavorite)
	}
}

func (c *Config) Cities() {
	cities := c.App.Group("/api/v1/cities")
	{
		cities.Get("", c.CityHandler.GetCities)
		cities.Get("/:slug", c.CityHandler.GetCityBySlug)
	}
}

func (c *Config) Restaurants() {
	restaurants := c.App.Group("/api/v1/restaurants")
	{
		restaurants.Get("", c.RestaurantHandler.GetRestaurants)
		restaurants.Get("/:slug", c.RestaurantHandler.GetRestaurantBySlug)
		restaurants.Get("/:id/reviews", c.ReviewHandler.GetReviews)
		restaurants.Post("/reviews", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.CreateReview)
	}
}

func (c *Config) Claims() {
	claims := c.App.Group("/api/v1/claims")
	{
		claims.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ClaimHandler.CreateClaim)
		claims.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.ClaimHandler.GetClaims)
		claims.Patch("/decide", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.ClaimHandler.DecideClaim)
	}
}

func (c *Config) Ads() {
	ads := c.App.Group("/api/v1/ads")
	{
		ads.Get("", c.AdHandler.GetActiveAds)
		ads.Post("/order", c.Middleware.AuthMiddleware(c.JWTService), c.AdHandler.CreateAdOrder)
	}
}

// AdminImport exposes the batch ingestion pipeline. Every route requires
// an authenticated admin.
func (c *Config) AdminImport() {
	imports := c.App.Group(
		"/api/v1/admin/import",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
	)
	{
		imports.Post("/cities", c.ImportHandler.SeedCities)
		imports.Post("/radius", c.ImportHandler.ImportRadius)
		imports.Post("/photos", c.ImportHandler.RefreshPhotos)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.AdHandler.PaymentWebhookHandler)
}
