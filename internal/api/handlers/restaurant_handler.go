package handlers

import (
	"strconv"

	"dinemap/domain"
	"dinemap/internal/api/presenters"
	"dinemap/pkg/restaurant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RestaurantHandler interface {
		GetRestaurants(c *fiber.Ctx) error
		GetRestaurantBySlug(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		GetFavorites(c *fiber.Ctx) error
	}

	restaurantHandler struct {
		restaurantService restaurant.RestaurantService
		validator         *validator.Validate
	}
)

func NewRestaurantHandler(restaurantService restaurant.RestaurantService, validator *validator.Validate) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		validator:         validator,
	}
}

func (h *restaurantHandler) GetRestaurants(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	citySlug := c.Query("city")
	cuisineSlug := c.Query("cuisine")

	restaurants, count, err := h.restaurantService.GetRestaurants(c.Context(), citySlug, cuisineSlug, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurants, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"restaurants": restaurants,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetRestaurants)
}

func (h *restaurantHandler) GetRestaurantBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurant, domain.ErrRestaurantNotFound)
	}

	res, err := h.restaurantService.GetRestaurantBySlug(c.Context(), slug)
	if err != nil {
		if err == domain.ErrRestaurantNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRestaurant, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurant)
}

func (h *restaurantHandler) AddFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.AddFavoriteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
	}

	if err := h.restaurantService.AddFavorite(c.Context(), *req, userID); err != nil {
		if err == domain.ErrAlreadyFavorited {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedAddFavorite, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddFavorite)
}

func (h *restaurantHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	restaurantID := c.Params("id")

	if err := h.restaurantService.RemoveFavorite(c.Context(), restaurantID, userID); err != nil {
		if err == domain.ErrFavoriteNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveFavorite, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFavorite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFavorite)
}

func (h *restaurantHandler) GetFavorites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	favorites, err := h.restaurantService.GetFavorites(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFavorites, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"favorites": favorites,
	}, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}
