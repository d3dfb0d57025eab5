package handlers

import (
	"strconv"

	"dinemap/domain"
	"dinemap/internal/api/presenters"
	"dinemap/pkg/city"

	"github.com/gofiber/fiber/v2"
)

type (
	CityHandler interface {
		GetCities(c *fiber.Ctx) error
		GetCityBySlug(c *fiber.Ctx) error
	}

	cityHandler struct {
		cityService city.CityService
	}
)

func NewCityHandler(cityService city.CityService) CityHandler {
	return &cityHandler{cityService: cityService}
}

func (h *cityHandler) GetCities(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	cities, count, err := h.cityService.GetCities(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCities, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"cities": cities,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetCities)
}

func (h *cityHandler) GetCityBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCity, domain.ErrCityNotFound)
	}

	res, err := h.cityService.GetCityBySlug(c.Context(), slug)
	if err != nil {
		if err == domain.ErrCityNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCity, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCity)
}
