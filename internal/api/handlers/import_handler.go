package handlers

import (
	"dinemap/domain"
	"dinemap/internal/api/presenters"
	"dinemap/pkg/importer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ImportHandler interface {
		SeedCities(c *fiber.Ctx) error
		ImportRadius(c *fiber.Ctx) error
		RefreshPhotos(c *fiber.Ctx) error
	}

	importHandler struct {
		importerService importer.ImporterService
		validator       *validator.Validate
	}
)

func NewImportHandler(importerService importer.ImporterService, validator *validator.Validate) ImportHandler {
	return &importHandler{
		importerService: importerService,
		validator:       validator,
	}
}

// SeedCities runs one batch of the area seeder. Per-place failures are
// reported inside the 200 response, only configuration problems abort.
func (h *importHandler) SeedCities(c *fiber.Ctx) error {
	req := new(domain.SeedCitiesRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSeedCities, err)
	}

	res, err := h.importerService.SeedCities(c.Context(), *req)
	if err != nil {
		if err == domain.ErrMissingPlacesAPIKey {
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedSeedCities, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSeedCities, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSeedCities)
}

func (h *importHandler) ImportRadius(c *fiber.Ctx) error {
	req := new(domain.ImportRadiusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportRadius, err)
	}

	res, err := h.importerService.ImportRadius(c.Context(), *req)
	if err != nil {
		if err == domain.ErrMissingPlacesAPIKey {
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedImportRadius, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedImportRadius, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessImportRadius)
}

func (h *importHandler) RefreshPhotos(c *fiber.Ctx) error {
	req := new(domain.RefreshPhotosRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRefreshPhotos, err)
	}

	res, err := h.importerService.RefreshPhotos(c.Context(), *req)
	if err != nil {
		if err == domain.ErrMissingPlacesAPIKey {
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedRefreshPhotos, err)
		}
		if err == domain.ErrRestaurantNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRefreshPhotos, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRefreshPhotos, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRefreshPhotos)
}
