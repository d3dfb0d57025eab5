package handlers

import (
	"dinemap/domain"
	"dinemap/internal/api/presenters"
	"dinemap/pkg/ad"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdHandler interface {
		CreateAdOrder(c *fiber.Ctx) error
		GetActiveAds(c *fiber.Ctx) error
		PaymentWebhookHandler(c *fiber.Ctx) error
	}

	adHandler struct {
		adService ad.AdService
		validator *validator.Validate
	}
)

func NewAdHandler(adService ad.AdService, validator *validator.Validate) AdHandler {
	return &adHandler{
		adService: adService,
		validator: validator,
	}
}

func (h *adHandler) CreateAdOrder(c *fiber.Ctx) error {
	req := new(domain.CreateAdOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAdOrder, err)
	}

	res, err := h.adService.CreateAdOrder(c.Context(), *req)
	if err != nil {
		if err == domain.ErrSlotOccupied {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateAdOrder, err)
		}
		if err == domain.ErrRestaurantNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateAdOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAdOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAdOrder)
}

func (h *adHandler) GetActiveAds(c *fiber.Ctx) error {
	cityID := c.Query("city_id")
	slot := c.Query("slot")

	ads, err := h.adService.GetActiveAds(c.Context(), cityID, slot)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAds, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"ads": ads,
	}, fiber.StatusOK, domain.MessageSuccessGetAds)
}

func (h *adHandler) PaymentWebhookHandler(c *fiber.Ctx) error {
	notification := new(domain.PaymentNotification)
	if err := c.BodyParser(notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.adService.HandlePaymentNotification(c.Context(), *notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, "ok")
}
