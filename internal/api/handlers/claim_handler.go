package handlers

import (
	"strconv"

	"dinemap/domain"
	"dinemap/internal/api/presenters"
	"dinemap/pkg/claim"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ClaimHandler interface {
		CreateClaim(c *fiber.Ctx) error
		GetClaims(c *fiber.Ctx) error
		DecideClaim(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
		validator    *validator.Validate
	}
)

func NewClaimHandler(claimService claim.ClaimService, validator *validator.Validate) ClaimHandler {
	return &claimHandler{
		claimService: claimService,
		validator:    validator,
	}
}

func (h *claimHandler) CreateClaim(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateClaimRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Evidence, _ = c.FormFile("evidence")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateClaim, err)
	}

	res, err := h.claimService.CreateClaim(c.Context(), userID, *req)
	if err != nil {
		if err == domain.ErrClaimAlreadyExists {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateClaim, err)
		}
		if err == domain.ErrRestaurantNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateClaim, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateClaim, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateClaim)
}

func (h *claimHandler) GetClaims(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	status := c.Query("status", "Pending")

	claims, count, err := h.claimService.GetClaims(c.Context(), status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"claims": claims,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) DecideClaim(c *fiber.Ctx) error {
	req := new(domain.DecideClaimRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecideClaim, err)
	}

	res, err := h.claimService.DecideClaim(c.Context(), *req)
	if err != nil {
		if err == domain.ErrClaimNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDecideClaim, err)
		}
		if err == domain.ErrClaimAlreadyDecided {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDecideClaim, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecideClaim, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDecideClaim)
}
