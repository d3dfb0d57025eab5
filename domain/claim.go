package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateClaim = "claim submitted successfully"
	MessageSuccessGetClaims   = "claims retrieved successfully"
	MessageSuccessDecideClaim = "claim updated successfully"

	MessageFailedCreateClaim = "failed to submit claim"
	MessageFailedGetClaims   = "failed to retrieve claims"
	MessageFailedDecideClaim = "failed to update claim"

	ErrClaimNotFound       = errors.New("claim not found")
	ErrClaimAlreadyExists  = errors.New("a pending claim already exists for this restaurant")
	ErrClaimAlreadyDecided = errors.New("claim already decided")
	ErrInvalidClaimStatus  = errors.New("invalid claim status")
)

type (
	CreateClaimRequest struct {
		RestaurantID string                `json:"restaurant_id" form:"restaurant_id" validate:"required,uuid"`
		Message      string                `json:"message" form:"message" validate:"omitempty,max=2000"`
		Evidence     *multipart.FileHeader `json:"evidence" form:"evidence"`
	}

	DecideClaimRequest struct {
		ClaimID string `json:"claim_id" validate:"required,uuid"`
		Status  string `json:"status" validate:"required,oneof=Approved Rejected"`
	}

	ClaimResponse struct {
		ID           string     `json:"id"`
		RestaurantID string     `json:"restaurant_id"`
		Restaurant   string     `json:"restaurant,omitempty"`
		UserID       string     `json:"user_id"`
		Message      string     `json:"message,omitempty"`
		EvidenceURL  string     `json:"evidence_url,omitempty"`
		Status       string     `json:"status"`
		DecidedAt    *time.Time `json:"decided_at,omitempty"`
		CreatedAt    time.Time  `json:"created_at"`
	}
)
