package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateAdOrder = "ad order created successfully"
	MessageSuccessGetAds        = "ad placements retrieved successfully"

	MessageFailedCreateAdOrder = "failed to create ad order"
	MessageFailedGetAds        = "failed to retrieve ad placements"
	MessageFailedAdWebhook     = "failed to process payment notification"

	ErrAdPlacementNotFound = errors.New("ad placement not found")
	ErrInvalidAdSlot       = errors.New("invalid ad slot")
	ErrSlotOccupied        = errors.New("ad slot already occupied for this period")
	ErrPaymentFailed       = errors.New("payment processing failed")
)

type (
	CreateAdOrderRequest struct {
		RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
		Slot         string `json:"slot" validate:"required,oneof=city_top city_sidebar homepage"`
		DurationDays int    `json:"duration_days" validate:"required,min=7,max=90"`
		Email        string `json:"email" validate:"required,email"`
	}

	CreateAdOrderResponse struct {
		OrderID    string `json:"order_id"`
		InvoiceURL string `json:"invoice_url"`
		Price      int64  `json:"price"`
	}

	AdPlacementResponse struct {
		ID           string    `json:"id"`
		RestaurantID string    `json:"restaurant_id"`
		Restaurant   string    `json:"restaurant,omitempty"`
		Slot         string    `json:"slot"`
		Status       string    `json:"status"`
		StartsAt     time.Time `json:"starts_at"`
		EndsAt       time.Time `json:"ends_at"`
	}

	// PaymentNotification is the subset of the midtrans webhook payload the
	// ad service needs to settle an order.
	PaymentNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		SignatureKey      string `json:"signature_key"`
		StatusCode        string `json:"status_code"`
		GrossAmount       string `json:"gross_amount"`
	}
)
