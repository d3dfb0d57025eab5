package ad

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"dinemap/domain"
	"dinemap/entities"
	"dinemap/internal/utils"
	"dinemap/pkg/restaurant"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// Daily slot rates in cents. Checkout price is rate * duration days.
var slotDailyRate = map[string]int64{
	"city_top":     500,
	"city_sidebar": 300,
	"homepage":     900,
}

type (
	AdService interface {
		CreateAdOrder(ctx context.Context, req domain.CreateAdOrderRequest) (*domain.CreateAdOrderResponse, error)
		GetActiveAds(ctx context.Context, cityID, slot string) ([]*domain.AdPlacementResponse, error)
		HandlePaymentNotification(ctx context.Context, notification domain.PaymentNotification) error
	}

	adService struct {
		adRepository         AdRepository
		restaurantRepository restaurant.RestaurantRepository
		snapClient           snap.Client
		serverKey            string
	}
)

func NewAdService(adRepository AdRepository, restaurantRepository restaurant.RestaurantRepository) AdService {
	serverKey := utils.GetConfig("SERVER_KEY")
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var snapClient snap.Client
	snapClient.New(serverKey, env)

	return &adService{
		adRepository:         adRepository,
		restaurantRepository: restaurantRepository,
		snapClient:           snapClient,
		serverKey:            serverKey,
	}
}

func (s *adService) CreateAdOrder(ctx context.Context, req domain.CreateAdOrderRequest) (*domain.CreateAdOrderResponse, error) {
	rate, ok := slotDailyRate[req.Slot]
	if !ok {
		return nil, domain.ErrInvalidAdSlot
	}

	target, err := s.restaurantRepository.GetRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}

	startsAt := time.Now()
	endsAt := startsAt.AddDate(0, 0, req.DurationDays)

	occupied, err := s.adRepository.CountActiveInSlot(ctx, target.CityID.String(), req.Slot, startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	if occupied > 0 {
		return nil, domain.ErrSlotOccupied
	}

	price := rate * int64(req.DurationDays)
	orderID := fmt.Sprintf("ad-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: price,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.Slot,
				Name:  fmt.Sprintf("Ad placement %s for %s", req.Slot, target.Name),
				Price: price,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return nil, domain.ErrPaymentFailed
	}

	placement := &entities.AdPlacement{
		ID:           uuid.New(),
		RestaurantID: target.ID,
		CityID:       target.CityID,
		OrderID:      orderID,
		Slot:         req.Slot,
		Price:        price,
		Status:       "Pending",
		StartsAt:     startsAt,
		EndsAt:       endsAt,
	}
	if err := s.adRepository.CreateAdPlacement(ctx, placement); err != nil {
		return nil, err
	}

	return &domain.CreateAdOrderResponse{
		OrderID:    orderID,
		InvoiceURL: snapResp.RedirectURL,
		Price:      price,
	}, nil
}

func (s *adService) GetActiveAds(ctx context.Context, cityID, slot string) ([]*domain.AdPlacementResponse, error) {
	placements, err := s.adRepository.GetActiveAds(ctx, cityID, slot)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.AdPlacementResponse, 0, len(placements))
	for _, placement := range placements {
		name := ""
		if placement.Restaurant != nil {
			name = placement.Restaurant.Name
		}
		responses = append(responses, &domain.AdPlacementResponse{
			ID:           placement.ID.String(),
			RestaurantID: placement.RestaurantID.String(),
			Restaurant:   name,
			Slot:         placement.Slot,
			Status:       placement.Status,
			StartsAt:     placement.StartsAt,
			EndsAt:       placement.EndsAt,
		})
	}
	return responses, nil
}

func (s *adService) HandlePaymentNotification(ctx context.Context, notification domain.PaymentNotification) error {
	if !s.validSignature(notification) {
		return domain.ErrPaymentFailed
	}

	placement, err := s.adRepository.GetAdPlacementByOrderID(ctx, notification.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAdPlacementNotFound
		}
		return err
	}

	switch notification.TransactionStatus {
	case "capture":
		if notification.FraudStatus == "accept" {
			return s.activate(ctx, placement)
		}
	case "settlement":
		return s.activate(ctx, placement)
	case "deny", "cancel", "expire":
		return s.adRepository.UpdateAdStatus(ctx, placement.OrderID, "Cancelled", nil)
	}
	return nil
}

func (s *adService) activate(ctx context.Context, placement *entities.AdPlacement) error {
	if placement.Status == "Active" {
		return nil
	}
	now := time.Now()
	return s.adRepository.UpdateAdStatus(ctx, placement.OrderID, "Active", &now)
}

func (s *adService) validSignature(notification domain.PaymentNotification) bool {
	payload := notification.OrderID + notification.StatusCode + notification.GrossAmount + s.serverKey
	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:]) == notification.SignatureKey
}
