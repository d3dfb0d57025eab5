package claim

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"dinemap/domain"
	"dinemap/entities"
	"dinemap/internal/utils/mailing"
	"dinemap/internal/utils/storage"
	"dinemap/pkg/restaurant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ClaimService interface {
		CreateClaim(ctx context.Context, userID string, req domain.CreateClaimRequest) (*domain.ClaimResponse, error)
		GetClaims(ctx context.Context, status string, page, limit int) ([]*domain.ClaimResponse, int64, error)
		DecideClaim(ctx context.Context, req domain.DecideClaimRequest) (*domain.ClaimResponse, error)
	}

	claimService struct {
		claimRepository      ClaimRepository
		restaurantRepository restaurant.RestaurantRepository
		s3                   storage.AwsS3
	}
)

func NewClaimService(
	claimRepository ClaimRepository,
	restaurantRepository restaurant.RestaurantRepository,
	s3 storage.AwsS3,
) ClaimService {
	return &claimService{
		claimRepository:      claimRepository,
		restaurantRepository: restaurantRepository,
		s3:                   s3,
	}
}

func (s *claimService) CreateClaim(ctx context.Context, userID string, req domain.CreateClaimRequest) (*domain.ClaimResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	target, err := s.restaurantRepository.GetRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}

	if _, err := s.claimRepository.GetPendingClaim(ctx, req.RestaurantID); err == nil {
		return nil, domain.ErrClaimAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	evidenceURL := ""
	if req.Evidence != nil {
		objectKey, err := s.s3.UploadFile("claim-evidence", req.Evidence, "claims", storage.AllowDoc...)
		if err != nil {
			return nil, err
		}
		evidenceURL = s.s3.GetPublicLinkKey(objectKey)
	}

	claim := &entities.RestaurantClaim{
		ID:           uuid.New(),
		RestaurantID: target.ID,
		UserID:       userUUID,
		Message:      req.Message,
		EvidenceURL:  evidenceURL,
		Status:       "Pending",
	}

	if err := s.claimRepository.CreateClaim(ctx, claim); err != nil {
		return nil, err
	}

	return claimToResponse(claim, target.Name), nil
}

func (s *claimService) GetClaims(ctx context.Context, status string, page, limit int) ([]*domain.ClaimResponse, int64, error) {
	if status != "" && status != "all" && status != "Pending" && status != "Approved" && status != "Rejected" {
		return nil, 0, domain.ErrInvalidClaimStatus
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	claims, count, err := s.claimRepository.GetClaims(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*domain.ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		name := ""
		if claim.Restaurant != nil {
			name = claim.Restaurant.Name
		}
		responses = append(responses, claimToResponse(claim, name))
	}

	return responses, count, nil
}

func (s *claimService) DecideClaim(ctx context.Context, req domain.DecideClaimRequest) (*domain.ClaimResponse, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, req.ClaimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}

	if claim.Status != "Pending" {
		return nil, domain.ErrClaimAlreadyDecided
	}

	now := time.Now()
	if err := s.claimRepository.UpdateClaimStatus(ctx, req.ClaimID, req.Status, &now); err != nil {
		return nil, err
	}
	claim.Status = req.Status
	claim.DecidedAt = &now

	if req.Status == "Approved" {
		if err := s.restaurantRepository.SetClaimed(ctx, claim.RestaurantID.String(), true); err != nil {
			return nil, err
		}
	}

	restaurantName := ""
	if claim.Restaurant != nil {
		restaurantName = claim.Restaurant.Name
	}

	if claim.User != nil && claim.User.Email != "" {
		go s.notifyClaimant(claim.User.Email, restaurantName, req.Status)
	}

	return claimToResponse(claim, restaurantName), nil
}

func (s *claimService) notifyClaimant(email, restaurantName, status string) {
	subject := fmt.Sprintf("Your claim for %s has been %s", restaurantName, status)
	body := fmt.Sprintf(
		"<p>Hello,</p><p>Your ownership claim for <b>%s</b> has been <b>%s</b>.</p>",
		restaurantName, status,
	)
	if status == "Approved" {
		body += "<p>You can now manage this listing from your dashboard.</p>"
	}

	if err := mailing.SendMail(email, subject, body); err != nil {
		log.Printf("failed to send claim notification to %s: %v", email, err)
	}
}

func claimToResponse(claim *entities.RestaurantClaim, restaurantName string) *domain.ClaimResponse {
	return &domain.ClaimResponse{
		ID:           claim.ID.String(),
		RestaurantID: claim.RestaurantID.String(),
		Restaurant:   restaurantName,
		UserID:       claim.UserID.String(),
		Message:      claim.Message,
		EvidenceURL:  claim.EvidenceURL,
		Status:       claim.Status,
		DecidedAt:    claim.DecidedAt,
		CreatedAt:    claim.CreatedAt,
	}
}
