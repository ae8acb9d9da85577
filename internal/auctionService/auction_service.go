package auction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// AuctionService defines the mutation operations on auctions. These are thin
// pass-throughs once past validation; the bid path never goes through here.
type AuctionService struct {
	repo  repository.AuctionDB
	clock clock.Clock
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, clk clock.Clock) *AuctionService {
	return &AuctionService{
		repo:  repo,
		clock: clk,
	}
}

// AuctionInput carries the caller-supplied fields for create and update.
type AuctionInput struct {
	Brand       string
	Model       string
	Year        int
	StartingBid decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	CreatorID   string
}

// CreateAuction validates the input and stores a new auction
func (s *AuctionService) CreateAuction(ctx context.Context, in AuctionInput) (models.Auction, error) {
	now := s.clock.Now()
	if err := validateInput(in); err != nil {
		return models.Auction{}, err
	}
	if !in.EndDate.After(now) {
		return models.Auction{}, fmt.Errorf("service: %w - auction end date must be in the future", auctionerrors.ErrInvalidAuction)
	}

	auction := models.Auction{
		AuctionID:   utils.GenerateID(),
		Brand:       in.Brand,
		Model:       in.Model,
		Year:        in.Year,
		StartingBid: in.StartingBid,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatorID:   in.CreatorID,
		Status:      models.StatusActive,
	}

	if err := s.repo.CreateAuction(ctx, auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}

	utils.Info("auction created", map[string]any{
		"auction_id": auction.AuctionID,
		"creator_id": auction.CreatorID,
		"end_date":   auction.EndDate,
	})
	return auction, nil
}

// UpdateAuction replaces an existing auction's caller-supplied fields.
// Full-replace semantics; the stored status flag is preserved.
func (s *AuctionService) UpdateAuction(ctx context.Context, auctionID string, in AuctionInput) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}
	if err := validateInput(in); err != nil {
		return models.Auction{}, err
	}

	existing, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to fetch auction %s: %w", auctionID, err)
	}

	updated := models.Auction{
		AuctionID:   existing.AuctionID,
		Brand:       in.Brand,
		Model:       in.Model,
		Year:        in.Year,
		StartingBid: in.StartingBid,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatorID:   in.CreatorID,
		Status:      existing.Status,
	}

	if err := s.repo.UpdateAuction(ctx, updated); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to update auction %s: %w", auctionID, err)
	}

	utils.Info("auction updated", map[string]any{"auction_id": auctionID})
	return updated, nil
}

// CancelAuction sets the stored status flag to cancelled. The flag overrides
// the time window, so bidding stops immediately.
func (s *AuctionService) CancelAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to fetch auction %s: %w", auctionID, err)
	}

	auction.Status = models.StatusCancelled
	if err := s.repo.UpdateAuction(ctx, auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to cancel auction %s: %w", auctionID, err)
	}

	utils.Info("auction cancelled", map[string]any{"auction_id": auctionID})
	return auction, nil
}

// DeleteAuction removes an auction. Auctions with admitted bids may be
// deleted; their bids go with them.
func (s *AuctionService) DeleteAuction(ctx context.Context, auctionID string) error {
	if auctionID == "" {
		return fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	if err := s.repo.DeleteAuction(ctx, auctionID); err != nil {
		return fmt.Errorf("service: failed to delete auction %s: %w", auctionID, err)
	}

	utils.Info("auction deleted", map[string]any{"auction_id": auctionID})
	return nil
}

// validateInput checks the invariants shared by create and update
func validateInput(in AuctionInput) error {
	if in.CreatorID == "" {
		return fmt.Errorf("service: %w - missing creator ID", auctionerrors.ErrInvalidAuction)
	}
	if in.StartingBid.Sign() <= 0 {
		return fmt.Errorf("service: %w - starting bid must be greater than 0", auctionerrors.ErrInvalidAuction)
	}
	if !in.EndDate.After(in.StartDate) {
		return fmt.Errorf("service: %w - auction end date must be after the start date", auctionerrors.ErrInvalidAuction)
	}
	return nil
}
