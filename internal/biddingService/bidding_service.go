package bidding

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/validation"
	"auction-engine/utils"
)

// maxAdmissionAttempts bounds the optimistic retry loop in SubmitBid.
const maxAdmissionAttempts = 5

// BiddingService coordinates bid admission: it makes the
// read-leader/validate/write sequence appear atomic per auction without
// holding any in-process lock across storage calls. Correctness rests solely
// on the storage-level conditional insert, so the same design holds across
// multiple service instances sharing one backend.
type BiddingService struct {
	repo  repository.AuctionDB
	clock clock.Clock
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, clk clock.Clock) *BiddingService {
	return &BiddingService{
		repo:  repo,
		clock: clk,
	}
}

// SubmitBid validates and durably admits a user's bid for an auction.
//
// The admission loop is optimistic: read the current leading bid, validate
// the candidate against it, then attempt a conditional insert that only
// succeeds if no equal-or-higher bid landed in between. Losing that race
// re-reads the leader and re-validates, up to maxAdmissionAttempts; exhausting
// the budget surfaces ErrAdmissionContention, distinct from ErrBelowLeadingBid
// because the candidate may have been valid against every snapshot it saw.
//
// Exactly one bid row is created on success, none otherwise, so a submission
// interrupted by ctx cancellation can always be retried safely: the retry is
// re-validated against the then-current leader and can never double-admit.
func (s *BiddingService) SubmitBid(ctx context.Context, auctionID, userID string, amount decimal.Decimal) (models.Bid, error) {
	candidate := models.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: s.clock.Now(),
	}

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			return models.Bid{}, fmt.Errorf("service: %w", err)
		}
		return models.Bid{}, fmt.Errorf("service: failed to fetch auction %s: %w", auctionID, err)
	}

	for attempt := 1; attempt <= maxAdmissionAttempts; attempt++ {
		leading, err := s.repo.GetLeadingBid(ctx, auctionID)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to fetch leading bid for auction %s: %w", auctionID, err)
		}

		if err := validation.ValidateBid(&auction, leading, candidate, s.clock.Now()); err != nil {
			return models.Bid{}, fmt.Errorf("service: %w", err)
		}

		err = s.repo.InsertBidIfHighest(ctx, candidate)
		if err == nil {
			utils.Info("bid admitted", map[string]any{
				"bid_id":     candidate.BidID,
				"auction_id": auctionID,
				"user_id":    userID,
				"amount":     amount.String(),
				"attempt":    attempt,
			})
			return candidate, nil
		}
		if !errors.Is(err, auctionerrors.ErrLeaderChanged) {
			return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", auctionID, userID, err)
		}

		// Lost the race to a concurrent bid; re-read the leader and try again.
		utils.Warn("bid admission conflict", map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"amount":     amount.String(),
			"attempt":    attempt,
		})
	}

	return models.Bid{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrAdmissionContention)
}

// UpdateBid rejects mutation of an admitted bid. Bids in an ascending auction
// are immutable; the operation exists only so the API surface can answer it
// explicitly instead of guessing a reinterpretation.
func (s *BiddingService) UpdateBid(ctx context.Context, bidID string, amount decimal.Decimal) (models.Bid, error) {
	return models.Bid{}, fmt.Errorf("service: bid %s: %w", bidID, auctionerrors.ErrBidUpdateUnsupported)
}

// DeleteBid removes a bid by its id
func (s *BiddingService) DeleteBid(ctx context.Context, bidID string) error {
	if bidID == "" {
		return fmt.Errorf("service: %w - empty bid ID", auctionerrors.ErrInvalidBid)
	}

	if err := s.repo.DeleteBid(ctx, bidID); err != nil {
		return fmt.Errorf("service: failed to delete bid %s: %w", bidID, err)
	}

	utils.Info("bid deleted", map[string]any{"bid_id": bidID})
	return nil
}
