package query

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
)

// QueryService serves the read side: pure lookups and aggregations with no
// ordering or atomicity requirements beyond what storage naturally provides.
// Staleness under concurrent admission is acceptable here.
type QueryService struct {
	repo repository.AuctionDB
}

// NewQueryService creates a new QueryService instance
func NewQueryService(repo repository.AuctionDB) *QueryService {
	return &QueryService{repo: repo}
}

// AuctionByID returns a single auction
func (s *QueryService) AuctionByID(ctx context.Context, auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("query: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("query: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// SearchAuctions returns auctions matching the descriptive filter; an empty
// filter returns every auction
func (s *QueryService) SearchAuctions(ctx context.Context, filter repository.AuctionFilter) ([]models.Auction, error) {
	auctions, err := s.repo.ListAuctions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query: failed to search auctions: %w", err)
	}
	return auctions, nil
}

// AuctionsByEndDate returns all auctions ordered by end date ascending
func (s *QueryService) AuctionsByEndDate(ctx context.Context) ([]models.Auction, error) {
	auctions, err := s.repo.ListAuctionsByEndDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("query: failed to list auctions by end date: %w", err)
	}
	return auctions, nil
}

// AuctionsByCreator returns all auctions created by the given user
func (s *QueryService) AuctionsByCreator(ctx context.Context, creatorID string) ([]models.Auction, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("query: %w - empty creator ID", auctionerrors.ErrInvalidAuction)
	}

	auctions, err := s.repo.ListAuctionsByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("query: failed to list auctions for creator %s: %w", creatorID, err)
	}
	return auctions, nil
}

// HighestBid returns the current leading bid for an auction
func (s *QueryService) HighestBid(ctx context.Context, auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("query: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	leading, err := s.repo.GetLeadingBid(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("query: failed to get leading bid for auction %s: %w", auctionID, err)
	}
	if leading == nil {
		return models.Bid{}, fmt.Errorf("query: auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return *leading, nil
}

// BidsForAuction returns all bids for an auction ordered by amount
func (s *QueryService) BidsForAuction(ctx context.Context, auctionID string, descending bool) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("query: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	order := repository.OrderAmountAsc
	if descending {
		order = repository.OrderAmountDesc
	}

	bids, err := s.repo.ListBids(ctx, repository.BidFilter{AuctionID: auctionID}, order)
	if err != nil {
		return nil, fmt.Errorf("query: failed to list bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// BidsByBidder returns all bids placed by the given user
func (s *QueryService) BidsByBidder(ctx context.Context, userID string) ([]models.Bid, error) {
	if userID == "" {
		return nil, fmt.Errorf("query: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.ListBids(ctx, repository.BidFilter{UserID: userID}, repository.OrderInsertion)
	if err != nil {
		return nil, fmt.Errorf("query: failed to list bids for user %s: %w", userID, err)
	}
	return bids, nil
}

// TotalBidAmount returns the sum of all bid amounts for an auction,
// zero when no bids exist
func (s *QueryService) TotalBidAmount(ctx context.Context, auctionID string) (decimal.Decimal, error) {
	if auctionID == "" {
		return decimal.Zero, fmt.Errorf("query: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	total, err := s.repo.SumBidAmounts(ctx, auctionID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("query: failed to sum bid amounts for auction %s: %w", auctionID, err)
	}
	return total, nil
}

// BidByID returns a single bid
func (s *QueryService) BidByID(ctx context.Context, bidID string) (models.Bid, error) {
	if bidID == "" {
		return models.Bid{}, fmt.Errorf("query: %w - empty bid ID", auctionerrors.ErrInvalidBid)
	}

	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("query: failed to get bid %s: %w", bidID, err)
	}
	return bid, nil
}
