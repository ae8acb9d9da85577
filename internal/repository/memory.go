package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// Bids per auction are kept in admission order; since InsertBidIfHighest is
// the only writer, that order is also strictly increasing by amount.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction
	bids     map[string][]model.Bid // key: auctionID -> bids in admission order
	bidOwner map[string]string      // key: bidID -> auctionID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
		bidOwner: make(map[string]string),
	}
}

// CreateAuction stores a new auction row
func (r *MemoryRepo) CreateAuction(ctx context.Context, auction model.Auction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuction returns the auction with the given id
func (r *MemoryRepo) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	if err := ctx.Err(); err != nil {
		return model.Auction{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// UpdateAuction replaces the stored auction row (full replace)
func (r *MemoryRepo) UpdateAuction(ctx context.Context, auction model.Auction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; !ok {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// DeleteAuction removes the auction and all bids referencing it
func (r *MemoryRepo) DeleteAuction(ctx context.Context, auctionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return fmt.Errorf("delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	delete(r.auctions, auctionID)

	for _, b := range r.bids[auctionID] {
		delete(r.bidOwner, b.BidID)
	}
	delete(r.bids, auctionID)
	return nil
}

// ListAuctions returns all auctions matching the descriptive filter
func (r *MemoryRepo) ListAuctions(ctx context.Context, filter AuctionFilter) ([]model.Auction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		if filter.Brand != "" && a.Brand != filter.Brand {
			continue
		}
		if filter.Model != "" && a.Model != filter.Model {
			continue
		}
		if filter.Year != 0 && a.Year != filter.Year {
			continue
		}
		auctions = append(auctions, a)
	}
	return auctions, nil
}

// ListAuctionsByEndDate returns all auctions ordered by end date ascending
func (r *MemoryRepo) ListAuctionsByEndDate(ctx context.Context) ([]model.Auction, error) {
	auctions, err := r.ListAuctions(ctx, AuctionFilter{})
	if err != nil {
		return nil, err
	}
	sort.Slice(auctions, func(i, j int) bool {
		return auctions[i].EndDate.Before(auctions[j].EndDate)
	})
	return auctions, nil
}

// ListAuctionsByCreator returns all auctions created by the given user
func (r *MemoryRepo) ListAuctionsByCreator(ctx context.Context, creatorID string) ([]model.Auction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var auctions []model.Auction
	for _, a := range r.auctions {
		if a.CreatorID == creatorID {
			auctions = append(auctions, a)
		}
	}
	return auctions, nil
}

// GetLeadingBid returns the bid with the highest amount for the auction, or
// nil when no bids exist. Only the single maximum is derived, never the full
// history.
func (r *MemoryRepo) GetLeadingBid(ctx context.Context, auctionID string) (*model.Bid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get leading bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	bids := r.bids[auctionID]
	if len(bids) == 0 {
		return nil, nil
	}

	leading := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(leading.Amount) {
			leading = b
		}
	}
	return &leading, nil
}

// InsertBidIfHighest inserts the bid only if no existing bid for the same
// auction has an equal or higher amount. The predicate and the insert happen
// under one critical section, which stands in for the conditional write a
// SQL-backed implementation would express as a guarded INSERT.
func (r *MemoryRepo) InsertBidIfHighest(ctx context.Context, bid model.Bid) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("insert bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}

	for _, b := range r.bids[bid.AuctionID] {
		if b.Amount.GreaterThanOrEqual(bid.Amount) {
			return fmt.Errorf("insert bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrLeaderChanged)
		}
	}

	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	r.bidOwner[bid.BidID] = bid.AuctionID
	return nil
}

// GetBid returns the bid with the given id
func (r *MemoryRepo) GetBid(ctx context.Context, bidID string) (model.Bid, error) {
	if err := ctx.Err(); err != nil {
		return model.Bid{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctionID, ok := r.bidOwner[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	for _, b := range r.bids[auctionID] {
		if b.BidID == bidID {
			return b, nil
		}
	}
	return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
}

// DeleteBid removes the bid with the given id
func (r *MemoryRepo) DeleteBid(ctx context.Context, bidID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	auctionID, ok := r.bidOwner[bidID]
	if !ok {
		return fmt.Errorf("delete bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}

	bids := r.bids[auctionID]
	for i, b := range bids {
		if b.BidID == bidID {
			r.bids[auctionID] = append(bids[:i:i], bids[i+1:]...)
			break
		}
	}
	delete(r.bidOwner, bidID)
	return nil
}

// ListBids returns all bids matching the filter in the requested order
func (r *MemoryRepo) ListBids(ctx context.Context, filter BidFilter, order BidOrder) ([]model.Bid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bids []model.Bid
	collect := func(candidates []model.Bid) {
		for _, b := range candidates {
			if filter.UserID != "" && b.UserID != filter.UserID {
				continue
			}
			bids = append(bids, b)
		}
	}

	if filter.AuctionID != "" {
		collect(r.bids[filter.AuctionID])
	} else {
		for _, candidates := range r.bids {
			collect(candidates)
		}
	}

	switch order {
	case OrderAmountAsc:
		sort.Slice(bids, func(i, j int) bool { return bids[i].Amount.LessThan(bids[j].Amount) })
	case OrderAmountDesc:
		sort.Slice(bids, func(i, j int) bool { return bids[i].Amount.GreaterThan(bids[j].Amount) })
	}
	return bids, nil
}

// SumBidAmounts returns the total of all bid amounts for the auction,
// zero when no bids exist
func (r *MemoryRepo) SumBidAmounts(ctx context.Context, auctionID string) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, b := range r.bids[auctionID] {
		total = total.Add(b.Amount)
	}
	return total, nil
}
