package repository

import (
	"context"

	"github.com/shopspring/decimal"

	model "auction-engine/internal/models"
)

// BidFilter narrows bid listings. Empty fields match everything.
type BidFilter struct {
	AuctionID string
	UserID    string
}

// AuctionFilter narrows auction listings by descriptive fields.
// Zero fields match everything.
type AuctionFilter struct {
	Brand string
	Model string
	Year  int
}

// BidOrder selects the amount ordering of a bid listing.
type BidOrder int

const (
	OrderInsertion BidOrder = iota
	OrderAmountAsc
	OrderAmountDesc
)

// AuctionDB defines the durable storage interface for the auction system.
//
// InsertBidIfHighest is the single conditional primitive the admission path
// relies on: implementations must evaluate the predicate "no existing bid for
// this auction has amount >= candidate.Amount" atomically with the insert and
// return ErrLeaderChanged when it fails. No other operation may write bids.
type AuctionDB interface {
	CreateAuction(ctx context.Context, auction model.Auction) error
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	UpdateAuction(ctx context.Context, auction model.Auction) error
	DeleteAuction(ctx context.Context, auctionID string) error
	ListAuctions(ctx context.Context, filter AuctionFilter) ([]model.Auction, error)
	ListAuctionsByEndDate(ctx context.Context) ([]model.Auction, error)
	ListAuctionsByCreator(ctx context.Context, creatorID string) ([]model.Auction, error)

	GetLeadingBid(ctx context.Context, auctionID string) (*model.Bid, error)
	InsertBidIfHighest(ctx context.Context, bid model.Bid) error
	GetBid(ctx context.Context, bidID string) (model.Bid, error)
	DeleteBid(ctx context.Context, bidID string) error
	ListBids(ctx context.Context, filter BidFilter, order BidOrder) ([]model.Bid, error)
	SumBidAmounts(ctx context.Context, auctionID string) (decimal.Decimal, error)
}
