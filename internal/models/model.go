package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the stored flag on an auction, independent of its time
// window. Cancellation is a manual action and overrides the window.
type AuctionStatus string

const (
	StatusActive    AuctionStatus = "active"
	StatusCancelled AuctionStatus = "cancelled"
)

// AuctionState is the lifecycle state derived from the stored status flag
// and the time window at a given instant.
type AuctionState string

const (
	StateScheduled AuctionState = "scheduled"
	StateOpen      AuctionState = "open"
	StateClosed    AuctionState = "closed"
	StateCancelled AuctionState = "cancelled"
)

// Auction represents a timed listing with a starting bid and bidding window
type Auction struct {
	AuctionID   string          `json:"auction_id"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	Year        int             `json:"year"`
	StartingBid decimal.Decimal `json:"starting_bid"`
	StartDate   time.Time       `json:"auction_start_date"`
	EndDate     time.Time       `json:"auction_end_date"`
	CreatorID   string          `json:"creator_id"`
	Status      AuctionStatus   `json:"status"`
}

// Bid represents a user's bid on an auction. Bids are immutable once admitted.
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
