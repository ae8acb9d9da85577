package helpers

import (
	"time"

	"github.com/shopspring/decimal"

	model "auction-engine/internal/models"
)

// Request DTOs
type CreateAuctionRequest struct {
	Brand            string          `json:"brand" binding:"required"`
	Model            string          `json:"model" binding:"required"`
	Year             int             `json:"year" binding:"required"`
	StartingBid      decimal.Decimal `json:"starting_bid" binding:"required"`
	AuctionStartDate time.Time       `json:"auction_start_date" binding:"required"`
	AuctionEndDate   time.Time       `json:"auction_end_date" binding:"required"`
	CreatorID        string          `json:"creator_id" binding:"required"`
}

type PlaceBidRequest struct {
	AuctionID string          `json:"auction_id" binding:"required"`
	UserID    string          `json:"user_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

type UpdateBidRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// Response DTOs
type AuctionResponse struct {
	AuctionID        string `json:"auction_id"`
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	Year             int    `json:"year"`
	StartingBid      string `json:"starting_bid"`
	AuctionStartDate string `json:"auction_start_date"`
	AuctionEndDate   string `json:"auction_end_date"`
	CreatorID        string `json:"creator_id"`
	Status           string `json:"status"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	UserID    string `json:"user_id"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`
}

// NewAuctionResponse converts a domain auction into its wire shape
func NewAuctionResponse(a model.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:        a.AuctionID,
		Brand:            a.Brand,
		Model:            a.Model,
		Year:             a.Year,
		StartingBid:      a.StartingBid.String(),
		AuctionStartDate: a.StartDate.UTC().Format(time.RFC3339),
		AuctionEndDate:   a.EndDate.UTC().Format(time.RFC3339),
		CreatorID:        a.CreatorID,
		Status:           string(a.Status),
	}
}

// NewAuctionResponses converts a slice of domain auctions
func NewAuctionResponses(auctions []model.Auction) []AuctionResponse {
	responses := make([]AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		responses = append(responses, NewAuctionResponse(a))
	}
	return responses
}

// NewBidResponse converts a domain bid into its wire shape
func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		AuctionID: b.AuctionID,
		UserID:    b.UserID,
		Amount:    b.Amount.String(),
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewBidResponses converts a slice of domain bids
func NewBidResponses(bids []model.Bid) []BidResponse {
	responses := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		responses = append(responses, NewBidResponse(b))
	}
	return responses
}
