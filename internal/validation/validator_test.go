package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

func openAuction(now time.Time) *model.Auction {
	return &model.Auction{
		AuctionID:   "auction1",
		StartingBid: decimal.NewFromInt(10000),
		StartDate:   now.Add(-time.Hour),
		EndDate:     now.Add(time.Hour),
		CreatorID:   "seller1",
		Status:      model.StatusActive,
	}
}

func candidate(auctionID, userID string, amount int64) model.Bid {
	return model.Bid{
		BidID:     "bid1",
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    decimal.NewFromInt(amount),
	}
}

func TestValidateBid(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	leader := &model.Bid{BidID: "leader", AuctionID: "auction1", UserID: "user1", Amount: decimal.NewFromInt(10500)}

	tests := []struct {
		name          string
		auction       func() *model.Auction
		leading       *model.Bid
		candidate     model.Bid
		expectedError error
	}{
		{
			name:      "first_bid_above_starting",
			auction:   func() *model.Auction { return openAuction(now) },
			candidate: candidate("auction1", "user1", 10500),
		},
		{
			name:      "outbids_current_leader",
			auction:   func() *model.Auction { return openAuction(now) },
			leading:   leader,
			candidate: candidate("auction1", "user2", 11000),
		},
		{
			name:          "missing_auction_id",
			auction:       func() *model.Auction { return openAuction(now) },
			candidate:     candidate("", "user1", 10500),
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "missing_user_id",
			auction:       func() *model.Auction { return openAuction(now) },
			candidate:     candidate("auction1", "", 10500),
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "zero_amount",
			auction:       func() *model.Auction { return openAuction(now) },
			candidate:     candidate("auction1", "user1", 0),
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "negative_amount",
			auction:       func() *model.Auction { return openAuction(now) },
			candidate:     candidate("auction1", "user1", -50),
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "auction_missing",
			auction:       func() *model.Auction { return nil },
			candidate:     candidate("auctionX", "user1", 10500),
			expectedError: auctionerrors.ErrAuctionNotFound,
		},
		{
			name:          "creator_bids_on_own_auction",
			auction:       func() *model.Auction { return openAuction(now) },
			candidate:     candidate("auction1", "seller1", 10500),
			expectedError: auctionerrors.ErrSelfBidding,
		},
		{
			// Self-bidding outranks the lifecycle check
			name: "creator_bids_on_own_closed_auction",
			auction: func() *model.Auction {
				a := openAuction(now)
				a.EndDate = now.Add(-time.Minute)
				return a
			},
			candidate:     candidate("auction1", "seller1", 10500),
			expectedError: auctionerrors.ErrSelfBidding,
		},
		{
			name: "auction_not_started",
			auction: func() *model.Auction {
				a := openAuction(now)
				a.StartDate = now.Add(time.Minute)
				return a
			},
			candidate:     candidate("auction1", "user1", 10500),
			expectedError: auctionerrors.ErrAuctionNotOpen,
		},
		{
			name: "auction_closed",
			auction: func() *model.Auction {
				a := openAuction(now)
				a.EndDate = now.Add(-time.Minute)
				return a
			},
			candidate:     candidate("auction1", "user1", 10500),
			expectedError: auctionerrors.ErrAuctionNotOpen,
		},
		{
			name: "auction_cancelled",
			auction: func() *model.Auction {
				a := openAuction(now)
				a.Status = model.StatusCancelled
				return a
			},
			candidate:     candidate("auction1", "user1", 10500),
			expectedError: auctionerrors.ErrAuctionNotOpen,
		},
		{
			name:          "below_starting_bid",
			auction:       func() *model.Auction { return openAuction(now) },
			candidate:     candidate("auction1", "user1", 9999),
			expectedError: auctionerrors.ErrBelowStartingBid,
		},
		{
			name:          "equal_to_starting_bid",
			auction:       func() *model.Auction { return openAuction(now) },
			candidate:     candidate("auction1", "user1", 10000),
			expectedError: auctionerrors.ErrBelowStartingBid,
		},
		{
			// Starting-bid check outranks the leader check
			name:          "below_starting_bid_with_leader_present",
			auction:       func() *model.Auction { return openAuction(now) },
			leading:       leader,
			candidate:     candidate("auction1", "user2", 9000),
			expectedError: auctionerrors.ErrBelowStartingBid,
		},
		{
			name:          "below_current_leader",
			auction:       func() *model.Auction { return openAuction(now) },
			leading:       leader,
			candidate:     candidate("auction1", "user2", 10200),
			expectedError: auctionerrors.ErrBelowLeadingBid,
		},
		{
			name:          "equal_to_current_leader",
			auction:       func() *model.Auction { return openAuction(now) },
			leading:       leader,
			candidate:     candidate("auction1", "user2", 10500),
			expectedError: auctionerrors.ErrBelowLeadingBid,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateBid(tc.auction(), tc.leading, tc.candidate, now)
			if tc.expectedError == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
			}
		})
	}
}
