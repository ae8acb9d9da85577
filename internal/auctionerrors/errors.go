package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrNoBids          = errors.New("no bids found for auction")

	// ErrLeaderChanged is returned by the conditional bid insert when a bid of
	// equal or higher amount already exists for the auction at commit time.
	ErrLeaderChanged = errors.New("leading bid changed")
)

// business logic errors
var (
	ErrInvalidAuction       = errors.New("invalid auction details")
	ErrInvalidBid           = errors.New("invalid bid")
	ErrSelfBidding          = errors.New("bidder cannot bid on their own auction")
	ErrAuctionNotOpen       = errors.New("auction is not open for bidding")
	ErrBelowStartingBid     = errors.New("bid amount must exceed the starting bid")
	ErrBelowLeadingBid      = errors.New("bid amount must exceed the current leading bid")
	ErrAdmissionContention  = errors.New("bid admission retries exhausted under contention")
	ErrBidUpdateUnsupported = errors.New("bid updates are not supported")
)
