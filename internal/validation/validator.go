package validation

import (
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/lifecycle"
	"auction-engine/internal/models"
)

// ValidateBid judges a candidate bid against an auction snapshot and the
// current leading bid (nil when the auction has none). It is deliberately
// pure: every fact arrives as a parameter, so each rejection path can be
// tested without storage or timing. A nil return means the candidate may be
// admitted; otherwise the first failing check in order decides the reason.
//
// The caller must re-run this with a freshly fetched leading bid on every
// admission retry, since a stale leader is exactly the race the admission
// path guards against.
func ValidateBid(auction *models.Auction, leading *models.Bid, candidate models.Bid, now time.Time) error {
	if candidate.AuctionID == "" || candidate.UserID == "" {
		return fmt.Errorf("validate: %w - missing auctionID or userID", auctionerrors.ErrInvalidBid)
	}
	if candidate.Amount.Sign() <= 0 {
		return fmt.Errorf("validate: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	if auction == nil {
		return fmt.Errorf("validate: auction %s: %w", candidate.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if candidate.UserID == auction.CreatorID {
		return fmt.Errorf("validate: %w", auctionerrors.ErrSelfBidding)
	}
	if state := lifecycle.State(*auction, now); state != models.StateOpen {
		return fmt.Errorf("validate: %w - auction is %s", auctionerrors.ErrAuctionNotOpen, state)
	}
	if !candidate.Amount.GreaterThan(auction.StartingBid) {
		return fmt.Errorf("validate: %w - starting bid is %s", auctionerrors.ErrBelowStartingBid, auction.StartingBid)
	}
	if leading != nil && !candidate.Amount.GreaterThan(leading.Amount) {
		return fmt.Errorf("validate: %w - current leading bid is %s", auctionerrors.ErrBelowLeadingBid, leading.Amount)
	}

	return nil
}
