package lifecycle

import (
	"time"

	"auction-engine/internal/models"
)

// State derives the lifecycle state of an auction at the given instant.
// Every input maps to exactly one state; the stored cancelled flag is
// authoritative and overrides the time window.
func State(a models.Auction, now time.Time) models.AuctionState {
	if a.Status == models.StatusCancelled {
		return models.StateCancelled
	}

	switch {
	case now.Before(a.StartDate):
		return models.StateScheduled
	case now.Before(a.EndDate):
		return models.StateOpen
	default:
		return models.StateClosed
	}
}
