package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-engine/internal/auctionerrors"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrSelfBidding):
		return http.StatusBadRequest, "bidder cannot bid on their own auction"
	case errors.Is(err, auctionerrors.ErrAuctionNotOpen):
		return http.StatusConflict, "auction is not open for bidding"
	case errors.Is(err, auctionerrors.ErrBelowStartingBid):
		return http.StatusConflict, "bid amount below starting bid"
	case errors.Is(err, auctionerrors.ErrBelowLeadingBid):
		return http.StatusConflict, "bid amount below current leading bid"
	case errors.Is(err, auctionerrors.ErrAdmissionContention):
		return http.StatusConflict, "bid lost to concurrent bids, please retry"
	case errors.Is(err, auctionerrors.ErrBidUpdateUnsupported):
		return http.StatusNotImplemented, "bid updates are not supported"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for auction"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
