package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/services/auctions/helpers"
	"auction-engine/utils"
)

type BiddingServiceInterface interface {
	SubmitBid(ctx context.Context, auctionID, userID string, amount decimal.Decimal) (model.Bid, error)
	UpdateBid(ctx context.Context, bidID string, amount decimal.Decimal) (model.Bid, error)
	DeleteBid(ctx context.Context, bidID string) error
}

type BiddingHandler struct {
	service BiddingServiceInterface
	queries QueryServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface, queries QueryServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service, queries: queries}
}

// SubmitBidHandler handles POST /bids
func (h *BiddingHandler) SubmitBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bid, err := h.service.SubmitBid(c.Request.Context(), req.AuctionID, req.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitBidHandler: failed to submit bid", map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    req.UserID,
			"amount":     req.Amount.String(),
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid admitted successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid admitted successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"user_id":    bid.UserID,
		"amount":     bid.Amount.String(),
	})
}

// GetBidHandler handles GET /bids/:bid_id
func (h *BiddingHandler) GetBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	bid, err := h.queries.BidByID(c.Request.Context(), bidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHandler: error retrieving bid", map[string]any{"bid_id": bidID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid retrieved successfully")
}

// UpdateBidHandler handles PUT /bids/:bid_id. Bids are immutable once
// admitted, so this always answers 501.
func (h *BiddingHandler) UpdateBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")

	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	_, err := h.service.UpdateBid(c.Request.Context(), bidID, req.Amount)
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	utils.Warn("UpdateBidHandler: bid update rejected", map[string]any{"bid_id": bidID})
}

// DeleteBidHandler handles DELETE /bids/:bid_id
func (h *BiddingHandler) DeleteBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")

	if err := h.service.DeleteBid(c.Request.Context(), bidID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DeleteBidHandler: failed to delete bid", map[string]any{"bid_id": bidID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"deleted": true}, "bid deleted successfully")
	helpers.LogSuccess("DeleteBidHandler", "bid deleted successfully", map[string]any{"bid_id": bidID})
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids with an
// optional order=asc|desc query param (default descending by amount)
func (h *BiddingHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	descending := c.DefaultQuery("order", "desc") != "asc"

	bids, err := h.queries.BidsForAuction(c.Request.Context(), auctionID, descending)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByAuctionHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// GetHighestBidHandler handles GET /auctions/:auction_id/highest
func (h *BiddingHandler) GetHighestBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bid, err := h.queries.HighestBid(c.Request.Context(), auctionID)
	if err != nil {
		// No leading bid yet -> 404
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no leading bid found")
			utils.Info("GetHighestBidHandler: no leading bid found", map[string]any{"auction_id": auctionID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetHighestBidHandler: leading bid error", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "leading bid retrieved successfully")
}

// GetTotalBidAmountHandler handles GET /auctions/:auction_id/total
func (h *BiddingHandler) GetTotalBidAmountHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	total, err := h.queries.TotalBidAmount(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetTotalBidAmountHandler: error totalling bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID, "total": total.String()}, "total bid amount retrieved successfully")
}

// GetBidsByBidderHandler handles GET /users/:user_id/bids
func (h *BiddingHandler) GetBidsByBidderHandler(c *gin.Context) {
	userID := c.Param("user_id")
	bids, err := h.queries.BidsByBidder(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByBidderHandler: error retrieving bids", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByBidderHandler", "bids retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(bids),
	})
}
