package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	auction "auction-engine/internal/auctionService"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/services/auctions/helpers"
	"auction-engine/utils"
)

type AuctionServiceInterface interface {
	CreateAuction(ctx context.Context, in auction.AuctionInput) (model.Auction, error)
	UpdateAuction(ctx context.Context, auctionID string, in auction.AuctionInput) (model.Auction, error)
	CancelAuction(ctx context.Context, auctionID string) (model.Auction, error)
	DeleteAuction(ctx context.Context, auctionID string) error
}

type QueryServiceInterface interface {
	AuctionByID(ctx context.Context, auctionID string) (model.Auction, error)
	SearchAuctions(ctx context.Context, filter repository.AuctionFilter) ([]model.Auction, error)
	AuctionsByEndDate(ctx context.Context) ([]model.Auction, error)
	AuctionsByCreator(ctx context.Context, creatorID string) ([]model.Auction, error)
	HighestBid(ctx context.Context, auctionID string) (model.Bid, error)
	BidsForAuction(ctx context.Context, auctionID string, descending bool) ([]model.Bid, error)
	BidsByBidder(ctx context.Context, userID string) ([]model.Bid, error)
	TotalBidAmount(ctx context.Context, auctionID string) (decimal.Decimal, error)
	BidByID(ctx context.Context, bidID string) (model.Bid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
	queries QueryServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface, queries QueryServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service, queries: queries}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	created, err := h.service.CreateAuction(c.Request.Context(), auction.AuctionInput{
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		StartingBid: req.StartingBid,
		StartDate:   req.AuctionStartDate,
		EndDate:     req.AuctionEndDate,
		CreatorID:   req.CreatorID,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"creator_id": req.CreatorID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(created), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.AuctionID,
		"creator_id": created.CreatorID,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	found, err := h.queries.AuctionByID(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(found), "auction retrieved successfully")
}

// SearchAuctionsHandler handles GET /auctions with optional brand/model/year query params
func (h *AuctionHandler) SearchAuctionsHandler(c *gin.Context) {
	filter := repository.AuctionFilter{
		Brand: c.Query("brand"),
		Model: c.Query("model"),
	}
	if rawYear := c.Query("year"); rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid year: %w", err), "invalid year")
			return
		}
		filter.Year = year
	}

	auctions, err := h.queries.SearchAuctions(c.Request.Context(), filter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SearchAuctionsHandler: error searching auctions", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponses(auctions), "auctions retrieved successfully")
	helpers.LogSuccess("SearchAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// ClosingAuctionsHandler handles GET /auctions/closing, ordered by end date ascending
func (h *AuctionHandler) ClosingAuctionsHandler(c *gin.Context) {
	auctions, err := h.queries.AuctionsByEndDate(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ClosingAuctionsHandler: error listing auctions", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponses(auctions), "auctions retrieved successfully")
}

// UpdateAuctionHandler handles PUT /auctions/:auction_id
func (h *AuctionHandler) UpdateAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	updated, err := h.service.UpdateAuction(c.Request.Context(), auctionID, auction.AuctionInput{
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		StartingBid: req.StartingBid,
		StartDate:   req.AuctionStartDate,
		EndDate:     req.AuctionEndDate,
		CreatorID:   req.CreatorID,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdateAuctionHandler: failed to update auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(updated), "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// CancelAuctionHandler handles POST /auctions/:auction_id/cancel
func (h *AuctionHandler) CancelAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	cancelled, err := h.service.CancelAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CancelAuctionHandler: failed to cancel auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(cancelled), "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:auction_id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	if err := h.service.DeleteAuction(c.Request.Context(), auctionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DeleteAuctionHandler: failed to delete auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"deleted": true}, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// GetAuctionsByCreatorHandler handles GET /users/:user_id/auctions
func (h *AuctionHandler) GetAuctionsByCreatorHandler(c *gin.Context) {
	userID := c.Param("user_id")
	auctions, err := h.queries.AuctionsByCreator(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionsByCreatorHandler: error retrieving auctions", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponses(auctions), "auctions retrieved successfully")
}
