package server

import (
	handler "auction-engine/services/auctions/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionSvc handler.AuctionServiceInterface, biddingSvc handler.BiddingServiceInterface, querySvc handler.QueryServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionSvc, querySvc)
	biddingHandler := handler.NewBiddingHandler(biddingSvc, querySvc)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.SearchAuctionsHandler)
		auctions.GET("/closing", auctionHandler.ClosingAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.PUT("/:auction_id", auctionHandler.UpdateAuctionHandler)
		auctions.DELETE("/:auction_id", auctionHandler.DeleteAuctionHandler)
		auctions.POST("/:auction_id/cancel", auctionHandler.CancelAuctionHandler)
		auctions.GET("/:auction_id/bids", biddingHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/highest", biddingHandler.GetHighestBidHandler)
		auctions.GET("/:auction_id/total", biddingHandler.GetTotalBidAmountHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.SubmitBidHandler)
		bids.GET("/:bid_id", biddingHandler.GetBidHandler)
		bids.PUT("/:bid_id", biddingHandler.UpdateBidHandler)
		bids.DELETE("/:bid_id", biddingHandler.DeleteBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/auctions", auctionHandler.GetAuctionsByCreatorHandler)
		users.GET("/:user_id/bids", biddingHandler.GetBidsByBidderHandler)
	}

	return router
}
