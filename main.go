package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	auction "auction-engine/internal/auctionService"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/clock"
	model "auction-engine/internal/models"
	query "auction-engine/internal/queryService"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/utils"
)

func main() {

	repo := repository.NewMemoryRepo()
	clk := clock.NewSystem()

	prepopulateAuctions(repo, clk)

	auctionSvc := auction.NewAuctionService(repo, clk)
	biddingSvc := bidding.NewBiddingService(repo, clk)
	querySvc := query.NewQueryService(repo)

	router := server.SetupRouter(auctionSvc, biddingSvc, querySvc)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateAuctions adds sample auctions to the in-memory repo
func prepopulateAuctions(repo *repository.MemoryRepo, clk clock.Clock) {
	now := clk.Now()
	auctions := []model.Auction{
		{
			AuctionID:   "auction1",
			Brand:       "Porsche",
			Model:       "911 Carrera",
			Year:        1987,
			StartingBid: decimal.NewFromInt(45000),
			StartDate:   now,
			EndDate:     now.Add(72 * time.Hour),
			CreatorID:   "seller1",
			Status:      model.StatusActive,
		},
		{
			AuctionID:   "auction2",
			Brand:       "BMW",
			Model:       "E30 M3",
			Year:        1990,
			StartingBid: decimal.NewFromInt(60000),
			StartDate:   now.Add(24 * time.Hour),
			EndDate:     now.Add(96 * time.Hour),
			CreatorID:   "seller2",
			Status:      model.StatusActive,
		},
		{
			AuctionID:   "auction3",
			Brand:       "Toyota",
			Model:       "Supra MK4",
			Year:        1995,
			StartingBid: decimal.NewFromInt(35000),
			StartDate:   now,
			EndDate:     now.Add(48 * time.Hour),
			CreatorID:   "seller1",
			Status:      model.StatusActive,
		},
	}

	for _, a := range auctions {
		if err := repo.CreateAuction(context.Background(), a); err != nil {
			utils.Fatal("failed to seed auction", map[string]any{"auction_id": a.AuctionID, "error": err.Error()})
		}
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
