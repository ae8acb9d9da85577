package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"auction-engine/internal/auctionerrors"
	auction "auction-engine/internal/auctionService"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/services/auctions/helpers"
)

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	mockQueries := NewMockQueryServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService, mockQueries)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions", handler.CreateAuctionHandler)

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_auction",
			requestBody: helpers.CreateAuctionRequest{
				Brand:            "Porsche",
				Model:            "911 Carrera",
				Year:             1987,
				StartingBid:      decimal.NewFromInt(45000),
				AuctionStartDate: start,
				AuctionEndDate:   end,
				CreatorID:        "seller1",
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, in auction.AuctionInput) (model.Auction, error) {
						require.Equal(t, "Porsche", in.Brand)
						require.True(t, in.StartingBid.Equal(decimal.NewFromInt(45000)))
						return model.Auction{
							AuctionID:   uuid.NewString(),
							Brand:       in.Brand,
							Model:       in.Model,
							Year:        in.Year,
							StartingBid: in.StartingBid,
							StartDate:   in.StartDate,
							EndDate:     in.EndDate,
							CreatorID:   in.CreatorID,
							Status:      model.StatusActive,
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				auctionID := data["auction_id"].(string)
				_, parseErr := uuid.Parse(auctionID)
				require.NoError(t, parseErr, "AuctionID should be a valid UUID")
				require.Equal(t, "Porsche", data["brand"])
				require.Equal(t, "45000", data["starting_bid"])
				require.Equal(t, string(model.StatusActive), data["status"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{not json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_creator_id",
			requestBody: map[string]any{
				"brand":              "BMW",
				"model":              "E30 M3",
				"year":               1990,
				"starting_bid":       60000,
				"auction_start_date": start,
				"auction_end_date":   end,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "end_before_start",
			requestBody: helpers.CreateAuctionRequest{
				Brand:            "BMW",
				Model:            "E30 M3",
				Year:             1990,
				StartingBid:      decimal.NewFromInt(60000),
				AuctionStartDate: end,
				AuctionEndDate:   start,
				CreatorID:        "seller1",
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction(gomock.Any(), gomock.Any()).
					Return(model.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidAuction))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid auction details",
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			var body []byte
			switch v := tc.requestBody.(type) {
			case string:
				body = []byte(v)
			default:
				var err error
				body, err = json.Marshal(v)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/auctions", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var envelope map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			require.Equal(t, tc.expectedMsg, envelope["message"])

			if tc.validateData != nil {
				data, ok := envelope["data"].(map[string]any)
				require.True(t, ok, "expected data object in response")
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetAuctionHandler
func TestGetAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	mockQueries := NewMockQueryServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService, mockQueries)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id", handler.GetAuctionHandler)

	t.Run("found", func(t *testing.T) {
		mockQueries.EXPECT().
			AuctionByID(gomock.Any(), "auction1").
			Return(model.Auction{
				AuctionID:   "auction1",
				Brand:       "Toyota",
				Model:       "Supra MK4",
				Year:        1995,
				StartingBid: decimal.NewFromInt(35000),
				Status:      model.StatusActive,
			}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auctions/auction1", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		data := envelope["data"].(map[string]any)
		require.Equal(t, "auction1", data["auction_id"])
		require.Equal(t, "Toyota", data["brand"])
	})

	t.Run("not_found", func(t *testing.T) {
		mockQueries.EXPECT().
			AuctionByID(gomock.Any(), "missing").
			Return(model.Auction{}, fmt.Errorf("query: %w", auctionerrors.ErrAuctionNotFound))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auctions/missing", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test SearchAuctionsHandler query param handling
func TestSearchAuctionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	mockQueries := NewMockQueryServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService, mockQueries)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions", handler.SearchAuctionsHandler)

	t.Run("filters_forwarded", func(t *testing.T) {
		mockQueries.EXPECT().
			SearchAuctions(gomock.Any(), repository.AuctionFilter{Brand: "Porsche", Year: 1987}).
			Return([]model.Auction{
				{AuctionID: "auction1", Brand: "Porsche", Year: 1987, StartingBid: decimal.NewFromInt(45000)},
			}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auctions?brand=Porsche&year=1987", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		results := envelope["data"].([]any)
		require.Len(t, results, 1)
	})

	t.Run("invalid_year", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auctions?year=notayear", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Test CancelAuctionHandler
func TestCancelAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	mockQueries := NewMockQueryServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService, mockQueries)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/cancel", handler.CancelAuctionHandler)

	mockService.EXPECT().
		CancelAuction(gomock.Any(), "auction1").
		Return(model.Auction{AuctionID: "auction1", Status: model.StatusCancelled}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auctions/auction1/cancel", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope["data"].(map[string]any)
	require.Equal(t, string(model.StatusCancelled), data["status"])
}
