package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lyft_client/internal/adapter/http/handlers/mocks"
	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase"
	"lyft_client/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRideRouter(uc usecase.IRideUseCase) *gin.Engine {
	h := NewRideHandler(uc, logger.NewNop())
	r := gin.New()
	r.POST("/v1/rides/:estimate_id", h.BookRide)
	r.GET("/v1/rides/:ride_id", h.GetRide)
	r.DELETE("/v1/rides/:ride_id", h.CancelRide)
	return r
}

func sampleRide() entities.RideStatus {
	return entities.RideStatus{
		RideID:          "est-1",
		EstimatedPickup: time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC),
		Price:           entities.Money{Amount: 1725, Currency: "USD"},
		Driver:          entities.Driver{FirstName: "Ana"},
		Vehicle:         entities.Vehicle{Make: "Toyota", Model: "Prius", Color: "Blue", LicensePlate: "7ABC123"},
		Stage:           entities.StagePending,
	}
}

func TestRideHandler_BookRide(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRideRouter(mocks.NewMockIRideUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/rides/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("already booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRideUseCase(ctrl)
		r := newRideRouter(uc)

		uc.EXPECT().BookRide(gomock.Any(), "Bearer session-1", "est-1").Return(entities.RideStatus{}, usecase.ErrRideAlreadyBooked)

		req := httptest.NewRequest(http.MethodPost, "/v1/rides/est-1", nil)
		req.Header.Set("Authorization", "Bearer session-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRideUseCase(ctrl)
		r := newRideRouter(uc)

		uc.EXPECT().BookRide(gomock.Any(), "Bearer session-1", "est-1").Return(sampleRide(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/rides/est-1", nil)
		req.Header.Set("Authorization", "Bearer session-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["ride_id"] != "est-1" || body["ride_stage"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		driver, _ := body["driver"].(map[string]any)
		if driver["car_description"] != "Blue Toyota Prius" {
			t.Fatalf("unexpected driver: %v", driver)
		}
	})
}

func TestRideHandler_GetRide(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRideUseCase(ctrl)
		r := newRideRouter(uc)

		uc.EXPECT().GetRide(gomock.Any(), gomock.Any(), "est-1").Return(entities.RideStatus{}, usecase.ErrRideNotBooked)

		req := httptest.NewRequest(http.MethodGet, "/v1/rides/est-1", nil)
		req.Header.Set("Authorization", "Bearer session-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRideUseCase(ctrl)
		r := newRideRouter(uc)

		ride := sampleRide()
		ride.Stage = entities.StageAccepted
		ride.RiderOnBoard = true
		uc.EXPECT().GetRide(gomock.Any(), "Bearer session-1", "est-1").Return(ride, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/rides/est-1", nil)
		req.Header.Set("Authorization", "Bearer session-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["ride_stage"] != "accepted" || body["rider_on_board"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRideHandler_CancelRide(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRideUseCase(ctrl)
		r := newRideRouter(uc)

		uc.EXPECT().CancelRide(gomock.Any(), gomock.Any(), "missing").Return(entities.CancellationPrice{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/rides/missing", nil)
		req.Header.Set("Authorization", "Bearer session-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRideUseCase(ctrl)
		r := newRideRouter(uc)

		uc.EXPECT().CancelRide(gomock.Any(), "Bearer session-1", "est-1").Return(entities.CancellationPrice{
			RideID: "est-1",
			Price:  entities.Money{Amount: 500, Currency: "USD"},
		}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/rides/est-1", nil)
		req.Header.Set("Authorization", "Bearer session-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			RideID            string `json:"ride_id"`
			CancellationPrice struct {
				Price    float64 `json:"price"`
				Currency string  `json:"currency"`
			} `json:"cancellation_price"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.RideID != "est-1" || body.CancellationPrice.Price != 5 || body.CancellationPrice.Currency != "USD" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
