package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lyft_client/internal/adapter/http/handlers"
	"lyft_client/internal/adapter/http/handlers/mocks"
	"lyft_client/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.NewNop()
	r := NewRouter(Handlers{
		Estimates: handlers.NewEstimateHandler(mocks.NewMockIEstimateUseCase(ctrl), log),
		Rides:     handlers.NewRideHandler(mocks.NewMockIRideUseCase(ctrl), log),
	}, log)

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("registers every operation", func(t *testing.T) {
		want := map[string]bool{
			"POST /v1/estimates":                     false,
			"GET /v1/estimates/:estimate_id/refresh": false,
			"POST /v1/rides/:estimate_id":            false,
			"GET /v1/rides/:ride_id":                 false,
			"DELETE /v1/rides/:ride_id":              false,
			"GET /swagger/*any":                      false,
		}
		for _, route := range r.Routes() {
			key := route.Method + " " + route.Path
			if _, ok := want[key]; ok {
				want[key] = true
			}
		}
		for key, found := range want {
			if !found {
				t.Fatalf("route %s not registered", key)
			}
		}
	})
}
