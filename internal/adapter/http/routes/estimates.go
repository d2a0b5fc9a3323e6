package routes

import (
	"lyft_client/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathRides     = "/rides"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.StreamEstimates)
		estimates.GET("/:estimate_id/refresh", estimateHandler.RefreshEstimate)
	}
}

func addRideRoutes(rg *gin.RouterGroup, rideHandler *handlers.RideHandler) {
	rides := rg.Group(PathRides)
	{
		// The estimate id doubles as the ride id once booked.
		rides.POST("/:estimate_id", rideHandler.BookRide)
		rides.GET("/:ride_id", rideHandler.GetRide)
		rides.DELETE("/:ride_id", rideHandler.CancelRide)
	}
}
