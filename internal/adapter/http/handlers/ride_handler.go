package handlers

import (
	"net/http"

	response "lyft_client/internal/adapter/http/dto/response"
	"lyft_client/internal/usecase"
	"lyft_client/pkg/logger"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=../../../usecase/ride_usecase.go -destination=mocks/mock_ride_usecase.go -package=mocks

// RideHandler is the HTTP mirror of internal.Requests.
type RideHandler struct {
	usecase usecase.IRideUseCase
	log     logger.ILogger
}

func NewRideHandler(uc usecase.IRideUseCase, log logger.ILogger) *RideHandler {
	return &RideHandler{usecase: uc, log: log}
}

// BookRide godoc
// @Summary      Book a ride
// @Description  Books the ride priced by a cached estimate. The estimate id becomes the ride id.
// @Tags         rides
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      201          {object}  response.RideResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Failure      502          {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /rides/{estimate_id} [post]
func (h *RideHandler) BookRide(c *gin.Context) {
	credential, ok := sessionCredential(c)
	if !ok {
		abortWithError(c, errMissingCredential)
		return
	}

	estimateID := c.Param("estimate_id")
	ride, err := h.usecase.BookRide(c.Request.Context(), credential, estimateID)
	if err != nil {
		h.log.Warning("[ride][http] book failed", logger.String("estimate_id", estimateID), logger.Error(err))
		abortWithError(c, mapUseCaseError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromRideStatus(ride))
}

// GetRide godoc
// @Summary      Get ride status
// @Tags         rides
// @Produce      json
// @Param        ride_id  path      string  true  "Ride ID"
// @Success      200      {object}  response.RideResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /rides/{ride_id} [get]
func (h *RideHandler) GetRide(c *gin.Context) {
	credential, ok := sessionCredential(c)
	if !ok {
		abortWithError(c, errMissingCredential)
		return
	}

	rideID := c.Param("ride_id")
	ride, err := h.usecase.GetRide(c.Request.Context(), credential, rideID)
	if err != nil {
		h.log.Warning("[ride][http] get failed", logger.String("ride_id", rideID), logger.Error(err))
		abortWithError(c, mapUseCaseError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromRideStatus(ride))
}

// CancelRide godoc
// @Summary      Cancel a ride
// @Description  Cancels a booked ride and returns the fee quoted at booking time.
// @Tags         rides
// @Produce      json
// @Param        ride_id  path      string  true  "Ride ID"
// @Success      200      {object}  response.CancellationResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /rides/{ride_id} [delete]
func (h *RideHandler) CancelRide(c *gin.Context) {
	credential, ok := sessionCredential(c)
	if !ok {
		abortWithError(c, errMissingCredential)
		return
	}

	rideID := c.Param("ride_id")
	fee, err := h.usecase.CancelRide(c.Request.Context(), credential, rideID)
	if err != nil {
		h.log.Warning("[ride][http] cancel failed", logger.String("ride_id", rideID), logger.Error(err))
		abortWithError(c, mapUseCaseError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCancellation(fee))
}
