package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"lyft_client/internal/usecase"
	"lyft_client/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingCredential = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing Authorization header", http.StatusUnauthorized)
	errInvalidPayload    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// sessionCredential returns the caller's Authorization header untouched; it is
// forwarded to the Users service as-is.
func sessionCredential(c *gin.Context) (string, bool) {
	v := strings.TrimSpace(c.GetHeader("Authorization"))
	return v, v != ""
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuthFailure):
		return pkg.NewDomainError("UNAUTHORIZED", "Could not obtain provider access token", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnmappedService):
		return pkg.NewDomainError("UNMAPPED_SERVICE", "Service is not mapped to a provider ride type", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrRideNotBooked):
		return pkg.NewDomainErrorSimple("RIDE_NOT_BOOKED", "No ride booked for this estimate", http.StatusConflict)
	case errors.Is(err, usecase.ErrRideAlreadyBooked):
		return pkg.NewDomainErrorSimple("RIDE_ALREADY_BOOKED", "A ride is already booked for this estimate", http.StatusConflict)
	case errors.Is(err, usecase.ErrUpstreamFailure):
		return pkg.NewDomainError("UPSTREAM_FAILURE", "Ride provider request failed", err, http.StatusBadGateway)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("TIMEOUT", "Request timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
