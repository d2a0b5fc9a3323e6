package interfaces

import (
	"context"

	"lyft_client/internal/domain/entities"
)

//go:generate mockgen -source=ride_provider_interface.go -destination=mocks/mock_ride_provider_interface.go -package=mock_interfaces

// IRideProvider abstracts the upstream rideshare API.
//
// Every call takes the access token explicitly; implementations must not keep
// per-user credentials between calls.
type IRideProvider interface {
	Estimate(ctx context.Context, accessToken string, origin, destination entities.Location, serviceName string) ([]entities.CostLine, error)
	CreateRide(ctx context.Context, accessToken string, booking entities.RideBooking) (rideID string, err error)
	GetRide(ctx context.Context, accessToken, rideID string) (entities.RideDetail, error)
	CancelRide(ctx context.Context, accessToken, rideID, cancellationToken string) error
}
