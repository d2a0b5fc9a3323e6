package interfaces

import (
	"context"

	"lyft_client/internal/domain/entities"
)

//go:generate mockgen -source=ride_event_publisher_interface.go -destination=mocks/mock_ride_event_publisher_interface.go -package=mock_interfaces

// IRideEventPublisher fans ride lifecycle events out to other services.
// Publishing is best-effort; a failure never fails the ride operation.
type IRideEventPublisher interface {
	Publish(ctx context.Context, event entities.RideEvent) error
}
