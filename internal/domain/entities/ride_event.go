package entities

import "time"

type RideEventType string

const (
	RideEventBooked    RideEventType = "ride.booked"
	RideEventCancelled RideEventType = "ride.cancelled"
)

// RideEvent is published whenever a ride changes state through this service.
type RideEvent struct {
	ID         string        `json:"id"`
	Type       RideEventType `json:"type"`
	EstimateID string        `json:"estimate_id"`
	RideID     string        `json:"ride_id"`
	ServiceID  string        `json:"service_id"`
	Price      *Money        `json:"price,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}
