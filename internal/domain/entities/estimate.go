package entities

import "time"

// BookingState tracks how far a booking got against the provider.
//
// It exists so that a crash between the upstream create call and the detail fetch
// leaves a record that can be reconciled instead of an invisible upstream ride.
type BookingState string

const (
	BookingStateNone     BookingState = ""
	BookingStateInFlight BookingState = "in_flight"
	BookingStateBooked   BookingState = "booked"
)

// Location is a geographic point. Address is optional and informational only.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// EstimateRequest is the caller's original estimate request for a single service.
// It is captured once when the estimate is created and never changed afterwards.
type EstimateRequest struct {
	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`
	Seats       int      `json:"seats"`
}

// Estimate is the correlation record between a quote, the request that produced it
// and, once booked, the upstream ride.
//
// Storage model:
//   - PK: id
//   - expires_at drives the TTL policy of the backing store
//
// Monetary representation:
//   - Cost and CancellationCost are kept in minor units (cents).
type Estimate struct {
	ID        string          `json:"id"`
	ServiceID string          `json:"service_id"`
	Request   EstimateRequest `json:"request"`
	Cost      Money           `json:"cost"`

	RideRequestID     string       `json:"ride_request_id,omitempty"`
	CancellationCost  *Money       `json:"cancellation_cost,omitempty"`
	CancellationToken string       `json:"cancellation_token,omitempty"`
	BookingState      BookingState `json:"booking_state,omitempty"`
	IdempotencyToken  string       `json:"idempotency_token,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsBooked reports whether an upstream ride exists for this estimate.
func (e Estimate) IsBooked() bool {
	return e.RideRequestID != ""
}

// HasCancellationTerms reports whether the booking finished the detail step.
func (e Estimate) HasCancellationTerms() bool {
	return e.CancellationCost != nil
}

// WayPoints returns the origin and destination of the original request.
func (e Estimate) WayPoints() []Location {
	return []Location{e.Request.Origin, e.Request.Destination}
}

// Quote is a priced estimate as handed to the caller.
type Quote struct {
	EstimateID      string
	ServiceID       string
	DisplayName     string
	Price           Money
	DistanceMiles   float64
	DurationSeconds int
	Seats           int
	ValidUntil      time.Time
	WayPoints       []Location
}
