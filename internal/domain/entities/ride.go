package entities

import "time"

// RideBooking is what the provider needs to create a ride.
type RideBooking struct {
	Origin           Location
	Destination      Location
	RideType         RideType
	Seats            int
	IdempotencyToken string
}

// CostLine is one fare option returned by the upstream pricing call.
type CostLine struct {
	RideType        string
	DisplayName     string
	Price           Money
	DistanceMiles   float64
	DurationSeconds int
}

type Driver struct {
	FirstName   string
	PhoneNumber string
	ImageURL    string
}

type Vehicle struct {
	Make         string
	Model        string
	Color        string
	LicensePlate string
	ImageURL     string
}

// RideDetail is the provider's view of a ride.
type RideDetail struct {
	RideID            string
	Status            ProviderRideStatus
	Price             *Money
	CancellationPrice *Money
	CancellationToken string
	Driver            Driver
	Vehicle           Vehicle
	Location          *Location
	PickupTime        time.Time
}

// RideStatus is the snapshot of a ride returned to the caller.
type RideStatus struct {
	RideID          string
	EstimatedPickup time.Time
	RiderOnBoard    bool
	Price           Money
	Driver          Driver
	Vehicle         Vehicle
	Stage           Stage
	DriverLocation  *Location
}

// CancellationPrice is the fee charged for cancelling a booked ride.
type CancellationPrice struct {
	RideID string
	Price  Money
}
