package grpcserver

import "google.golang.org/protobuf/types/known/timestamppb"

// Message contracts of the internal Estimates and Requests services. They travel as
// JSON through the grpcjson codec.

type LocationModel struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// CurrencyModel carries a price in major currency units.
type CurrencyModel struct {
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
}

type GetEstimatesRequest struct {
	StartPoint *LocationModel `json:"start_point"`
	EndPoint   *LocationModel `json:"end_point"`
	Services   []string       `json:"services"`
	Seats      int32          `json:"seats,omitempty"`
}

type GetEstimateRefreshRequest struct {
	EstimateID string `json:"estimate_id"`
}

type EstimateModel struct {
	EstimateID      string                 `json:"estimate_id"`
	ServiceID       string                 `json:"requested_service_id"`
	DisplayName     string                 `json:"display_name"`
	PriceDetails    *CurrencyModel         `json:"price_details"`
	Distance        float64                `json:"distance"`
	DurationSeconds int32                  `json:"duration_seconds"`
	Seats           int32                  `json:"seats"`
	ValidUntil      *timestamppb.Timestamp `json:"valid_until,omitempty"`
	WayPoints       []*LocationModel       `json:"way_points"`
}

type PostRideRequestModel struct {
	EstimateID string `json:"estimate_id"`
}

type GetRideRequestModel struct {
	RideID string `json:"ride_id"`
}

type DeleteRideRequestModel struct {
	RideID string `json:"ride_id"`
}

type DriverModel struct {
	DisplayName         string `json:"display_name"`
	DriverPronunciation string `json:"driver_pronunciation"`
	LicensePlate        string `json:"license_plate"`
	CarPicture          string `json:"car_picture"`
	CarDescription      string `json:"car_description"`
	DriverPicture       string `json:"driver_picture,omitempty"`
}

type RideModel struct {
	RideID                 string                 `json:"ride_id"`
	EstimatedTimeOfArrival *timestamppb.Timestamp `json:"estimated_time_of_arrival,omitempty"`
	RiderOnBoard           bool                   `json:"rider_on_board"`
	Price                  *CurrencyModel         `json:"price"`
	Driver                 *DriverModel           `json:"driver"`
	RideStage              string                 `json:"ride_stage"`
	DriverLocation         *LocationModel         `json:"driver_location,omitempty"`
}
