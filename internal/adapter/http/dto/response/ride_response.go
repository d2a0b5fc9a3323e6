package response

import (
	"strings"
	"time"

	"lyft_client/internal/domain/entities"
)

type DriverResponse struct {
	DisplayName         string `json:"display_name"`
	DriverPronunciation string `json:"driver_pronunciation"`
	LicensePlate        string `json:"license_plate"`
	CarPicture          string `json:"car_picture,omitempty"`
	CarDescription      string `json:"car_description"`
	DriverPicture       string `json:"driver_picture,omitempty"`
}

type RideResponse struct {
	RideID                 string            `json:"ride_id"`
	EstimatedTimeOfArrival *time.Time        `json:"estimated_time_of_arrival,omitempty"`
	RiderOnBoard           bool              `json:"rider_on_board"`
	Price                  CurrencyResponse  `json:"price"`
	Driver                 DriverResponse    `json:"driver"`
	RideStage              string            `json:"ride_stage"`
	DriverLocation         *LocationResponse `json:"driver_location,omitempty"`
}

// CancellationResponse is the fee charged by DELETE /v1/rides/:ride_id.
type CancellationResponse struct {
	RideID            string           `json:"ride_id"`
	CancellationPrice CurrencyResponse `json:"cancellation_price"`
}

func FromRideStatus(s entities.RideStatus) RideResponse {
	res := RideResponse{
		RideID:                 s.RideID,
		EstimatedTimeOfArrival: timePtr(s.EstimatedPickup),
		RiderOnBoard:           s.RiderOnBoard,
		Price:                  FromMoney(s.Price),
		Driver: DriverResponse{
			DisplayName:         s.Driver.FirstName,
			DriverPronunciation: s.Driver.FirstName,
			LicensePlate:        s.Vehicle.LicensePlate,
			CarPicture:          s.Vehicle.ImageURL,
			CarDescription:      carDescription(s.Vehicle),
			DriverPicture:       s.Driver.ImageURL,
		},
		RideStage: string(s.Stage),
	}
	if s.DriverLocation != nil {
		loc := FromLocation(*s.DriverLocation)
		res.DriverLocation = &loc
	}
	return res
}

func FromCancellation(c entities.CancellationPrice) CancellationResponse {
	return CancellationResponse{RideID: c.RideID, CancellationPrice: FromMoney(c.Price)}
}

// carDescription reads as "Color Make Model", skipping blanks.
func carDescription(v entities.Vehicle) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{v.Color, v.Make, v.Model} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
