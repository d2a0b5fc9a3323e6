package response

import (
	"time"

	"lyft_client/internal/domain/entities"
)

// CurrencyResponse is an amount in major units, ready for display.
type CurrencyResponse struct {
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type EstimateResponse struct {
	EstimateID      string             `json:"estimate_id"`
	ServiceID       string             `json:"requested_service_id"`
	DisplayName     string             `json:"display_name"`
	PriceDetails    CurrencyResponse   `json:"price_details"`
	Distance        float64            `json:"distance"`
	DurationSeconds int                `json:"duration_seconds"`
	Seats           int                `json:"seats"`
	ValidUntil      *time.Time         `json:"valid_until,omitempty"`
	WayPoints       []LocationResponse `json:"way_points"`
}

func FromQuote(q entities.Quote) EstimateResponse {
	res := EstimateResponse{
		EstimateID:      q.EstimateID,
		ServiceID:       q.ServiceID,
		DisplayName:     q.DisplayName,
		PriceDetails:    FromMoney(q.Price),
		Distance:        q.DistanceMiles,
		DurationSeconds: q.DurationSeconds,
		Seats:           q.Seats,
		ValidUntil:      timePtr(q.ValidUntil),
		WayPoints:       make([]LocationResponse, 0, len(q.WayPoints)),
	}
	for _, wp := range q.WayPoints {
		res.WayPoints = append(res.WayPoints, FromLocation(wp))
	}
	return res
}

func FromMoney(m entities.Money) CurrencyResponse {
	return CurrencyResponse{Price: m.Major(), Currency: m.Currency, Description: m.Description}
}

func FromLocation(l entities.Location) LocationResponse {
	return LocationResponse{Latitude: l.Latitude, Longitude: l.Longitude, Address: l.Address}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}
