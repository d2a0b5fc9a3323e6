package request

import (
	"strings"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase"
)

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Address   string   `json:"address"`
}

// EstimatesRequest is the body of POST /v1/estimates.
type EstimatesRequest struct {
	StartPoint LocationRequest `json:"start_point" binding:"required"`
	EndPoint   LocationRequest `json:"end_point" binding:"required"`
	Services   []string        `json:"services" binding:"required,min=1"`
	Seats      int             `json:"seats"`
}

func (l LocationRequest) ToEntity() entities.Location {
	loc := entities.Location{Address: strings.TrimSpace(l.Address)}
	if l.Latitude != nil {
		loc.Latitude = *l.Latitude
	}
	if l.Longitude != nil {
		loc.Longitude = *l.Longitude
	}
	return loc
}

// ToQuery drops blank service ids; the use case decides what an empty list means.
func (r EstimatesRequest) ToQuery() usecase.EstimatesQuery {
	services := make([]string, 0, len(r.Services))
	for _, s := range r.Services {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}
	return usecase.EstimatesQuery{
		Origin:      r.StartPoint.ToEntity(),
		Destination: r.EndPoint.ToEntity(),
		Seats:       r.Seats,
		ServiceIDs:  services,
	}
}
