package grpcserver

import (
	"strings"
	"time"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase"

	"google.golang.org/protobuf/types/known/timestamppb"
)

func toEstimatesQuery(req *GetEstimatesRequest) usecase.EstimatesQuery {
	return usecase.EstimatesQuery{
		Origin:      fromLocationModel(req.StartPoint),
		Destination: fromLocationModel(req.EndPoint),
		Seats:       int(req.Seats),
		ServiceIDs:  req.Services,
	}
}

func toEstimateModel(q entities.Quote) *EstimateModel {
	m := &EstimateModel{
		EstimateID:      q.EstimateID,
		ServiceID:       q.ServiceID,
		DisplayName:     q.DisplayName,
		PriceDetails:    toCurrencyModel(q.Price),
		Distance:        q.DistanceMiles,
		DurationSeconds: int32(q.DurationSeconds),
		Seats:           int32(q.Seats),
		ValidUntil:      toTimestamp(q.ValidUntil),
		WayPoints:       make([]*LocationModel, 0, len(q.WayPoints)),
	}
	for _, wp := range q.WayPoints {
		m.WayPoints = append(m.WayPoints, toLocationModel(wp))
	}
	return m
}

func toRideModel(s entities.RideStatus) *RideModel {
	m := &RideModel{
		RideID:                 s.RideID,
		EstimatedTimeOfArrival: toTimestamp(s.EstimatedPickup),
		RiderOnBoard:           s.RiderOnBoard,
		Price:                  toCurrencyModel(s.Price),
		Driver: &DriverModel{
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
		m.DriverLocation = toLocationModel(*s.DriverLocation)
	}
	return m
}

func toCurrencyModel(m entities.Money) *CurrencyModel {
	return &CurrencyModel{Price: m.Major(), Currency: m.Currency, Description: m.Description}
}

func toLocationModel(l entities.Location) *LocationModel {
	return &LocationModel{Latitude: l.Latitude, Longitude: l.Longitude, Address: l.Address}
}

func fromLocationModel(l *LocationModel) entities.Location {
	if l == nil {
		return entities.Location{}
	}
	return entities.Location{Latitude: l.Latitude, Longitude: l.Longitude, Address: l.Address}
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func carDescription(v entities.Vehicle) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{v.Color, v.Make, v.Model} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
