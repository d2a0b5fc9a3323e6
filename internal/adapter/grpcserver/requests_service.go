package grpcserver

import (
	"context"

	"lyft_client/internal/usecase"
	"lyft_client/pkg/logger"
)

//go:generate mockgen -source=../../usecase/ride_usecase.go -destination=mocks/mock_ride_usecase.go -package=mocks

// RequestsService adapts the ride use case to internal.Requests.
type RequestsService struct {
	uc  usecase.IRideUseCase
	log logger.ILogger
}

var _ RequestsServer = (*RequestsService)(nil)

func NewRequestsService(uc usecase.IRideUseCase, log logger.ILogger) *RequestsService {
	return &RequestsService{uc: uc, log: log}
}

func (s *RequestsService) PostRideRequest(ctx context.Context, req *PostRideRequestModel) (*RideModel, error) {
	credential, err := sessionCredential(ctx)
	if err != nil {
		return nil, err
	}

	ride, err := s.uc.BookRide(ctx, credential, req.EstimateID)
	if err != nil {
		s.log.Warning("[ride][grpc] PostRideRequest failed", logger.String("estimate_id", req.EstimateID), logger.Error(err))
		return nil, toStatusError(err)
	}
	return toRideModel(ride), nil
}

func (s *RequestsService) GetRideRequest(ctx context.Context, req *GetRideRequestModel) (*RideModel, error) {
	credential, err := sessionCredential(ctx)
	if err != nil {
		return nil, err
	}

	ride, err := s.uc.GetRide(ctx, credential, req.RideID)
	if err != nil {
		s.log.Warning("[ride][grpc] GetRideRequest failed", logger.String("ride_id", req.RideID), logger.Error(err))
		return nil, toStatusError(err)
	}
	return toRideModel(ride), nil
}

// DeleteRideRequest cancels the ride and answers with the cancellation fee.
func (s *RequestsService) DeleteRideRequest(ctx context.Context, req *DeleteRideRequestModel) (*CurrencyModel, error) {
	credential, err := sessionCredential(ctx)
	if err != nil {
		return nil, err
	}

	fee, err := s.uc.CancelRide(ctx, credential, req.RideID)
	if err != nil {
		s.log.Warning("[ride][grpc] DeleteRideRequest failed", logger.String("ride_id", req.RideID), logger.Error(err))
		return nil, toStatusError(err)
	}
	return toCurrencyModel(fee.Price), nil
}
