package grpcserver

import (
	"context"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase"
	"lyft_client/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//go:generate mockgen -source=../../usecase/estimate_usecase.go -destination=mocks/mock_estimate_usecase.go -package=mocks

// EstimatesService adapts the estimate use case to internal.Estimates.
type EstimatesService struct {
	uc  usecase.IEstimateUseCase
	log logger.ILogger
}

var _ EstimatesServer = (*EstimatesService)(nil)

func NewEstimatesService(uc usecase.IEstimateUseCase, log logger.ILogger) *EstimatesService {
	return &EstimatesService{uc: uc, log: log}
}

// GetEstimates streams one EstimateModel per priced cost line, in request order.
func (s *EstimatesService) GetEstimates(req *GetEstimatesRequest, stream grpc.ServerStreamingServer[EstimateModel]) error {
	ctx := stream.Context()
	credential, err := sessionCredential(ctx)
	if err != nil {
		return err
	}
	if req.StartPoint == nil || req.EndPoint == nil {
		return status.Error(codes.InvalidArgument, "start_point and end_point are required")
	}

	s.log.Info("[estimate][grpc] GetEstimates", logger.Int("services", len(req.Services)), logger.Int("seats", int(req.Seats)))

	err = s.uc.StreamEstimates(ctx, credential, toEstimatesQuery(req), func(q entities.Quote) error {
		return stream.Send(toEstimateModel(q))
	})
	if err != nil {
		s.log.Warning("[estimate][grpc] GetEstimates failed", logger.Error(err))
		return toStatusError(err)
	}
	return nil
}

func (s *EstimatesService) GetEstimateRefresh(ctx context.Context, req *GetEstimateRefreshRequest) (*EstimateModel, error) {
	credential, err := sessionCredential(ctx)
	if err != nil {
		return nil, err
	}

	q, err := s.uc.RefreshEstimate(ctx, credential, req.EstimateID)
	if err != nil {
		s.log.Warning("[estimate][grpc] GetEstimateRefresh failed", logger.String("estimate_id", req.EstimateID), logger.Error(err))
		return nil, toStatusError(err)
	}
	return toEstimateModel(q), nil
}
