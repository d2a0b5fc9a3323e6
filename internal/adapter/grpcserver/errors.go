package grpcserver

import (
	"context"
	"errors"

	"lyft_client/internal/usecase"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codeOf(err), err.Error())
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidRequest):
		return codes.InvalidArgument
	case errors.Is(err, usecase.ErrAuthFailure):
		return codes.Unauthenticated
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return codes.NotFound
	case errors.Is(err, usecase.ErrUnmappedService),
		errors.Is(err, usecase.ErrRideNotBooked),
		errors.Is(err, usecase.ErrRideAlreadyBooked):
		return codes.FailedPrecondition
	case errors.Is(err, usecase.ErrUpstreamFailure):
		return codes.Unavailable
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}
