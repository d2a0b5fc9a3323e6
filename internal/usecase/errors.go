package usecase

import "errors"

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrInvalidRequest    = errors.New("invalid estimate request")
	ErrAuthFailure       = errors.New("access token unavailable")
	ErrUpstreamFailure   = errors.New("upstream provider failure")
	ErrUnmappedService   = errors.New("unmapped service id")
	ErrRideNotBooked     = errors.New("ride not booked for estimate")
	ErrRideAlreadyBooked = errors.New("ride already booked for estimate")
)
