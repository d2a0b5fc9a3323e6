package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase/interfaces"
	"lyft_client/pkg/logger"

	"github.com/google/uuid"
)

// IRideUseCase exposes ride operations keyed by the estimate they were booked from.
//
//   - PostRideRequest => BookRide()
//   - GetRideRequest => GetRide()
//   - DeleteRideRequest => CancelRide()
type IRideUseCase interface {
	BookRide(ctx context.Context, credential, estimateID string) (entities.RideStatus, error)
	GetRide(ctx context.Context, credential, rideKey string) (entities.RideStatus, error)
	CancelRide(ctx context.Context, credential, rideKey string) (entities.CancellationPrice, error)
}

type RideUseCase struct {
	repo      interfaces.IEstimateRepository
	tokens    interfaces.IAccessTokenGateway
	provider  interfaces.IRideProvider
	publisher interfaces.IRideEventPublisher
	catalog   entities.ServiceCatalog
	policy    entities.TTLPolicy
	log       logger.ILogger

	now func() time.Time
}

var _ IRideUseCase = (*RideUseCase)(nil)

// NewRideUseCase wires the ride orchestrator. publisher may be nil.
func NewRideUseCase(
	repo interfaces.IEstimateRepository,
	tokens interfaces.IAccessTokenGateway,
	provider interfaces.IRideProvider,
	publisher interfaces.IRideEventPublisher,
	catalog entities.ServiceCatalog,
	policy entities.TTLPolicy,
	log logger.ILogger,
) *RideUseCase {
	return &RideUseCase{
		repo:      repo,
		tokens:    tokens,
		provider:  provider,
		publisher: publisher,
		catalog:   catalog,
		policy:    policy,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// BookRide creates an upstream ride from a stored estimate.
//
// The record is written three times: in flight before the create call, with the ride id
// right after it, and with the cancellation terms once the detail is known. A retry on a
// record that already carries a ride id resumes at the detail step.
func (u *RideUseCase) BookRide(ctx context.Context, credential, estimateID string) (entities.RideStatus, error) {
	estimate, err := loadEstimate(ctx, u.repo, estimateID)
	if err != nil {
		return entities.RideStatus{}, err
	}
	if estimate.IsBooked() && estimate.HasCancellationTerms() {
		return entities.RideStatus{}, ErrRideAlreadyBooked
	}

	svc, err := resolveService(u.catalog, estimate.ServiceID)
	if err != nil {
		return entities.RideStatus{}, err
	}

	token, err := fetchAccessToken(ctx, u.tokens, credential, svc.ID)
	if err != nil {
		return entities.RideStatus{}, err
	}

	if !estimate.IsBooked() {
		if estimate.IdempotencyToken == "" {
			estimate.IdempotencyToken = uuid.NewString()
		}
		estimate.BookingState = entities.BookingStateInFlight
		if err := u.save(ctx, &estimate); err != nil {
			return entities.RideStatus{}, err
		}

		rideID, err := u.provider.CreateRide(ctx, token, entities.RideBooking{
			Origin:           estimate.Request.Origin,
			Destination:      estimate.Request.Destination,
			RideType:         svc.RideType,
			Seats:            estimate.Request.Seats,
			IdempotencyToken: estimate.IdempotencyToken,
		})
		if err != nil {
			u.log.Error("[ride][usecase] create ride failed", logger.String("estimate_id", estimate.ID), logger.Error(err))
			return entities.RideStatus{}, upstreamError("create ride", err)
		}
		if strings.TrimSpace(rideID) == "" {
			return entities.RideStatus{}, upstreamError("create ride", fmt.Errorf("empty ride id"))
		}

		estimate.RideRequestID = rideID
		if err := u.save(ctx, &estimate); err != nil {
			u.log.Error("[ride][usecase] ride created but not recorded", logger.String("estimate_id", estimate.ID), logger.String("ride_id", rideID), logger.Error(err))
			return entities.RideStatus{}, err
		}
	} else {
		u.log.Info("[ride][usecase] resuming booking at detail step", logger.String("estimate_id", estimate.ID), logger.String("ride_id", estimate.RideRequestID))
	}

	detail, err := u.recordCancellationTerms(ctx, token, &estimate)
	if err != nil {
		return entities.RideStatus{}, err
	}

	status := rideStatus(estimate, detail)
	status.Stage = entities.StagePending
	status.RiderOnBoard = false

	u.publish(ctx, entities.RideEventBooked, estimate, &status.Price)
	u.log.Info("[ride][usecase] ride booked", logger.String("estimate_id", estimate.ID), logger.String("ride_id", estimate.RideRequestID))
	return status, nil
}

// GetRide returns the current state of a booked ride. The record is not modified.
func (u *RideUseCase) GetRide(ctx context.Context, credential, rideKey string) (entities.RideStatus, error) {
	estimate, token, err := u.bookedEstimate(ctx, credential, rideKey)
	if err != nil {
		return entities.RideStatus{}, err
	}

	detail, err := u.provider.GetRide(ctx, token, estimate.RideRequestID)
	if err != nil {
		return entities.RideStatus{}, upstreamError("ride detail", err)
	}

	return rideStatus(estimate, detail), nil
}

// CancelRide cancels a booked ride and returns the fee fixed at booking time.
func (u *RideUseCase) CancelRide(ctx context.Context, credential, rideKey string) (entities.CancellationPrice, error) {
	estimate, token, err := u.bookedEstimate(ctx, credential, rideKey)
	if err != nil {
		return entities.CancellationPrice{}, err
	}

	// A booking interrupted after create has no cancellation terms yet.
	if !estimate.HasCancellationTerms() {
		u.log.Info("[ride][usecase] completing booking before cancel", logger.String("estimate_id", estimate.ID), logger.String("ride_id", estimate.RideRequestID))
		if _, err := u.recordCancellationTerms(ctx, token, &estimate); err != nil {
			return entities.CancellationPrice{}, err
		}
	}

	if err := u.provider.CancelRide(ctx, token, estimate.RideRequestID, estimate.CancellationToken); err != nil {
		u.log.Error("[ride][usecase] cancel ride failed", logger.String("estimate_id", estimate.ID), logger.String("ride_id", estimate.RideRequestID), logger.Error(err))
		return entities.CancellationPrice{}, upstreamError("cancel ride", err)
	}

	fee := *estimate.CancellationCost

	u.publish(ctx, entities.RideEventCancelled, estimate, &fee)
	u.log.Info("[ride][usecase] ride cancelled", logger.String("estimate_id", estimate.ID), logger.String("ride_id", estimate.RideRequestID), logger.Int64("fee", fee.Amount))
	return entities.CancellationPrice{RideID: estimate.ID, Price: fee}, nil
}

func (u *RideUseCase) bookedEstimate(ctx context.Context, credential, rideKey string) (entities.Estimate, string, error) {
	estimate, err := loadEstimate(ctx, u.repo, rideKey)
	if err != nil {
		return entities.Estimate{}, "", err
	}
	if !estimate.IsBooked() {
		return entities.Estimate{}, "", ErrRideNotBooked
	}

	svc, err := resolveService(u.catalog, estimate.ServiceID)
	if err != nil {
		return entities.Estimate{}, "", err
	}

	token, err := fetchAccessToken(ctx, u.tokens, credential, svc.ID)
	if err != nil {
		return entities.Estimate{}, "", err
	}
	return estimate, token, nil
}

// recordCancellationTerms fetches the ride detail and stores the cancellation fee and
// token on the record, marking the booking complete.
func (u *RideUseCase) recordCancellationTerms(ctx context.Context, token string, estimate *entities.Estimate) (entities.RideDetail, error) {
	detail, err := u.provider.GetRide(ctx, token, estimate.RideRequestID)
	if err != nil {
		return entities.RideDetail{}, upstreamError("ride detail", err)
	}

	cancellation := entities.Money{Currency: estimate.Cost.Currency}
	if detail.CancellationPrice != nil {
		cancellation = *detail.CancellationPrice
	}
	estimate.CancellationCost = &cancellation
	estimate.CancellationToken = detail.CancellationToken
	estimate.BookingState = entities.BookingStateBooked
	if err := u.save(ctx, estimate); err != nil {
		return entities.RideDetail{}, err
	}
	return detail, nil
}

func (u *RideUseCase) save(ctx context.Context, e *entities.Estimate) error {
	e.UpdatedAt = u.now()
	return u.repo.Put(ctx, *e, u.policy)
}

func (u *RideUseCase) publish(ctx context.Context, kind entities.RideEventType, e entities.Estimate, price *entities.Money) {
	if u.publisher == nil {
		return
	}
	event := entities.RideEvent{
		ID:         uuid.NewString(),
		Type:       kind,
		EstimateID: e.ID,
		RideID:     e.RideRequestID,
		ServiceID:  e.ServiceID,
		Price:      price,
		OccurredAt: u.now(),
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.log.Warning("[ride][usecase] ride event not published", logger.String("type", string(kind)), logger.String("estimate_id", e.ID), logger.Error(err))
	}
}

func rideStatus(e entities.Estimate, detail entities.RideDetail) entities.RideStatus {
	price := e.Cost
	if detail.Price != nil {
		price = *detail.Price
	}
	return entities.RideStatus{
		RideID:          e.ID,
		EstimatedPickup: detail.PickupTime,
		RiderOnBoard:    detail.Status.IsPickedUp(),
		Price:           price,
		Driver:          detail.Driver,
		Vehicle:         detail.Vehicle,
		Stage:           entities.StageFromStatus(detail.Status),
		DriverLocation:  detail.Location,
	}
}
