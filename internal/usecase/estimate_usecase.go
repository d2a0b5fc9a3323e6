package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase/interfaces"
	"lyft_client/pkg/logger"

	"github.com/google/uuid"
)

// EstimatesQuery is a caller request for quotes across one or more services.
type EstimatesQuery struct {
	Origin      entities.Location
	Destination entities.Location
	Seats       int
	ServiceIDs  []string
}

// EstimateUseCaseConfig carries the cache and pacing policy.
type EstimateUseCaseConfig struct {
	Policy entities.TTLPolicy
	// Pacing is the wait between two consecutive quotes of a stream.
	Pacing time.Duration
}

// IEstimateUseCase exposes estimate operations.
//
//   - GetEstimates => StreamEstimates()
//   - GetEstimateRefresh => RefreshEstimate()
type IEstimateUseCase interface {
	StreamEstimates(ctx context.Context, credential string, query EstimatesQuery, emit func(entities.Quote) error) error
	RefreshEstimate(ctx context.Context, credential, estimateID string) (entities.Quote, error)
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	tokens   interfaces.IAccessTokenGateway
	provider interfaces.IRideProvider
	catalog  entities.ServiceCatalog
	cfg      EstimateUseCaseConfig
	log      logger.ILogger

	now  func() time.Time
	wait func(ctx context.Context, d time.Duration) error
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	tokens interfaces.IAccessTokenGateway,
	provider interfaces.IRideProvider,
	catalog entities.ServiceCatalog,
	cfg EstimateUseCaseConfig,
	log logger.ILogger,
) *EstimateUseCase {
	return &EstimateUseCase{
		repo:     repo,
		tokens:   tokens,
		provider: provider,
		catalog:  catalog,
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		wait:     sleepContext,
	}
}

// StreamEstimates prices every requested service in order and hands each quote to emit
// once its record is stored. A service that cannot be resolved, authorized or priced is
// skipped, as is a line whose record cannot be stored; the rest of the batch continues.
func (u *EstimateUseCase) StreamEstimates(ctx context.Context, credential string, query EstimatesQuery, emit func(entities.Quote) error) error {
	query, err := normalizeQuery(query)
	if err != nil {
		return err
	}

	requestedAt := u.now()
	request := entities.EstimateRequest{
		Origin:      query.Origin,
		Destination: query.Destination,
		Seats:       query.Seats,
	}

	emitted := 0
	pending := false
	pace := func() error {
		if !pending {
			return ctx.Err()
		}
		pending = false
		return u.wait(ctx, u.cfg.Pacing)
	}

	for _, serviceID := range query.ServiceIDs {
		if err := pace(); err != nil {
			return err
		}

		svc, ok := u.catalog.Resolve(serviceID)
		if !ok {
			u.log.Info("[estimate][usecase] skipping unmapped service", logger.String("service_id", serviceID))
			continue
		}

		token, err := fetchAccessToken(ctx, u.tokens, credential, svc.ID)
		if err != nil {
			u.log.Warning("[estimate][usecase] skipping service without access token", logger.String("service_id", svc.ID), logger.Error(err))
			continue
		}

		lines, err := u.provider.Estimate(ctx, token, request.Origin, request.Destination, svc.Name)
		if err != nil {
			u.log.Warning("[estimate][usecase] skipping service after pricing failure", logger.String("service_id", svc.ID), logger.Error(err))
			continue
		}

		for i, line := range lines {
			if err := pace(); err != nil {
				return err
			}

			estimate := newEstimate(svc, request, line, i, requestedAt)
			if err := u.repo.Put(ctx, estimate, u.cfg.Policy); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				// A quote is never emitted without its record.
				u.log.Error("[estimate][usecase] skipping estimate that could not be stored", logger.String("estimate_id", estimate.ID), logger.Error(err))
				continue
			}

			if err := emit(u.quote(svc, estimate, line, requestedAt)); err != nil {
				return err
			}
			emitted++
			pending = true
		}
	}

	u.log.Info("[estimate][usecase] stream complete", logger.Int("requested", len(query.ServiceIDs)), logger.Int("emitted", emitted))
	return nil
}

// RefreshEstimate re-prices a stored estimate with its original request and overwrites
// the stored cost.
func (u *EstimateUseCase) RefreshEstimate(ctx context.Context, credential, estimateID string) (entities.Quote, error) {
	estimate, err := loadEstimate(ctx, u.repo, estimateID)
	if err != nil {
		return entities.Quote{}, err
	}

	svc, err := resolveService(u.catalog, estimate.ServiceID)
	if err != nil {
		return entities.Quote{}, err
	}

	token, err := fetchAccessToken(ctx, u.tokens, credential, svc.ID)
	if err != nil {
		return entities.Quote{}, err
	}

	lines, err := u.provider.Estimate(ctx, token, estimate.Request.Origin, estimate.Request.Destination, svc.Name)
	if err != nil {
		return entities.Quote{}, upstreamError("estimate", err)
	}
	if len(lines) == 0 {
		return entities.Quote{}, upstreamError("estimate", fmt.Errorf("no cost returned for %s", svc.Name))
	}

	line := pickCostLine(lines, svc)
	now := u.now()
	estimate.Cost = line.Price
	estimate.UpdatedAt = now

	if err := u.repo.Put(ctx, estimate, u.cfg.Policy); err != nil {
		return entities.Quote{}, err
	}

	u.log.Info("[estimate][usecase] estimate refreshed", logger.String("estimate_id", estimate.ID), logger.Int64("price", estimate.Cost.Amount))
	return u.quote(svc, estimate, line, now), nil
}

func (u *EstimateUseCase) quote(svc entities.Service, e entities.Estimate, line entities.CostLine, at time.Time) entities.Quote {
	name := line.DisplayName
	if name == "" {
		name = svc.DisplayName
	}
	return entities.Quote{
		EstimateID:      e.ID,
		ServiceID:       e.ServiceID,
		DisplayName:     name,
		Price:           e.Cost,
		DistanceMiles:   line.DistanceMiles,
		DurationSeconds: line.DurationSeconds,
		Seats:           e.Request.Seats,
		ValidUntil:      u.cfg.Policy.ExpiresAt(at),
		WayPoints:       e.WayPoints(),
	}
}

func newEstimate(svc entities.Service, request entities.EstimateRequest, line entities.CostLine, index int, at time.Time) entities.Estimate {
	return entities.Estimate{
		ID:        estimateID(svc.ID, request, line, index, at),
		ServiceID: svc.ID,
		Request:   request,
		Cost:      line.Price,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

// estimateID derives a name-based UUID from the service identifier and everything that
// distinguishes this quote: the request, the fare option and the request time.
func estimateID(serviceID string, request entities.EstimateRequest, line entities.CostLine, index int, at time.Time) string {
	namespace, err := uuid.Parse(serviceID)
	if err != nil {
		namespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte(serviceID))
	}
	name := fmt.Sprintf("%.6f,%.6f|%.6f,%.6f|%d|%s|%d|%d",
		request.Origin.Latitude, request.Origin.Longitude,
		request.Destination.Latitude, request.Destination.Longitude,
		request.Seats, line.RideType, index, at.UnixNano(),
	)
	return uuid.NewSHA1(namespace, []byte(name)).String()
}

func pickCostLine(lines []entities.CostLine, svc entities.Service) entities.CostLine {
	for _, l := range lines {
		if strings.EqualFold(l.RideType, string(svc.RideType)) {
			return l
		}
	}
	return lines[0]
}

func normalizeQuery(q EstimatesQuery) (EstimatesQuery, error) {
	if q.Seats == 0 {
		q.Seats = 1
	}
	if q.Seats < 0 {
		return q, fmt.Errorf("%w: seats must be positive", ErrInvalidRequest)
	}
	if !validLocation(q.Origin) || !validLocation(q.Destination) {
		return q, fmt.Errorf("%w: coordinates out of range", ErrInvalidRequest)
	}
	ids := make([]string, 0, len(q.ServiceIDs))
	for _, id := range q.ServiceIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	q.ServiceIDs = ids
	return q, nil
}

func validLocation(l entities.Location) bool {
	if math.IsNaN(l.Latitude) || math.IsNaN(l.Longitude) {
		return false
	}
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
