package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lyft_client/internal/domain/entities"
	mock_interfaces "lyft_client/internal/usecase/interfaces/mocks"
	"lyft_client/pkg/logger"

	"go.uber.org/mock/gomock"
)

const (
	lyftServiceID     = "2B2225AD-9D0E-45E0-85FB-378FE2B521E0"
	lyftLineServiceID = "52648E86-B617-44FD-B753-295D5CE9D9DC"
)

var (
	testOrigin      = entities.Location{Latitude: 37.7763, Longitude: -122.3918}
	testDestination = entities.Location{Latitude: 37.7972, Longitude: -122.4533}
	testNow         = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testPolicy      = entities.TTLPolicy{Absolute: 24 * time.Hour, Sliding: 5 * time.Hour}
)

func newTestEstimateUseCase(ctrl *gomock.Controller) (*EstimateUseCase, *mock_interfaces.MockIEstimateRepository, *mock_interfaces.MockIAccessTokenGateway, *mock_interfaces.MockIRideProvider) {
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	tokens := mock_interfaces.NewMockIAccessTokenGateway(ctrl)
	provider := mock_interfaces.NewMockIRideProvider(ctrl)
	uc := NewEstimateUseCase(repo, tokens, provider, entities.DefaultServiceCatalog(), EstimateUseCaseConfig{
		Policy: testPolicy,
		Pacing: time.Second,
	}, logger.NewNop())
	uc.now = func() time.Time { return testNow }
	uc.wait = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	return uc, repo, tokens, provider
}

func collect(quotes *[]entities.Quote) func(entities.Quote) error {
	return func(q entities.Quote) error {
		*quotes = append(*quotes, q)
		return nil
	}
}

func TestEstimateUseCase_StreamEstimates(t *testing.T) {
	t.Run("single service yields one quote and one write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, tokens, provider := newTestEstimateUseCase(ctrl)

		tokens.EXPECT().GetAccessToken(gomock.Any(), "session", lyftServiceID).Return("tok", nil)
		provider.EXPECT().Estimate(gomock.Any(), "tok", testOrigin, testDestination, "lyft").Return([]entities.CostLine{
			{RideType: "lyft", DisplayName: "Lyft", Price: entities.Money{Amount: 1234, Currency: "USD"}, DistanceMiles: 3.2, DurationSeconds: 900},
		}, nil)

		var stored entities.Estimate
		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{}), testPolicy).DoAndReturn(
			func(_ context.Context, e entities.Estimate, _ entities.TTLPolicy) error {
				stored = e
				return nil
			},
		)

		var quotes []entities.Quote
		err := uc.StreamEstimates(context.Background(), "session", EstimatesQuery{
			Origin:      testOrigin,
			Destination: testDestination,
			Seats:       2,
			ServiceIDs:  []string{lyftServiceID},
		}, collect(&quotes))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 1 {
			t.Fatalf("expected 1 quote, got %d", len(quotes))
		}

		q := quotes[0]
		if q.EstimateID == "" || q.EstimateID != stored.ID {
			t.Fatalf("quote id %q does not match stored id %q", q.EstimateID, stored.ID)
		}
		if q.Seats != 2 || stored.Request.Seats != 2 {
			t.Fatalf("seats not preserved: quote=%d stored=%d", q.Seats, stored.Request.Seats)
		}
		if q.Price.Amount != 1234 || stored.Cost.Amount != 1234 {
			t.Fatalf("unexpected price: %+v / %+v", q.Price, stored.Cost)
		}
		if q.ServiceID != lyftServiceID || q.DisplayName != "Lyft" {
			t.Fatalf("unexpected service on quote: %+v", q)
		}
		if !q.ValidUntil.Equal(testNow.Add(5 * time.Hour)) {
			t.Fatalf("unexpected validity: %v", q.ValidUntil)
		}
		if len(q.WayPoints) != 2 || q.WayPoints[0] != testOrigin || q.WayPoints[1] != testDestination {
			t.Fatalf("unexpected way points: %+v", q.WayPoints)
		}
		if stored.IsBooked() {
			t.Fatalf("new estimate must not be booked")
		}
	})

	t.Run("unmapped service yields nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newTestEstimateUseCase(ctrl)

		var quotes []entities.Quote
		err := uc.StreamEstimates(context.Background(), "session", EstimatesQuery{
			Origin:      testOrigin,
			Destination: testDestination,
			ServiceIDs:  []string{"00000000-0000-0000-0000-000000000000"},
		}, collect(&quotes))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 0 {
			t.Fatalf("expected no quotes, got %d", len(quotes))
		}
	})

	t.Run("failing services are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, tokens, provider := newTestEstimateUseCase(ctrl)

		tokens.EXPECT().GetAccessToken(gomock.Any(), "session", lyftServiceID).Return("", errors.New("denied"))
		tokens.EXPECT().GetAccessToken(gomock.Any(), "session", lyftLineServiceID).Return("tok", nil)
		provider.EXPECT().Estimate(gomock.Any(), "tok", testOrigin, testDestination, "lyft_line").Return(nil, errors.New("503"))

		var quotes []entities.Quote
		err := uc.StreamEstimates(context.Background(), "session", EstimatesQuery{
			Origin:      testOrigin,
			Destination: testDestination,
			ServiceIDs:  []string{lyftServiceID, lyftLineServiceID},
		}, collect(&quotes))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 0 {
			t.Fatalf("expected no quotes, got %d", len(quotes))
		}
	})

	t.Run("every cost line becomes a quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, tokens, provider := newTestEstimateUseCase(ctrl)

		tokens.EXPECT().GetAccessToken(gomock.Any(), "session", lyftServiceID).Return("tok", nil)
		provider.EXPECT().Estimate(gomock.Any(), "tok", testOrigin, testDestination, "lyft").Return([]entities.CostLine{
			{RideType: "lyft", Price: entities.Money{Amount: 1000, Currency: "USD"}},
			{RideType: "lyft", Price: entities.Money{Amount: 1100, Currency: "USD"}},
		}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any(), testPolicy).Return(nil).Times(2)

		waits := 0
		uc.wait = func(ctx context.Context, d time.Duration) error {
			if d != time.Second {
				t.Fatalf("unexpected pacing %v", d)
			}
			waits++
			return nil
		}

		var quotes []entities.Quote
		err := uc.StreamEstimates(context.Background(), "session", EstimatesQuery{
			Origin:      testOrigin,
			Destination: testDestination,
			ServiceIDs:  []string{lyftServiceID},
		}, collect(&quotes))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(quotes))
		}
		if quotes[0].EstimateID == quotes[1].EstimateID {
			t.Fatalf("cost lines must get distinct estimate ids")
		}
		if quotes[0].DisplayName != "Lyft" {
			t.Fatalf("expected catalog display name fallback, got %q", quotes[0].DisplayName)
		}
		if waits != 1 {
			t.Fatalf("expected 1 pacing wait between 2 quotes, got %d", waits)
		}
	})

	t.Run("cancelled context stops the stream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, tokens, provider := newTestEstimateUseCase(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		tokens.EXPECT().GetAccessToken(gomock.Any(), "session", lyftServiceID).Return("tok", nil)
		provider.EXPECT().Estimate(gomock.Any(), "tok", testOrigin, testDestination, "lyft").Return([]entities.CostLine{
			{RideType: "lyft", Price: entities.Money{Amount: 1000, Currency: "USD"}},
		}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any(), testPolicy).Return(nil)

		var quotes []entities.Quote
		err := uc.StreamEstimates(ctx, "session", EstimatesQuery{
			Origin:      testOrigin,
			Destination: testDestination,
			ServiceIDs:  []string{lyftServiceID, lyftLineServiceID},
		}, func(q entities.Quote) error {
			quotes = append(quotes, q)
			cancel()
			return nil
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(quotes) != 1 {
			t.Fatalf("expected 1 quote before cancellation, got %d", len(quotes))
		}
	})

	t.Run("store failure skips the entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, tokens, provider := newTestEstimateUseCase(ctrl)

		tokens.EXPECT().GetAccessToken(gomock.Any(), "session", lyftServiceID).Return("tok", nil)
		tokens.EXPECT().GetAccessToken(gomock.Any(), "session", lyftLineServiceID).Return("tok", nil)
		provider.EXPECT().Estimate(gomock.Any(), "tok", testOrigin, testDestination, "lyft").Return([]entities.CostLine{
			{RideType: "lyft", Price: entities.Money{Amount: 1000, Currency: "USD"}},
		}, nil)
		provider.EXPECT().Estimate(gomock.Any(), "tok", testOrigin, testDestination, "lyft_line").Return([]entities.CostLine{
			{RideType: "lyft_line", Price: entities.Money{Amount: 700, Currency: "USD"}},
		}, nil)
		gomock.InOrder(
			repo.EXPECT().Put(gomock.Any(), gomock.Any(), testPolicy).Return(errors.New("db")),
			repo.EXPECT().Put(gomock.Any(), gomock.Any(), testPolicy).Return(nil),
		)

		var quotes []entities.Quote
		err := uc.StreamEstimates(context.Background(), "session", EstimatesQuery{
			Origin:      testOrigin,
			Destination: testDestination,
			ServiceIDs:  []string{lyftServiceID, lyftLineServiceID},
		}, collect(&quotes))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 1 || quotes[0].ServiceID != lyftLineServiceID {
			t.Fatalf("expected only the stored lyft_line quote, got %+v", quotes)
		}
	})

	t.Run("store failure after cancellation stops the stream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, tokens, provider := newTestEstimateUseCase(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		tokens.EXPECT().GetAccessToken(gomock.Any(), "session", lyftServiceID).Return("tok", nil)
		provider.EXPECT().Estimate(gomock.Any(), "tok", testOrigin, testDestination, "lyft").Return([]entities.CostLine{
			{RideType: "lyft", Price: entities.Money{Amount: 1000, Currency: "USD"}},
		}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any(), testPolicy).DoAndReturn(
			func(context.Context, entities.Estimate, entities.TTLPolicy) error {
				cancel()
				return context.Canceled
			},
		)

		var quotes []entities.Quote
		err := uc.StreamEstimates(ctx, "session", EstimatesQuery{
			Origin:      testOrigin,
			Destination: testDestination,
			ServiceIDs:  []string{lyftServiceID},
		}, collect(&quotes))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(quotes) != 0 {
			t.Fatalf("no quote may be emitted without a stored record")
		}
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newTestEstimateUseCase(ctrl)

		err := uc.StreamEstimates(context.Background(), "session", EstimatesQuery{
			Origin:      entities.Location{Latitude: 91},
			Destination: testDestination,
			ServiceIDs:  []string{lyftServiceID},
		}, func(entities.Quote) error { return nil })
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})
}

func TestEstimateUseCase_RefreshEstimate(t *testing.T) {
	stored := entities.Estimate{
		ID:        "est-1",
		ServiceID: lyftServiceID,
		Request:   entities.EstimateRequest{Origin: testOrigin, Destination: testDestination, Seats: 1},
		Cost:      entities.Money{Amount: 1000, Currency: "USD"},
		CreatedAt: testNow.Add(-time.Hour),
		UpdatedAt: testNow.Add(-time.Hour),
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newTestEstimateUseCase(ctrl)

		repo.EXPECT().Get(gomock.Any(), "missing").Return(entities.Estimate{}, false, nil)

		_, err := uc.RefreshEstimate(context.Background(), "session", "missing")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newTestEstimateUseCase(ctrl)

		_, err := uc.RefreshEstimate(context.Background(), "session", "  ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("auth failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, tokens, _ := newTestEstimateUseCase(ctrl)

		repo.EXPECT().Get(gomock.Any(), "est-1").Return(stored, true, nil)
		tokens.EXPECT().GetAccessToken(gomock.Any(), "session", lyftServiceID).Return("", nil)

		_, err := uc.RefreshEstimate(context.Background(), "session", "est-1")
		if !errors.Is(err, ErrAuthFailure) {
			t.Fatalf("expected ErrAuthFailure, got %v", err)
		}
	})

	t.Run("upstream returns nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, tokens, provider := newTestEstimateUseCase(ctrl)

		repo.EXPECT().Get(gomock.Any(), "est-1").Return(stored, true, nil)
		tokens.EXPECT().GetAccessToken(gomock.Any(), "session", lyftServiceID).Return("tok", nil)
		provider.EXPECT().Estimate(gomock.Any(), "tok", testOrigin, testDestination, "lyft").Return(nil, nil)

		_, err := uc.RefreshEstimate(context.Background(), "session", "est-1")
		if !errors.Is(err, ErrUpstreamFailure) {
			t.Fatalf("expected ErrUpstreamFailure, got %v", err)
		}
	})

	t.Run("success keeps id and way points", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, tokens, provider := newTestEstimateUseCase(ctrl)

		repo.EXPECT().Get(gomock.Any(), "est-1").Return(stored, true, nil)
		tokens.EXPECT().GetAccessToken(gomock.Any(), "session", lyftServiceID).Return("tok", nil)
		provider.EXPECT().Estimate(gomock.Any(), "tok", testOrigin, testDestination, "lyft").Return([]entities.CostLine{
			{RideType: "lyft_line", Price: entities.Money{Amount: 800, Currency: "USD"}},
			{RideType: "lyft", DisplayName: "Lyft", Price: entities.Money{Amount: 1450, Currency: "USD"}},
		}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{}), testPolicy).DoAndReturn(
			func(_ context.Context, e entities.Estimate, _ entities.TTLPolicy) error {
				if e.ID != "est-1" || e.Cost.Amount != 1450 {
					t.Fatalf("unexpected stored estimate: %+v", e)
				}
				if e.Request != stored.Request || !e.CreatedAt.Equal(stored.CreatedAt) {
					t.Fatalf("original request must be kept: %+v", e)
				}
				if !e.UpdatedAt.Equal(testNow) {
					t.Fatalf("expected updated timestamp")
				}
				return nil
			},
		)

		q, err := uc.RefreshEstimate(context.Background(), "session", "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.EstimateID != "est-1" || q.Price.Amount != 1450 {
			t.Fatalf("unexpected quote: %+v", q)
		}
		if len(q.WayPoints) != 2 || q.WayPoints[0] != testOrigin || q.WayPoints[1] != testDestination {
			t.Fatalf("unexpected way points: %+v", q.WayPoints)
		}
	})
}

func TestEstimateID(t *testing.T) {
	req := entities.EstimateRequest{Origin: testOrigin, Destination: testDestination, Seats: 1}
	line := entities.CostLine{RideType: "lyft"}

	a := estimateID(lyftServiceID, req, line, 0, testNow)
	b := estimateID(lyftServiceID, req, line, 0, testNow)
	if a != b {
		t.Fatalf("expected deterministic id, got %s and %s", a, b)
	}
	if c := estimateID(lyftServiceID, req, line, 1, testNow); c == a {
		t.Fatalf("line index must change the id")
	}
	if d := estimateID(lyftServiceID, req, line, 0, testNow.Add(time.Nanosecond)); d == a {
		t.Fatalf("request time must change the id")
	}
	if e := estimateID("not-a-uuid", req, line, 0, testNow); e == "" || e == a {
		t.Fatalf("unexpected id for non uuid service: %q", e)
	}
}

func TestSleepContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := sleepContext(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
