package lyft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase/interfaces"
	"lyft_client/pkg/logger"
)

const defaultCurrency = "USD"

// APIError is a non-2xx answer from the Lyft API.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("lyft api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("lyft api: status %d: %s: %s", e.StatusCode, e.Code, e.Description)
}

// Client calls the Lyft REST API on behalf of a user.
//
// It holds no per-user state; every call carries its own access token, so a single
// Client is shared by all requests.
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.ILogger
	now     func() time.Time
}

var _ interfaces.IRideProvider = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, log logger.ILogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Estimate calls GET /v1/cost for one ride type.
func (c *Client) Estimate(ctx context.Context, accessToken string, origin, destination entities.Location, serviceName string) ([]entities.CostLine, error) {
	q := url.Values{}
	q.Set("start_lat", formatCoord(origin.Latitude))
	q.Set("start_lng", formatCoord(origin.Longitude))
	q.Set("end_lat", formatCoord(destination.Latitude))
	q.Set("end_lng", formatCoord(destination.Longitude))
	if serviceName != "" {
		q.Set("ride_type", serviceName)
	}

	var out costEstimatesResponse
	if err := c.do(ctx, http.MethodGet, "/v1/cost?"+q.Encode(), accessToken, nil, nil, &out); err != nil {
		return nil, err
	}

	lines := make([]entities.CostLine, 0, len(out.CostEstimates))
	for _, ce := range out.CostEstimates {
		if ce.IsValidEstimate != nil && !*ce.IsValidEstimate {
			continue
		}
		lines = append(lines, entities.CostLine{
			RideType:    ce.RideType,
			DisplayName: ce.DisplayName,
			Price: entities.Money{
				Amount:      ce.EstimatedCostCentsMax,
				Currency:    currencyOrDefault(ce.Currency),
				Description: costDescription(ce),
			},
			DistanceMiles:   ce.EstimatedDistanceMiles,
			DurationSeconds: ce.EstimatedDurationSeconds,
		})
	}
	return lines, nil
}

// CreateRide calls POST /v1/rides. Seats travel as the passenger party size; the
// idempotency token is sent as Idempotency-Key so a replayed request does not create
// a second ride.
func (c *Client) CreateRide(ctx context.Context, accessToken string, booking entities.RideBooking) (string, error) {
	body := createRideRequest{
		RideType:    string(booking.RideType),
		Origin:      toPlace(booking.Origin),
		Destination: toPlace(booking.Destination),
	}
	if booking.Seats > 0 {
		body.Passenger = &passenger{PartySize: booking.Seats}
	}
	headers := map[string]string{}
	if booking.IdempotencyToken != "" {
		headers["Idempotency-Key"] = booking.IdempotencyToken
	}

	var out createRideResponse
	if err := c.do(ctx, http.MethodPost, "/v1/rides", accessToken, headers, body, &out); err != nil {
		return "", err
	}
	c.log.Debug("[lyft][client] ride created", logger.String("ride_id", out.RideID), logger.String("status", out.Status))
	return out.RideID, nil
}

// GetRide calls GET /v1/rides/{id}.
func (c *Client) GetRide(ctx context.Context, accessToken, rideID string) (entities.RideDetail, error) {
	var out rideDetailResponse
	if err := c.do(ctx, http.MethodGet, "/v1/rides/"+url.PathEscape(rideID), accessToken, nil, nil, &out); err != nil {
		return entities.RideDetail{}, err
	}
	return c.toRideDetail(out), nil
}

// CancelRide calls POST /v1/rides/{id}/cancel with the confirmation token issued
// when the ride was created.
func (c *Client) CancelRide(ctx context.Context, accessToken, rideID, cancellationToken string) error {
	body := cancelRideRequest{CancelConfirmationToken: cancellationToken}
	return c.do(ctx, http.MethodPost, "/v1/rides/"+url.PathEscape(rideID)+"/cancel", accessToken, nil, body, nil)
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warning("[lyft][client] request failed", logger.String("method", method), logger.String("path", routeOf(path)), logger.Error(err))
		return err
	}
	defer resp.Body.Close()

	c.log.Debug("[lyft][client] response",
		logger.String("method", method),
		logger.String("path", routeOf(path)),
		logger.Int("status", resp.StatusCode),
		logger.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e errorResponse
		if b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); len(b) > 0 && json.Unmarshal(b, &e) == nil {
			apiErr.Code = e.Error
			apiErr.Description = e.ErrorDescription
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) toRideDetail(r rideDetailResponse) entities.RideDetail {
	d := entities.RideDetail{
		RideID: r.RideID,
		Status: entities.ProviderRideStatus(r.Status),
	}
	if r.Price != nil {
		d.Price = &entities.Money{
			Amount:      r.Price.Amount,
			Currency:    currencyOrDefault(r.Price.Currency),
			Description: r.Price.Description,
		}
	}
	if r.CancellationPrice != nil {
		d.CancellationPrice = &entities.Money{
			Amount:   r.CancellationPrice.Amount,
			Currency: currencyOrDefault(r.CancellationPrice.Currency),
		}
		d.CancellationToken = r.CancellationPrice.Token
	}
	if r.Driver != nil {
		d.Driver = entities.Driver{
			FirstName:   r.Driver.FirstName,
			PhoneNumber: r.Driver.PhoneNumber,
			ImageURL:    r.Driver.ImageURL,
		}
	}
	if r.Vehicle != nil {
		d.Vehicle = entities.Vehicle{
			Make:         r.Vehicle.Make,
			Model:        r.Vehicle.Model,
			Color:        r.Vehicle.Color,
			LicensePlate: r.Vehicle.LicensePlate,
			ImageURL:     r.Vehicle.ImageURL,
		}
	}
	if r.Location != nil {
		d.Location = &entities.Location{Latitude: r.Location.Lat, Longitude: r.Location.Lng}
	}

	switch {
	case r.Pickup != nil && r.Pickup.Time != "":
		if t, err := time.Parse(time.RFC3339, r.Pickup.Time); err == nil {
			d.PickupTime = t.UTC()
		}
	case r.Origin != nil && r.Origin.ETASeconds != nil:
		d.PickupTime = c.now().Add(time.Duration(*r.Origin.ETASeconds) * time.Second)
	}
	return d
}

func toPlace(l entities.Location) place {
	return place{Lat: l.Latitude, Lng: l.Longitude, Address: l.Address}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func currencyOrDefault(c string) string {
	if c == "" {
		return defaultCurrency
	}
	return strings.ToUpper(c)
}

func costDescription(ce costEstimate) string {
	if ce.PrimetimePercentage == "" || ce.PrimetimePercentage == "0%" {
		return ""
	}
	return "primetime " + ce.PrimetimePercentage
}

// routeOf strips the query string.
func routeOf(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
