package providers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"air/atlas/internal/config"
	"air/atlas/internal/constants"
	"air/atlas/internal/logging"
	"air/atlas/internal/metrics"
	"air/atlas/internal/models/dtos"
	"air/atlas/internal/models/entities"

	"golang.org/x/time/rate"
)

const flightAwareProviderName = "flightaware"

// FlightAwareProvider is a FlightXML3 client. It answers schedule and track
// queries for the resolution pipeline.
type FlightAwareProvider struct {
	BaseURL  string
	Username string
	APIKey   string
	Client   *http.Client

	limiter *rate.Limiter
	metrics *metrics.MetricsRegistry
}

// NewFlightAwareProvider builds a client from its config section. m may be nil.
func NewFlightAwareProvider(cfg config.FlightAwareConfig, m *metrics.MetricsRegistry) *FlightAwareProvider {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &FlightAwareProvider{
		BaseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		Username: cfg.Username,
		APIKey:   cfg.APIKey,
		Client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		metrics: m,
	}
}

// FindSchedule returns the first scheduled instance of code departing in
// [start, end], or nil when the provider knows of none.
func (p *FlightAwareProvider) FindSchedule(ctx context.Context, code entities.FlightCode, start, end int64) (*entities.ScheduledFlight, error) {
	params := url.Values{}
	params.Set("start_date", strconv.FormatInt(start, 10))
	params.Set("end_date", strconv.FormatInt(end, 10))
	params.Set("airline", code.Airline)
	params.Set("flightno", code.Number)
	params.Set("howMany", "1")

	var resp dtos.AirlineFlightSchedulesResponse
	if err := p.doGET(ctx, "AirlineFlightSchedules", params, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		if isNoData(resp.Error) {
			logging.Debug("No schedule data", "flight_code", code.String(), "provider_error", resp.Error)
			return nil, nil
		}
		return nil, &ProviderError{
			Code:    constants.ErrCodeProviderErrorResponse,
			Message: constants.GetErrorMessage(constants.ErrCodeProviderErrorResponse),
			Details: resp.Error,
		}
	}

	if resp.Result == nil || len(resp.Result.Flights) == 0 {
		return nil, nil
	}

	f := resp.Result.Flights[0]
	return &entities.ScheduledFlight{
		Ident:         f.Ident,
		Origin:        f.Origin,
		Destination:   f.Destination,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
	}, nil
}

// FetchTrack returns the recorded positions of one flight instance. A reply
// without a track, including a provider error payload, yields nil.
func (p *FlightAwareProvider) FetchTrack(ctx context.Context, id entities.TrackIdentity) ([]entities.RawTrackPoint, error) {
	params := url.Values{}
	params.Set("ident", id.String())

	var resp dtos.GetFlightTrackResponse
	if err := p.doGET(ctx, "GetFlightTrack", params, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		logging.Debug("No track available", "ident", id.String(), "provider_error", resp.Error)
		return nil, nil
	}
	if resp.Result == nil || len(resp.Result.Tracks) == 0 {
		return nil, nil
	}

	points := make([]entities.RawTrackPoint, len(resp.Result.Tracks))
	for i, t := range resp.Result.Tracks {
		points[i] = entities.RawTrackPoint{
			Timestamp: t.Timestamp,
			Latitude:  t.Latitude,
			Longitude: t.Longitude,
			Altitude:  t.Altitude,
		}
	}
	return points, nil
}

// doGET performs an authenticated, rate-limited GET against a FlightXML3 operation.
func (p *FlightAwareProvider) doGET(ctx context.Context, operation string, params url.Values, result interface{}) (err error) {
	start := time.Now()
	defer func() { p.observe(operation, start, err) }()

	if p.Username == "" || p.APIKey == "" {
		return &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: "FlightAware credentials are not configured",
		}
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Err:     err,
		}
	}

	endpoint := p.BaseURL + "/" + operation
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.SetBasicAuth(p.Username, p.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, operation, result)
}

func (p *FlightAwareProvider) observe(operation string, start time.Time, err error) {
	if p.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	p.metrics.ProviderRequestsTotal.WithLabelValues(flightAwareProviderName, operation, outcome).Inc()
	p.metrics.ProviderRequestDuration.WithLabelValues(flightAwareProviderName, operation).Observe(time.Since(start).Seconds())
}

// FlightXML3 reports an unknown flight as an error payload starting with NO_DATA.
func isNoData(msg string) bool {
	return strings.HasPrefix(strings.ToUpper(msg), "NO_DATA")
}
