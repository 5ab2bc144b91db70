package providers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"air/atlas/internal/config"
	"air/atlas/internal/constants"
	"air/atlas/internal/metrics"
	"air/atlas/internal/models/dtos"
	"air/atlas/internal/models/entities"
)

const openFlightsProviderName = "openflights"

// OpenFlightsProvider looks airports up through the OpenFlights search form.
type OpenFlightsProvider struct {
	BaseURL string
	Client  *http.Client

	metrics *metrics.MetricsRegistry
}

func NewOpenFlightsProvider(cfg config.OpenFlightsConfig, m *metrics.MetricsRegistry) *OpenFlightsProvider {
	return &OpenFlightsProvider{
		BaseURL: cfg.BaseURL,
		Client: &http.Client{
			Timeout: cfg.Timeout,
		},
		metrics: m,
	}
}

// LookupAirport returns the first airport matching icao, or nil when the
// directory has no match.
func (p *OpenFlightsProvider) LookupAirport(ctx context.Context, icao string) (_ *entities.Airport, err error) {
	start := time.Now()
	defer func() { p.observe("apsearch", start, err) }()

	icao = strings.ToUpper(strings.TrimSpace(icao))
	if icao == "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "ICAO code cannot be empty",
		}
	}

	form := url.Values{}
	form.Set("icao", icao)
	form.Set("db", "airports")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	var result dtos.AirportSearchResponse
	if err := decodeResponse(resp, "apsearch", &result); err != nil {
		return nil, err
	}

	if len(result.Airports) == 0 {
		return nil, nil
	}

	ap := result.Airports[0]
	return &entities.Airport{
		Name:      ap.Name,
		IATA:      ap.IATA,
		ICAO:      ap.ICAO,
		Latitude:  float64(ap.Y),
		Longitude: float64(ap.X),
	}, nil
}

func (p *OpenFlightsProvider) observe(operation string, start time.Time, err error) {
	if p.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	p.metrics.ProviderRequestsTotal.WithLabelValues(openFlightsProviderName, operation, outcome).Inc()
	p.metrics.ProviderRequestDuration.WithLabelValues(openFlightsProviderName, operation).Observe(time.Since(start).Seconds())
}
