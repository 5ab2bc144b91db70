package services

import (
	"context"
	"strings"
	"time"

	"air/atlas/internal/common"
	"air/atlas/internal/constants"
	"air/atlas/internal/logging"
	"air/atlas/internal/metrics"
	"air/atlas/internal/models/entities"
)

// AirportService puts a cache in front of an AirportDirectory. Only hits are
// cached; a code the directory does not know is asked again next time.
type AirportService struct {
	upstream AirportDirectory
	cache    common.CacheInterface
	ttl      time.Duration
	metrics  *metrics.MetricsRegistry
}

var _ AirportDirectory = (*AirportService)(nil)

func NewAirportService(upstream AirportDirectory, cache common.CacheInterface, ttl time.Duration, m *metrics.MetricsRegistry) *AirportService {
	return &AirportService{
		upstream: upstream,
		cache:    cache,
		ttl:      ttl,
		metrics:  m,
	}
}

func (s *AirportService) LookupAirport(ctx context.Context, icao string) (*entities.Airport, error) {
	icao = strings.ToUpper(strings.TrimSpace(icao))
	key := common.CacheKey(string(constants.CachePrefixAirport), icao)

	var cached entities.Airport
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logging.Warn("Airport cache read failed", "key", key, "error", err)
	}
	if found {
		s.count(true)
		return &cached, nil
	}
	s.count(false)

	airport, err := s.upstream.LookupAirport(ctx, icao)
	if err != nil || airport == nil {
		return airport, err
	}

	if err := s.cache.Set(ctx, key, airport, s.ttl); err != nil {
		logging.Warn("Airport cache write failed", "key", key, "error", err)
	}
	return airport, nil
}

func (s *AirportService) count(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHitsTotal.WithLabelValues("airport").Inc()
	} else {
		s.metrics.CacheMissesTotal.WithLabelValues("airport").Inc()
	}
}
