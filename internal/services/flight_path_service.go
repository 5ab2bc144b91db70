package services

import (
	"context"
	"fmt"
	"time"

	"air/atlas/internal/constants"
	"air/atlas/internal/logging"
	"air/atlas/internal/metrics"
	"air/atlas/internal/models/entities"
	"air/atlas/internal/models/gorm"
	"air/atlas/internal/pathing"

	"go.uber.org/zap"
)

type ResolutionStatus string

const (
	ResolutionResolved ResolutionStatus = "resolved"
	ResolutionInvalid  ResolutionStatus = "invalid"
)

// PathSource says where a resolved path came from.
type PathSource string

const (
	PathSourceCache     PathSource = "cache"
	PathSourceTrack     PathSource = "track"
	PathSourceSynthetic PathSource = "synthetic"
)

const historyWindowDays = 8

type ResolveOptions struct {
	// ForceRefresh skips the stored-path lookup and rebuilds the path.
	ForceRefresh bool
}

// PathResolution is the outcome of Resolve. Path is the serialized path and
// is empty when Status is ResolutionInvalid.
type PathResolution struct {
	FlightID   string
	FlightCode string
	Status     ResolutionStatus
	Reason     string
	Source     PathSource
	Path       string
}

// FlightPathService turns a flight reference into a path, reusing stored
// paths until they expire.
//
// Concurrent Resolve calls for the same flight code are not coalesced: each
// may call the providers, and the last Upsert wins.
type FlightPathService struct {
	refs     FlightReferenceStore
	paths    FlightPathStore
	tracker  FlightTracker
	airports AirportDirectory
	metrics  *metrics.MetricsRegistry

	now func() time.Time
}

// NewFlightPathService wires the pipeline. m may be nil.
func NewFlightPathService(
	refs FlightReferenceStore,
	paths FlightPathStore,
	tracker FlightTracker,
	airports AirportDirectory,
	m *metrics.MetricsRegistry,
) *FlightPathService {
	return &FlightPathService{
		refs:     refs,
		paths:    paths,
		tracker:  tracker,
		airports: airports,
		metrics:  m,
		now:      time.Now,
	}
}

// Resolve returns the path for flightID. Unknown ids yield constants.ErrNotFound;
// provider transport failures are returned wrapped and are not retried.
// Soft failures (no flight that day, unknown airport) mark the reference
// invalid and come back as a ResolutionInvalid result with a nil error.
func (s *FlightPathService) Resolve(ctx context.Context, flightID string, opts ResolveOptions) (*PathResolution, error) {
	log := logging.With("flight_id", flightID, "force_refresh", opts.ForceRefresh)

	ref, err := s.refs.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	code, err := entities.ParseFlightCode(ref.FlightCode)
	if err != nil {
		return nil, fmt.Errorf("flight reference %s: %w", flightID, err)
	}
	day, err := time.ParseInLocation(constants.FlightDateLayout, ref.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("flight reference %s: %w: bad date %q", flightID, constants.ErrInvalidInput, ref.Date)
	}

	res := &PathResolution{FlightID: flightID, FlightCode: code.String()}
	log = log.With("flight_code", res.FlightCode)

	dayStart := day.Unix()
	scheduled, err := s.tracker.FindSchedule(ctx, code, dayStart, dayStart+constants.SecondsPerDay)
	if err != nil {
		s.record("error", "")
		return nil, fmt.Errorf("schedule lookup for %s on %s: %w", res.FlightCode, ref.Date, err)
	}
	if scheduled == nil {
		log.Infow("No scheduled flight on requested day", "date", ref.Date)
		return s.invalidate(ctx, res, constants.InvalidReasonNoFlightForDay)
	}

	if err := s.refs.SetDepartureTime(ctx, flightID, scheduled.DepartureTime); err != nil {
		return nil, fmt.Errorf("record departure for %s: %w", flightID, err)
	}

	now := s.now().Unix()

	if !opts.ForceRefresh {
		stored, err := s.paths.FindValid(ctx, res.FlightCode, now)
		if err != nil {
			return nil, fmt.Errorf("stored path lookup for %s: %w", res.FlightCode, err)
		}
		if stored != nil {
			log.Debugw("Serving stored path", "expires", stored.Expires)
			s.cacheResult(true)
			res.Status = ResolutionResolved
			res.Source = PathSourceCache
			res.Path = stored.Path
			s.record(string(res.Status), string(res.Source))
			return res, nil
		}
		s.cacheResult(false)
	}

	historical, err := s.tracker.FindSchedule(ctx, code, now-historyWindowDays*constants.SecondsPerDay, now-constants.SecondsPerDay)
	if err != nil {
		s.record("error", "")
		return nil, fmt.Errorf("history lookup for %s: %w", res.FlightCode, err)
	}

	origin, destination, ok := s.lookupAirports(ctx, scheduled, log)
	if !ok {
		return s.invalidate(ctx, res, constants.InvalidReasonNoAirportInfo)
	}

	path, source, err := s.buildPath(ctx, scheduled, historical, origin, destination, log)
	if err != nil {
		s.record("error", "")
		return nil, err
	}

	record := &gorm.FlightPath{
		FlightCode:      res.FlightCode,
		Origin:          origin.Name,
		OriginCode:      origin.IATA,
		OriginLat:       origin.Latitude,
		OriginLong:      origin.Longitude,
		Destination:     destination.Name,
		DestinationCode: destination.IATA,
		DestinationLat:  destination.Latitude,
		DestinationLong: destination.Longitude,
		Expires:         now + constants.PathCacheTTLSeconds,
		Path:            path,
	}
	if err := s.paths.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("store path for %s: %w", res.FlightCode, err)
	}

	log.Infow("Resolved flight path", "source", source)
	res.Status = ResolutionResolved
	res.Source = source
	res.Path = path
	s.record(string(res.Status), string(res.Source))
	return res, nil
}

// lookupAirports resolves both ends of the scheduled flight. Any failure is
// logged and reported as !ok.
func (s *FlightPathService) lookupAirports(ctx context.Context, f *entities.ScheduledFlight, log *zap.SugaredLogger) (*entities.Airport, *entities.Airport, bool) {
	origin, err := s.airports.LookupAirport(ctx, f.Origin)
	if err != nil || origin == nil {
		log.Warnw("Origin airport unavailable", "icao", f.Origin, "error", err)
		return nil, nil, false
	}
	destination, err := s.airports.LookupAirport(ctx, f.Destination)
	if err != nil || destination == nil {
		log.Warnw("Destination airport unavailable", "icao", f.Destination, "error", err)
		return nil, nil, false
	}
	return origin, destination, true
}

func (s *FlightPathService) buildPath(
	ctx context.Context,
	scheduled, historical *entities.ScheduledFlight,
	origin, destination *entities.Airport,
	log *zap.SugaredLogger,
) (string, PathSource, error) {
	if historical != nil {
		id := entities.NewTrackIdentity(*historical)
		track, err := s.tracker.FetchTrack(ctx, id)
		if err != nil {
			return "", "", fmt.Errorf("track fetch for %s: %w", id, err)
		}
		if len(track) > 0 {
			points, err := pathing.Simplify(track)
			if err != nil {
				return "", "", err
			}
			return pathing.Serialize(points), PathSourceTrack, nil
		}
		log.Infow("No track for historical flight, synthesizing", "ident", id.String())
	} else {
		log.Infow("No historical flight, synthesizing")
	}

	points, err := pathing.Synthesize(*origin, *destination, scheduled.DepartureTime, scheduled.ArrivalTime)
	if err != nil {
		return "", "", fmt.Errorf("synthesize path: %w", err)
	}
	return pathing.Serialize(points), PathSourceSynthetic, nil
}

func (s *FlightPathService) invalidate(ctx context.Context, res *PathResolution, reason string) (*PathResolution, error) {
	if err := s.refs.MarkInvalid(ctx, res.FlightID, reason); err != nil {
		return nil, fmt.Errorf("mark %s invalid: %w", res.FlightID, err)
	}
	res.Status = ResolutionInvalid
	res.Reason = reason
	s.record(string(res.Status), "")
	return res, nil
}

func (s *FlightPathService) record(outcome, source string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ResolutionsTotal.WithLabelValues(outcome, source).Inc()
}

func (s *FlightPathService) cacheResult(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHitsTotal.WithLabelValues("flight_path").Inc()
	} else {
		s.metrics.CacheMissesTotal.WithLabelValues("flight_path").Inc()
	}
}
