package services

import (
	"context"

	"air/atlas/internal/models/entities"
	"air/atlas/internal/models/gorm"
)

// FlightTracker answers schedule and historical-track queries.
// Both methods return nil, nil when the provider has no match.
type FlightTracker interface {
	FindSchedule(ctx context.Context, code entities.FlightCode, start, end int64) (*entities.ScheduledFlight, error)
	FetchTrack(ctx context.Context, id entities.TrackIdentity) ([]entities.RawTrackPoint, error)
}

// AirportDirectory resolves an ICAO code to the first matching airport.
type AirportDirectory interface {
	LookupAirport(ctx context.Context, icao string) (*entities.Airport, error)
}

type FlightReferenceStore interface {
	GetByID(ctx context.Context, id string) (*entities.FlightReference, error)
	Create(ctx context.Context, ref *entities.FlightReference) error
	SetDepartureTime(ctx context.Context, id string, departure int64) error
	MarkInvalid(ctx context.Context, id string, reason string) error
}

type FlightPathStore interface {
	FindValid(ctx context.Context, flightCode string, now int64) (*gorm.FlightPath, error)
	Upsert(ctx context.Context, path *gorm.FlightPath) error
}
