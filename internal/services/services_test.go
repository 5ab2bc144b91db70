package services

import (
	"context"
	"testing"

	"air/atlas/internal/config"
	"air/atlas/internal/db"
	"air/atlas/internal/db/repositories"
	"air/atlas/internal/models/entities"

	"github.com/google/uuid"
)

// Mock FlightTracker
type mockFlightTracker struct {
	findScheduleFunc func(ctx context.Context, code entities.FlightCode, start, end int64) (*entities.ScheduledFlight, error)
	fetchTrackFunc   func(ctx context.Context, id entities.TrackIdentity) ([]entities.RawTrackPoint, error)

	scheduleCalls int
	trackCalls    int
}

func (m *mockFlightTracker) FindSchedule(ctx context.Context, code entities.FlightCode, start, end int64) (*entities.ScheduledFlight, error) {
	m.scheduleCalls++
	return m.findScheduleFunc(ctx, code, start, end)
}

func (m *mockFlightTracker) FetchTrack(ctx context.Context, id entities.TrackIdentity) ([]entities.RawTrackPoint, error) {
	m.trackCalls++
	if m.fetchTrackFunc == nil {
		return nil, nil
	}
	return m.fetchTrackFunc(ctx, id)
}

// Mock AirportDirectory
type mockAirportDirectory struct {
	lookupFunc func(ctx context.Context, icao string) (*entities.Airport, error)
	calls      int
}

func (m *mockAirportDirectory) LookupAirport(ctx context.Context, icao string) (*entities.Airport, error) {
	m.calls++
	return m.lookupFunc(ctx, icao)
}

var testAirports = map[string]entities.Airport{
	"EGLL": {Name: "London Heathrow Airport", IATA: "LHR", ICAO: "EGLL", Latitude: 51.4706, Longitude: -0.461941},
	"KJFK": {Name: "John F Kennedy International Airport", IATA: "JFK", ICAO: "KJFK", Latitude: 40.639801, Longitude: -73.7789},
}

func knownAirports() *mockAirportDirectory {
	return &mockAirportDirectory{
		lookupFunc: func(ctx context.Context, icao string) (*entities.Airport, error) {
			ap, ok := testAirports[icao]
			if !ok {
				return nil, nil
			}
			return &ap, nil
		},
	}
}

// Setup test database
func setupTestStores(t *testing.T) (*repositories.FlightReferenceRepository, *repositories.FlightPathRepository) {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}

	orm, err := db.InitORM(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(orm); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	conn, err := db.InitSQLX(cfg, orm)
	if err != nil {
		t.Fatalf("Failed to open sqlx handle: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return repositories.NewFlightReferenceRepository(conn), repositories.NewFlightPathRepository(orm)
}

func registerTestFlight(t *testing.T, refs FlightReferenceStore, code, date string) string {
	t.Helper()
	ref := &entities.FlightReference{ID: uuid.NewString(), FlightCode: code, Date: date}
	if err := refs.Create(context.Background(), ref); err != nil {
		t.Fatalf("Failed to create reference: %v", err)
	}
	return ref.ID
}
