package pathing

import (
	"errors"
	"testing"

	"air/atlas/internal/constants"
	"air/atlas/internal/models/entities"
)

var (
	heathrow = entities.Airport{Name: "London Heathrow Airport", IATA: "LHR", ICAO: "EGLL", Latitude: 51.4706, Longitude: -0.461941}
	kennedy  = entities.Airport{Name: "John F Kennedy International Airport", IATA: "JFK", ICAO: "KJFK", Latitude: 40.639751, Longitude: -73.778925}
)

func TestSynthesize_RejectsNonPositiveDuration(t *testing.T) {
	for _, tc := range []struct {
		name               string
		departure, arrival int64
	}{
		{"equal", 1500000000, 1500000000},
		{"reversed", 1500003600, 1500000000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Synthesize(heathrow, kennedy, tc.departure, tc.arrival)
			if !errors.Is(err, constants.ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSynthesize_ShortFlightIsEmpty(t *testing.T) {
	points, err := Synthesize(heathrow, kennedy, 1500000000, 1500000179)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(points) != 0 {
		t.Errorf("Expected no points for a flight under 180s, got %d", len(points))
	}
}

func TestSynthesize_PointCountAndAltitude(t *testing.T) {
	departure := int64(1500000000)
	arrival := departure + 7*3600 + 100 // 25300s -> 140 points

	points, err := Synthesize(heathrow, kennedy, departure, arrival)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(points) != 140 {
		t.Fatalf("Expected 140 points, got %d", len(points))
	}
	for i, p := range points {
		if p.Altitude != SyntheticAltitude {
			t.Errorf("Point %d: expected altitude %d, got %d", i, SyntheticAltitude, p.Altitude)
		}
	}

	arc := InterpolateGreatCircle(heathrow.Latitude, heathrow.Longitude, kennedy.Latitude, kennedy.Longitude, 140)
	for i, p := range points {
		if p.Latitude != arc[i].Lat() || p.Longitude != arc[i].Lon() {
			t.Errorf("Point %d: expected (%v, %v), got (%v, %v)", i, arc[i].Lat(), arc[i].Lon(), p.Latitude, p.Longitude)
		}
	}
}

func TestSynthesize_TransPacificLongitudesInRange(t *testing.T) {
	haneda := entities.Airport{Name: "Tokyo Haneda International Airport", IATA: "HND", ICAO: "RJTT", Latitude: 35.552299, Longitude: 139.779999}
	honolulu := entities.Airport{Name: "Daniel K Inouye International Airport", IATA: "HNL", ICAO: "PHNL", Latitude: 21.32062, Longitude: -157.924228}

	departure := int64(1500000000)
	points, err := Synthesize(haneda, honolulu, departure, departure+7*3600)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(points) == 0 {
		t.Fatal("Expected a synthesized path")
	}
	for i, p := range points {
		if p.Longitude < -180 || p.Longitude >= 180 {
			t.Errorf("Point %d: longitude %v out of range", i, p.Longitude)
		}
	}
}

// Every synthesized point carries the same timestamp (one time slice), not an
// increasing series. Clients depend on this stored format; if it is ever changed
// this test must change with it.
func TestSynthesize_UniformTimestampQuirk(t *testing.T) {
	departure := int64(1500000000)
	arrival := departure + 1000 // 5 points, slice 200s

	points, err := Synthesize(heathrow, kennedy, departure, arrival)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(points) != 5 {
		t.Fatalf("Expected 5 points, got %d", len(points))
	}
	for i, p := range points {
		if p.Timestamp != 200 {
			t.Errorf("Point %d: expected timestamp 200, got %v", i, p.Timestamp)
		}
	}
}

func TestSynthesize_FractionalSlice(t *testing.T) {
	departure := int64(1500000000)
	arrival := departure + 400 // 2 points, slice 200s
	points, err := Synthesize(heathrow, kennedy, departure, arrival)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(points) != 2 || points[0].Timestamp != 200 {
		t.Fatalf("Unexpected points %+v", points)
	}

	arrival = departure + 545 // 3 points, slice 181.666...
	points, err = Synthesize(heathrow, kennedy, departure, arrival)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(points))
	}
	if points[2].Timestamp != float64(545)/3 {
		t.Errorf("Expected timestamp %v, got %v", float64(545)/3, points[2].Timestamp)
	}
}
