package pathing

import (
	"errors"
	"testing"

	"air/atlas/internal/constants"
	"air/atlas/internal/models/entities"
)

func TestSerialize_Format(t *testing.T) {
	points := []entities.PathPoint{
		{Timestamp: 0, Latitude: 51.4706, Longitude: -0.461941, Altitude: 0},
		{Timestamp: 240, Latitude: 51.5, Longitude: -1, Altitude: 85},
		{Timestamp: 181.5, Latitude: -33.946111, Longitude: 151.177222, Altitude: 350},
	}

	got := Serialize(points)
	want := "0,51.4706,-0.461941,0\n" +
		"240,51.5,-1,85\n" +
		"181.5,-33.946111,151.177222,350\n"

	if got != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, got)
	}
}

func TestSerialize_Empty(t *testing.T) {
	if got := Serialize(nil); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestParse_ReadsSerializedPath(t *testing.T) {
	text := "0,51.4706,-0.461941,0\n240,51.5,-1,85\n"

	points, err := Parse(text)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(points))
	}
	if points[1].Timestamp != 240 || points[1].Longitude != -1 || points[1].Altitude != 85 {
		t.Errorf("Unexpected point %+v", points[1])
	}
	if Serialize(points) != text {
		t.Errorf("Expected re-serialization to reproduce input, got %q", Serialize(points))
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, text := range []string{
		"0,51.4706,-0.461941\n",
		"abc,51.4706,-0.461941,0\n",
		"0,51.4706,-0.461941,high\n",
	} {
		if _, err := Parse(text); !errors.Is(err, constants.ErrInvalidInput) {
			t.Errorf("Parse(%q): expected ErrInvalidInput, got %v", text, err)
		}
	}
}
