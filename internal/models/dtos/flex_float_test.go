package dtos

import (
	"encoding/json"
	"testing"
)

func TestFlexFloat_Unmarshal(t *testing.T) {
	var ap OpenFlightsAirport
	body := `{"apid":"507","name":"London Heathrow Airport","iata":"LHR","icao":"EGLL","x":"-0.461941","y":51.4706}`

	if err := json.Unmarshal([]byte(body), &ap); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if float64(ap.X) != -0.461941 {
		t.Errorf("Expected x -0.461941, got %v", ap.X)
	}
	if float64(ap.Y) != 51.4706 {
		t.Errorf("Expected y 51.4706, got %v", ap.Y)
	}
}

func TestFlexFloat_RejectsGarbage(t *testing.T) {
	var f FlexFloat
	if err := json.Unmarshal([]byte(`"north"`), &f); err == nil {
		t.Error("Expected error for non-numeric string")
	}
	if err := json.Unmarshal([]byte(`true`), &f); err == nil {
		t.Error("Expected error for boolean")
	}
}
