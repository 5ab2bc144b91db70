package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"air/atlas/internal/config"
)

func newTestOpenFlights(t *testing.T, handler http.HandlerFunc) *OpenFlightsProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewOpenFlightsProvider(config.OpenFlightsConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, nil)
}

func TestOpenFlightsProvider_LookupAirport_Success(t *testing.T) {
	p := newTestOpenFlights(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("Failed to parse form: %v", err)
		}
		if r.PostForm.Get("icao") != "EGLL" {
			t.Errorf("Expected icao=EGLL, got %s", r.PostForm.Get("icao"))
		}
		if r.PostForm.Get("db") != "airports" {
			t.Errorf("Expected db=airports, got %s", r.PostForm.Get("db"))
		}

		w.Write([]byte(`{"status":1,"offset":0,"max":2,"airports":[
			{"apid":"507","name":"London Heathrow Airport","iata":"LHR","icao":"EGLL","x":"-0.461941","y":"51.4706"},
			{"apid":"9999","name":"Somewhere Else","iata":"","icao":"EGLL","x":"1","y":"2"}]}`))
	})

	ap, err := p.LookupAirport(context.Background(), "egll")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ap == nil {
		t.Fatal("Expected an airport, got nil")
	}
	if ap.Name != "London Heathrow Airport" {
		t.Errorf("Expected first match, got %s", ap.Name)
	}
	if ap.Latitude != 51.4706 || ap.Longitude != -0.461941 {
		t.Errorf("Expected (51.4706, -0.461941), got (%v, %v)", ap.Latitude, ap.Longitude)
	}
}

func TestOpenFlightsProvider_LookupAirport_NoMatch(t *testing.T) {
	p := newTestOpenFlights(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":0,"offset":0,"max":0,"airports":[]}`))
	})

	ap, err := p.LookupAirport(context.Background(), "ZZZZ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ap != nil {
		t.Errorf("Expected nil airport, got %+v", ap)
	}
}

func TestOpenFlightsProvider_LookupAirport_ServerError(t *testing.T) {
	p := newTestOpenFlights(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := p.LookupAirport(context.Background(), "EGLL")
	if !IsTransportError(err) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}
}

func TestOpenFlightsProvider_LookupAirport_EmptyCode(t *testing.T) {
	p := NewOpenFlightsProvider(config.OpenFlightsConfig{BaseURL: "http://127.0.0.1:1"}, nil)

	if _, err := p.LookupAirport(context.Background(), "  "); err == nil {
		t.Error("Expected error for empty ICAO code")
	}
}
