package services

import (
	"context"
	"errors"
	"testing"

	"air/atlas/internal/constants"
	"air/atlas/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistrationService_RegisterFlight_Success(t *testing.T) {
	refs, _ := setupTestStores(t)
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	svc := NewRegistrationService(refs, m)
	ctx := context.Background()

	ref, err := svc.RegisterFlight(ctx, " baw117 ", "2024-03-01")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ref.ID == "" {
		t.Fatal("Expected an id")
	}
	if ref.FlightCode != "BAW117" {
		t.Errorf("Expected canonical code BAW117, got %s", ref.FlightCode)
	}

	stored, err := refs.GetByID(ctx, ref.ID)
	if err != nil {
		t.Fatalf("Expected stored reference, got %v", err)
	}
	if stored.FlightCode != "BAW117" || stored.Date != "2024-03-01" {
		t.Errorf("Expected BAW117/2024-03-01, got %s/%s", stored.FlightCode, stored.Date)
	}
	if got := testutil.ToFloat64(m.FlightsRegisteredTotal); got != 1 {
		t.Errorf("Expected 1 registration counted, got %v", got)
	}
}

func TestRegistrationService_RegisterFlight_UniqueIDs(t *testing.T) {
	refs, _ := setupTestStores(t)
	svc := NewRegistrationService(refs, nil)

	a, err := svc.RegisterFlight(context.Background(), "BAW117", "2024-03-01")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	b, err := svc.RegisterFlight(context.Background(), "BAW117", "2024-03-01")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if a.ID == b.ID {
		t.Error("Expected a new id per registration")
	}
}

func TestRegistrationService_RegisterFlight_InvalidInput(t *testing.T) {
	refs, _ := setupTestStores(t)
	svc := NewRegistrationService(refs, nil)

	tests := []struct {
		name   string
		flight string
		date   string
	}{
		{"bad code", "12345", "2024-03-01"},
		{"too many digits", "BAW12345", "2024-03-01"},
		{"bad date", "BAW117", "01/03/2024"},
		{"impossible date", "BAW117", "2024-02-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterFlight(context.Background(), tt.flight, tt.date)
			if !errors.Is(err, constants.ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
