package services

import (
	"context"
	"fmt"
	"time"

	"air/atlas/internal/constants"
	"air/atlas/internal/logging"
	"air/atlas/internal/metrics"
	"air/atlas/internal/models/entities"

	"github.com/google/uuid"
)

// RegistrationService creates flight references for callers.
type RegistrationService struct {
	refs    FlightReferenceStore
	metrics *metrics.MetricsRegistry
}

func NewRegistrationService(refs FlightReferenceStore, m *metrics.MetricsRegistry) *RegistrationService {
	return &RegistrationService{refs: refs, metrics: m}
}

// RegisterFlight validates the flight number and date and stores a new
// reference under a fresh id. The flight code is stored in canonical form.
func (svc *RegistrationService) RegisterFlight(ctx context.Context, flightNumber string, date string) (*entities.FlightReference, error) {
	code, err := entities.ParseFlightCode(flightNumber)
	if err != nil {
		return nil, err
	}

	if _, err := time.ParseInLocation(constants.FlightDateLayout, date, time.UTC); err != nil {
		return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", constants.ErrInvalidInput, date)
	}

	ref := &entities.FlightReference{
		ID:         uuid.NewString(),
		FlightCode: code.String(),
		Date:       date,
	}
	if err := svc.refs.Create(ctx, ref); err != nil {
		return nil, fmt.Errorf("store flight reference: %w", err)
	}

	if svc.metrics != nil {
		svc.metrics.FlightsRegisteredTotal.Inc()
	}
	logging.Info("Registered flight", "flight_id", ref.ID, "flight_code", ref.FlightCode, "date", date)

	return ref, nil
}
