package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"air/atlas/internal/common"
	"air/atlas/internal/constants"
	"air/atlas/internal/logging"
	"air/atlas/internal/models/entities"
	"air/atlas/internal/providers"
	"air/atlas/internal/services"
)

type FlightRegistrar interface {
	RegisterFlight(ctx context.Context, flightNumber string, date string) (*entities.FlightReference, error)
}

type FlightPathResolver interface {
	Resolve(ctx context.Context, flightID string, opts services.ResolveOptions) (*services.PathResolution, error)
}

type FlightReferenceLookup interface {
	GetByID(ctx context.Context, id string) (*entities.FlightReference, error)
}

type RefreshQueue interface {
	Enqueue(flightID string) bool
}

// Pinger is anything the health check can ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

// respondServiceError maps a service error to its HTTP status.
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error, flightID string) {
	switch {
	case errors.Is(err, constants.ErrNotFound):
		common.RespondError(w, initTime, nil, constants.StatusFlightNotFound, http.StatusNotFound)
	case errors.Is(err, constants.ErrInvalidInput):
		common.RespondError(w, initTime, err, constants.StatusInvalidRequest, http.StatusBadRequest)
	case providers.IsTransportError(err):
		logging.Error("Provider request failed", "flight_id", flightID, "error", err)
		common.RespondError(w, initTime, nil, constants.StatusProviderFailure, http.StatusBadGateway)
	default:
		logging.Error("Request failed", "flight_id", flightID, "error", err)
		common.RespondError(w, initTime, nil, "Internal server error", http.StatusInternalServerError)
	}
}
