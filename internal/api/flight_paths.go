package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"air/atlas/internal/common"
	"air/atlas/internal/constants"
	"air/atlas/internal/models/dtos"
	"air/atlas/internal/pathing"
	"air/atlas/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterFlightHandler handles POST /api/v1/register
//
// Accepts flightNumber and date either as a JSON body or as form fields.
func RegisterFlightHandler(registrar FlightRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterFlightReq
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				common.RespondError(w, initTime, nil, "Invalid form body", http.StatusBadRequest)
				return
			}
			req.FlightNumber = r.PostForm.Get("flightNumber")
			req.Date = r.PostForm.Get("date")
		}
		req.FlightNumber = strings.TrimSpace(req.FlightNumber)
		req.Date = strings.TrimSpace(req.Date)

		if err := validate.Struct(req); err != nil {
			common.RespondError(w, initTime, nil, "flightNumber and date (YYYY-MM-DD) are required", http.StatusBadRequest)
			return
		}

		ref, err := registrar.RegisterFlight(r.Context(), req.FlightNumber, req.Date)
		if err != nil {
			respondServiceError(w, initTime, err, "")
			return
		}

		common.RespondSuccess(w, initTime, "Flight registered", dtos.RegisterFlightResponse{
			ID:         ref.ID,
			FlightCode: ref.FlightCode,
			Date:       ref.Date,
		}, http.StatusCreated)
	}
}

// FetchFlightPathHandler handles GET /api/v1/fetch/{id}
//
// Returns the path as JSON points, or as the stored text when ?format=csv.
func FetchFlightPathHandler(resolver FlightPathResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		flightID := chi.URLParam(r, "id")

		res, err := resolver.Resolve(r.Context(), flightID, services.ResolveOptions{})
		if err != nil {
			respondServiceError(w, initTime, err, flightID)
			return
		}

		if res.Status == services.ResolutionInvalid {
			common.RespondError(w, initTime, nil, constants.StatusPathUnavailable, http.StatusUnprocessableEntity,
				dtos.InvalidFlightResponse{FlightID: flightID, Reason: res.Reason})
			return
		}

		if r.URL.Query().Get("format") == "csv" {
			common.RespondText(w, "text/csv", res.Path)
			return
		}

		points, err := pathing.Parse(res.Path)
		if err != nil {
			respondServiceError(w, initTime, err, flightID)
			return
		}

		common.RespondSuccess(w, initTime, "Flight path resolved", dtos.FlightPathResponse{
			FlightID:   flightID,
			FlightCode: res.FlightCode,
			Source:     string(res.Source),
			Points:     points,
		})
	}
}

// ReloadFlightPathHandler handles GET /api/v1/reload/{id}
//
// Queues a forced rebuild of the path and answers 202 without waiting for it.
func ReloadFlightPathHandler(refs FlightReferenceLookup, queue RefreshQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		flightID := chi.URLParam(r, "id")

		if _, err := refs.GetByID(r.Context(), flightID); err != nil {
			respondServiceError(w, initTime, err, flightID)
			return
		}

		if !queue.Enqueue(flightID) {
			common.RespondError(w, initTime, nil, constants.StatusRefreshQueueFull, http.StatusServiceUnavailable)
			return
		}

		common.RespondSuccess(w, initTime, "Refresh queued", dtos.RefreshAcceptedResponse{
			FlightID: flightID,
			Queued:   true,
		}, http.StatusAccepted)
	}
}
