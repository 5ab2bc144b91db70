package dtos

import "air/atlas/internal/models/entities"

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type RegisterFlightResponse struct {
	ID         string `json:"id"`
	FlightCode string `json:"flight_code"`
	Date       string `json:"date"`
}

type FlightPathResponse struct {
	FlightID   string               `json:"flight_id"`
	FlightCode string               `json:"flight_code"`
	Source     string               `json:"source"`
	Points     []entities.PathPoint `json:"points"`
}

type InvalidFlightResponse struct {
	FlightID string `json:"flight_id"`
	Reason   string `json:"reason"`
}

type RefreshAcceptedResponse struct {
	FlightID string `json:"flight_id"`
	Queued   bool   `json:"queued"`
}
