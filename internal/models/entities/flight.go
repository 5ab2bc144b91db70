package entities

import "fmt"

// FlightReference is a caller's request for one flight on one date.
type FlightReference struct {
	ID            string  `db:"id" json:"id"`
	FlightCode    string  `db:"flight_code" json:"flight_code"`
	Date          string  `db:"date" json:"date"`
	DepartureTime *int64  `db:"departure_time" json:"departure_time,omitempty"`
	Invalid       *string `db:"invalid" json:"invalid,omitempty"`
}

// ScheduledFlight is a single schedule entry reported by the flight-tracking provider.
type ScheduledFlight struct {
	Ident         string `json:"ident"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime int64  `json:"departure_time"`
	ArrivalTime   int64  `json:"arrival_time"`
}

// TrackIdentity addresses one historical flight instance at the provider.
type TrackIdentity struct {
	Ident         string
	DepartureTime int64
}

func NewTrackIdentity(f ScheduledFlight) TrackIdentity {
	return TrackIdentity{Ident: f.Ident, DepartureTime: f.DepartureTime}
}

// String renders the provider's "ident@departure" form.
func (t TrackIdentity) String() string {
	return fmt.Sprintf("%s@%d", t.Ident, t.DepartureTime)
}
