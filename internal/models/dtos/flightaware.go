package dtos

// FlightXML3 response shapes. Only the fields the service reads are typed
// strictly; the rest are kept for logging and debugging.

type AirlineFlightSchedulesResponse struct {
	Error  string                        `json:"error,omitempty"`
	Result *AirlineFlightSchedulesResult `json:"AirlineFlightSchedulesResult,omitempty"`
}

type AirlineFlightSchedulesResult struct {
	NextOffset int                   `json:"next_offset"`
	Flights    []FlightScheduleEntry `json:"flights"`
}

type FlightScheduleEntry struct {
	Ident              string `json:"ident"`
	ActualIdent        string `json:"actual_ident"`
	DepartureTime      int64  `json:"departuretime"`
	ArrivalTime        int64  `json:"arrivaltime"`
	Origin             string `json:"origin"`
	Destination        string `json:"destination"`
	AircraftType       string `json:"aircrafttype"`
	MealService        string `json:"meal_service"`
	SeatsCabinFirst    int    `json:"seats_cabin_first"`
	SeatsCabinBusiness int    `json:"seats_cabin_business"`
	SeatsCabinCoach    int    `json:"seats_cabin_coach"`
}

type GetFlightTrackResponse struct {
	Error  string                `json:"error,omitempty"`
	Result *GetFlightTrackResult `json:"GetFlightTrackResult,omitempty"`
}

type GetFlightTrackResult struct {
	Tracks []FlightTrackPoint `json:"tracks"`
}

type FlightTrackPoint struct {
	Timestamp      int64   `json:"timestamp"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Altitude       int     `json:"altitude"` // hundreds of feet
	Groundspeed    int     `json:"groundspeed"`
	UpdateType     string  `json:"update_type"`
	AltitudeStatus string  `json:"altitude_status"`
	AltitudeChange string  `json:"altitude_change"`
}
