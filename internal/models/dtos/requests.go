package dtos

// RegisterFlightReq is the body of POST /api/v1/register (JSON or form encoded).
type RegisterFlightReq struct {
	FlightNumber string `json:"flightNumber" validate:"required,min=3,max=8"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
}
