package entities

// Airport is an airport-directory record.
type Airport struct {
	Name      string  `json:"name"`
	IATA      string  `json:"iata"`
	ICAO      string  `json:"icao"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
