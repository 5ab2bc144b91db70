package dtos

// AirportSearchResponse is the apsearch.php reply. Coordinates arrive as strings.
type AirportSearchResponse struct {
	Status   int                  `json:"status"`
	Offset   int                  `json:"offset"`
	Max      int                  `json:"max"`
	Airports []OpenFlightsAirport `json:"airports"`
}

type OpenFlightsAirport struct {
	ID       string    `json:"apid"`
	Name     string    `json:"name"`
	City     string    `json:"city"`
	Country  string    `json:"country"`
	IATA     string    `json:"iata"`
	ICAO     string    `json:"icao"`
	X        FlexFloat `json:"x"` // longitude
	Y        FlexFloat `json:"y"` // latitude
	Timezone string    `json:"timezone"`
	DST      string    `json:"dst"`
}
