package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAirport CachePrefix = "AIRPORT_"
)

const (
	// PathCacheTTLSeconds is how long a resolved path stays servable from flight_paths.
	PathCacheTTLSeconds = 2592000

	SecondsPerDay = 86400

	// FlightDateLayout is the storage and wire format of a flight reference date.
	FlightDateLayout = "2006-01-02"
)
