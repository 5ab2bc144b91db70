package constants

// Reasons written to flight_ids.invalid. Once set the reference will not resolve
// until the upstream data changes.
const (
	InvalidReasonNoFlightForDay = "No flight for given day"
	InvalidReasonNoAirportInfo  = "No information available about provided airport"
)

const (
	StatusFlightNotFound   = "Flight ID not found"
	StatusInvalidRequest   = "Invalid request"
	StatusProviderFailure  = "Upstream provider request failed"
	StatusRefreshQueueFull = "Refresh queue is full, try again later"
	StatusPathUnavailable  = "No path available for this flight"
)
