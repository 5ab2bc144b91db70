package constants

// Queries are written with '?' placeholders and rebound per driver by sqlx.
const (
	GetFlightReferenceByID = `
	SELECT id, flight_code, date, departure_time, invalid FROM flight_ids WHERE id = ?
	`

	InsertFlightReference = `
	INSERT INTO flight_ids (id, flight_code, date, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
	`

	SetFlightDepartureTime = `
	UPDATE flight_ids SET departure_time = ?, updated_at = ? WHERE id = ?
	`

	MarkFlightInvalid = `
	UPDATE flight_ids SET invalid = ?, updated_at = ? WHERE id = ?
	`
)
