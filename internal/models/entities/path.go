package entities

// RawTrackPoint is one provider-reported position, timestamp in epoch seconds.
type RawTrackPoint struct {
	Timestamp int64
	Latitude  float64
	Longitude float64
	Altitude  int
}

// PathPoint is a normalized path sample. Timestamp is seconds since the first point.
type PathPoint struct {
	Timestamp float64 `json:"timestamp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  int     `json:"altitude"`
}
