package pathing

import (
	"fmt"

	"air/atlas/internal/constants"
	"air/atlas/internal/models/entities"
)

// MinPointGap is the number of seconds that must pass after the last kept point
// before another point is kept.
const MinPointGap = 180

// Simplify thins a raw provider track into path points.
//
// A point is emitted one step late: when the current point is more than MinPointGap
// seconds past the last kept point, the point before it is the one that is kept.
// The first raw point is always kept, and the last raw point is always appended.
// Output timestamps are relative to the first raw point.
func Simplify(raw []entities.RawTrackPoint) ([]entities.PathPoint, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty track", constants.ErrInvalidInput)
	}

	initial := raw[0].Timestamp
	convert := func(p entities.RawTrackPoint) entities.PathPoint {
		return entities.PathPoint{
			Timestamp: float64(p.Timestamp - initial),
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Altitude:  p.Altitude,
		}
	}

	points := make([]entities.PathPoint, 0, len(raw))
	prev := raw[0]
	var recent int64
	kept := false

	for _, p := range raw[1:] {
		if !kept || p.Timestamp > recent+MinPointGap {
			points = append(points, convert(prev))
			recent = prev.Timestamp
			kept = true
		}
		prev = p
	}
	points = append(points, convert(raw[len(raw)-1]))

	return points, nil
}
