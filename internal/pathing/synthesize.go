package pathing

import (
	"fmt"

	"air/atlas/internal/constants"
	"air/atlas/internal/models/entities"
)

// SyntheticAltitude is the flight level (hundreds of feet) given to every predicted point.
const SyntheticAltitude = 350

// Synthesize predicts a path between two airports assuming one point per
// MinPointGap seconds of flight along the great circle.
//
// Every point carries the same timestamp, duration/pointCount. This matches the
// stored format existing clients read; it is not a monotonic series.
func Synthesize(origin, destination entities.Airport, departure, arrival int64) ([]entities.PathPoint, error) {
	if arrival <= departure {
		return nil, fmt.Errorf("%w: arrival %d is not after departure %d", constants.ErrInvalidInput, arrival, departure)
	}

	duration := arrival - departure
	count := int(duration / MinPointGap)
	if count == 0 {
		return []entities.PathPoint{}, nil
	}

	arc := InterpolateGreatCircle(origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude, count)
	slice := float64(duration) / float64(len(arc))

	points := make([]entities.PathPoint, 0, len(arc))
	for _, p := range arc {
		points = append(points, entities.PathPoint{
			Timestamp: slice,
			Latitude:  p.Lat(),
			Longitude: p.Lon(),
			Altitude:  SyntheticAltitude,
		})
	}

	return points, nil
}
