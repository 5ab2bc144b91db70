// Package pathing holds the flight path algorithms: great-circle interpolation,
// track simplification, path synthesis and the line-oriented path format.
package pathing

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// InterpolateGreatCircle returns count points evenly spaced along the great-circle
// arc from (lat1, lon1) to (lat2, lon2), endpoints excluded. Point i sits at
// fraction i/(count+1) of the arc. The earth is modelled as a sphere of radius
// orb.EarthRadius.
//
// Results are orb.Point values, which are {lon, lat}; read them with Lat() and Lon().
func InterpolateGreatCircle(lat1, lon1, lat2, lon2 float64, count int) []orb.Point {
	if count <= 0 {
		return []orb.Point{}
	}

	from := orb.Point{lon1, lat1}
	to := orb.Point{lon2, lat2}
	points := make([]orb.Point, 0, count)

	// Zero-length arc: every intermediate point is the endpoint itself.
	if from.Equal(to) {
		for i := 0; i < count; i++ {
			points = append(points, from)
		}
		return points
	}

	distance := geo.Distance(from, to)
	bearing := geo.Bearing(from, to)
	step := distance / float64(count+1)

	for i := 1; i <= count; i++ {
		p := geo.PointAtBearingAndDistance(from, bearing, step*float64(i))
		p[0] = normalizeLongitude(p[0])
		points = append(points, p)
	}

	return points
}

// normalizeLongitude wraps lon into [-180, 180).
func normalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
