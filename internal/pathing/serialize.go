package pathing

import (
	"fmt"
	"strconv"
	"strings"

	"air/atlas/internal/constants"
	"air/atlas/internal/models/entities"
)

// Serialize renders points as "timestamp,latitude,longitude,altitude" lines,
// each terminated by a newline.
func Serialize(points []entities.PathPoint) string {
	var b strings.Builder
	for _, p := range points {
		b.WriteString(formatFloat(p.Timestamp))
		b.WriteByte(',')
		b.WriteString(formatFloat(p.Latitude))
		b.WriteByte(',')
		b.WriteString(formatFloat(p.Longitude))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Altitude))
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse reads text produced by Serialize back into points.
func Parse(text string) ([]entities.PathPoint, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	points := make([]entities.PathPoint, 0, len(lines))

	for i, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d has %d fields", constants.ErrInvalidInput, i+1, len(fields))
		}

		var (
			p   entities.PathPoint
			err error
		)
		if p.Timestamp, err = strconv.ParseFloat(fields[0], 64); err != nil {
			return nil, fmt.Errorf("%w: line %d timestamp: %v", constants.ErrInvalidInput, i+1, err)
		}
		if p.Latitude, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("%w: line %d latitude: %v", constants.ErrInvalidInput, i+1, err)
		}
		if p.Longitude, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("%w: line %d longitude: %v", constants.ErrInvalidInput, i+1, err)
		}
		if p.Altitude, err = strconv.Atoi(fields[3]); err != nil {
			return nil, fmt.Errorf("%w: line %d altitude: %v", constants.ErrInvalidInput, i+1, err)
		}
		points = append(points, p)
	}

	return points, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
