package repositories

import (
	"context"
	"errors"
	"time"

	"air/atlas/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FlightPathRepository handles flight_paths table operations
type FlightPathRepository struct {
	db *gormlib.DB
}

func NewFlightPathRepository(db *gormlib.DB) *FlightPathRepository {
	return &FlightPathRepository{db: db}
}

// FindValid returns the stored path for flightCode if it expires after now,
// or nil when there is none.
func (r *FlightPathRepository) FindValid(ctx context.Context, flightCode string, now int64) (*gorm.FlightPath, error) {
	var path gorm.FlightPath

	err := r.db.WithContext(ctx).
		Where("flight_code = ? AND expires > ?", flightCode, now).
		First(&path).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &path, nil
}

// Upsert inserts or replaces the row keyed by flight_code.
// ON CONFLICT (flight_code) DO UPDATE
func (r *FlightPathRepository) Upsert(ctx context.Context, path *gorm.FlightPath) error {
	path.UpdatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "flight_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"origin",
				"origin_code",
				"origin_lat",
				"origin_long",
				"destination",
				"destination_code",
				"destination_lat",
				"destination_long",
				"expires",
				"path",
				"updated_at",
			}),
		}).
		Create(path).Error
}

// DeleteExpired removes rows that can no longer be served.
func (r *FlightPathRepository) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires <= ?", now).
		Delete(&gorm.FlightPath{})
	return res.RowsAffected, res.Error
}
