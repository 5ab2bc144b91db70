package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"air/atlas/internal/constants"
	"air/atlas/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// FlightReferenceRepository reads and writes flight_ids rows with raw SQL.
type FlightReferenceRepository struct {
	db *sqlx.DB
}

func NewFlightReferenceRepository(db *sqlx.DB) *FlightReferenceRepository {
	return &FlightReferenceRepository{db: db}
}

// GetByID returns constants.ErrNotFound for an unknown id.
func (r *FlightReferenceRepository) GetByID(ctx context.Context, id string) (*entities.FlightReference, error) {
	var ref entities.FlightReference

	err := r.db.QueryRowxContext(ctx, r.db.Rebind(constants.GetFlightReferenceByID), id).StructScan(&ref)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("flight reference %s: %w", id, constants.ErrNotFound)
		}
		return nil, err
	}

	return &ref, nil
}

func (r *FlightReferenceRepository) Create(ctx context.Context, ref *entities.FlightReference) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, r.db.Rebind(constants.InsertFlightReference),
		ref.ID,
		ref.FlightCode,
		ref.Date,
		now,
		now,
	)
	return err
}

func (r *FlightReferenceRepository) SetDepartureTime(ctx context.Context, id string, departure int64) error {
	return r.update(ctx, constants.SetFlightDepartureTime, id, departure)
}

// MarkInvalid records why the reference cannot be resolved.
func (r *FlightReferenceRepository) MarkInvalid(ctx context.Context, id string, reason string) error {
	return r.update(ctx, constants.MarkFlightInvalid, id, reason)
}

func (r *FlightReferenceRepository) update(ctx context.Context, query string, id string, value any) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), value, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("flight reference %s: %w", id, constants.ErrNotFound)
	}
	return nil
}

// Ping is used by the health check.
func (r *FlightReferenceRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
