package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/domain/dispatch"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dispatchRepository struct {
	db *database.DB
}

func NewDispatchRepository(db *database.DB) dispatch.DispatchRepository {
	return &dispatchRepository{db: db}
}

func (r *dispatchRepository) Create(ctx context.Context, e dispatch.Entry) (dispatch.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO dispatch_entries (date, vehicle_no, driver_id, material, trips, rate, amount, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, date, vehicle_no, driver_id, material, trips, rate, amount, note, created_at
	`

	var saved dispatch.Entry
	err := q.QueryRow(ctx, query,
		e.Date, e.VehicleNo, e.DriverID, e.Material, e.Trips, e.Rate, e.Amount, e.Note,
	).Scan(
		&saved.ID, &saved.Date, &saved.VehicleNo, &saved.DriverID, &saved.Material,
		&saved.Trips, &saved.Rate, &saved.Amount, &saved.Note, &saved.CreatedAt,
	)
	if err != nil {
		return dispatch.Entry{}, fmt.Errorf("failed to create dispatch entry: %w", err)
	}

	return saved, nil
}

func (r *dispatchRepository) GetByID(ctx context.Context, id string) (dispatch.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.date, e.vehicle_no, e.driver_id, e.material, e.trips, e.rate,
			e.amount, e.note, e.created_at, s.name
		FROM dispatch_entries e
		JOIN staff s ON e.driver_id = s.id
		WHERE e.id = $1
	`

	var e dispatch.Entry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Date, &e.VehicleNo, &e.DriverID, &e.Material, &e.Trips,
		&e.Rate, &e.Amount, &e.Note, &e.CreatedAt, &e.DriverName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return dispatch.Entry{}, dispatch.ErrEntryNotFound
		}
		return dispatch.Entry{}, fmt.Errorf("failed to get dispatch entry: %w", err)
	}

	return e, nil
}

func (r *dispatchRepository) ListByRange(ctx context.Context, from, to time.Time) ([]dispatch.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.date, e.vehicle_no, e.driver_id, e.material, e.trips, e.rate,
			e.amount, e.note, e.created_at, s.name
		FROM dispatch_entries e
		JOIN staff s ON e.driver_id = s.id
		WHERE e.date >= $1 AND e.date <= $2
		ORDER BY e.date, e.created_at
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch entries: %w", err)
	}
	defer rows.Close()

	var entries []dispatch.Entry
	for rows.Next() {
		var e dispatch.Entry
		if err := rows.Scan(
			&e.ID, &e.Date, &e.VehicleNo, &e.DriverID, &e.Material, &e.Trips,
			&e.Rate, &e.Amount, &e.Note, &e.CreatedAt, &e.DriverName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan dispatch entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *dispatchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM dispatch_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dispatch entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dispatch.ErrEntryNotFound
	}

	return nil
}
