package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/domain/advance"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

func (r *advanceRepository) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (staff_id, amount, date, note, is_deducted)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id, staff_id, amount, date, note, is_deducted, created_at, updated_at
	`

	var created advance.Advance
	err := q.QueryRow(ctx, query, a.StaffID, a.Amount, a.Date, a.Note).Scan(
		&created.ID, &created.StaffID, &created.Amount, &created.Date, &created.Note,
		&created.IsDeducted, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return created, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, amount, date, note, is_deducted, created_at, updated_at
		FROM advances
		WHERE id = $1
	`

	var a advance.Advance
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.StaffID, &a.Amount, &a.Date, &a.Note,
		&a.IsDeducted, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) ListByStaffRange(ctx context.Context, staffID string, from, to time.Time) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, amount, date, note, is_deducted, created_at, updated_at
		FROM advances
		WHERE staff_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	return r.queryAdvances(ctx, q, query, staffID, from, to)
}

func (r *advanceRepository) ListPendingByStaff(ctx context.Context, staffID string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, amount, date, note, is_deducted, created_at, updated_at
		FROM advances
		WHERE staff_id = $1 AND is_deducted = false
		ORDER BY date
	`

	return r.queryAdvances(ctx, q, query, staffID)
}

func (r *advanceRepository) queryAdvances(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]advance.Advance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var a advance.Advance
		if err := rows.Scan(
			&a.ID, &a.StaffID, &a.Amount, &a.Date, &a.Note,
			&a.IsDeducted, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, nil
}

func (r *advanceRepository) MarkDeductedByStaff(ctx context.Context, staffID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE advances SET is_deducted = true, updated_at = NOW()
		WHERE staff_id = $1 AND is_deducted = false
	`, staffID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark advances deducted: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *advanceRepository) SetDeducted(ctx context.Context, id string, deducted bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE advances SET is_deducted = $2, updated_at = NOW() WHERE id = $1
	`, id, deducted)
	if err != nil {
		return fmt.Errorf("failed to set advance deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}

func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}

func (r *advanceRepository) DeleteByStaff(ctx context.Context, staffID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advances WHERE staff_id = $1`, staffID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete advances: %w", err)
	}

	return tag.RowsAffected(), nil
}
