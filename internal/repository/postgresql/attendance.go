package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/domain/attendance"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	// The unique key on (staff_id, date) makes re-marking a day an update,
	// never a second row.
	query := `
		INSERT INTO attendance_records (staff_id, date, status, shift_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (staff_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			shift_count = EXCLUDED.shift_count,
			updated_at = NOW()
		RETURNING id, staff_id, date, status, shift_count, created_at, updated_at
	`

	var saved attendance.Record
	err := q.QueryRow(ctx, query, rec.StaffID, rec.Date, rec.Status, rec.ShiftCount).Scan(
		&saved.ID, &saved.StaffID, &saved.Date, &saved.Status, &saved.ShiftCount,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return saved, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, staffID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE staff_id = $1 AND date = $2`, staffID, date)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

func (r *attendanceRepository) ListByStaffRange(ctx context.Context, staffID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, status, shift_count, created_at, updated_at
		FROM attendance_records
		WHERE staff_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Date, &rec.Status, &rec.ShiftCount,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.staff_id, a.date, a.status, a.shift_count, a.created_at, a.updated_at, s.name
		FROM attendance_records a
		JOIN staff s ON a.staff_id = s.id
		WHERE a.date = $1
		ORDER BY s.category, s.name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Date, &rec.Status, &rec.ShiftCount,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.StaffName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
