package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/domain/salary"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `id, staff_id, month, year, shift_rate, total_shifts, shift_amount,
	total_advance, carry_forward, payable, is_paid, paid_date, paid_by, created_at, updated_at`

func scanSalaryRecord(row pgx.Row) (salary.Record, error) {
	var rec salary.Record
	err := row.Scan(
		&rec.ID, &rec.StaffID, &rec.Month, &rec.Year, &rec.ShiftRate, &rec.TotalShifts,
		&rec.ShiftAmount, &rec.TotalAdvance, &rec.CarryForward, &rec.Payable,
		&rec.IsPaid, &rec.PaidDate, &rec.PaidBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *salaryRepository) GetByStaffPeriod(ctx context.Context, staffID string, month, year int) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salary_records
		WHERE staff_id = $1 AND month = $2 AND year = $3`

	rec, err := scanSalaryRecord(q.QueryRow(ctx, query, staffID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Record{}, salary.ErrRecordNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return rec, nil
}

func (r *salaryRepository) Upsert(ctx context.Context, rec salary.Record) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	// uk_salary_staff_period guarantees a second pay action for the same
	// period overwrites the previous row.
	query := `
		INSERT INTO salary_records (
			staff_id, month, year, shift_rate, total_shifts, shift_amount,
			total_advance, carry_forward, payable, is_paid, paid_date, paid_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (staff_id, month, year) DO UPDATE SET
			shift_rate = EXCLUDED.shift_rate,
			total_shifts = EXCLUDED.total_shifts,
			shift_amount = EXCLUDED.shift_amount,
			total_advance = EXCLUDED.total_advance,
			carry_forward = EXCLUDED.carry_forward,
			payable = EXCLUDED.payable,
			is_paid = EXCLUDED.is_paid,
			paid_date = EXCLUDED.paid_date,
			paid_by = EXCLUDED.paid_by,
			updated_at = NOW()
		RETURNING ` + salaryColumns

	saved, err := scanSalaryRecord(q.QueryRow(ctx, query,
		rec.StaffID, rec.Month, rec.Year, rec.ShiftRate, rec.TotalShifts, rec.ShiftAmount,
		rec.TotalAdvance, rec.CarryForward, rec.Payable, rec.IsPaid, rec.PaidDate, rec.PaidBy,
	))
	if err != nil {
		return salary.Record{}, fmt.Errorf("failed to upsert salary record: %w", err)
	}

	return saved, nil
}

func (r *salaryRepository) SetPaidStatus(ctx context.Context, staffID string, month, year int, isPaid bool, paidDate *time.Time, paidBy *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE salary_records
		SET is_paid = $4, paid_date = $5, paid_by = $6, updated_at = NOW()
		WHERE staff_id = $1 AND month = $2 AND year = $3
	`, staffID, month, year, isPaid, paidDate, paidBy)
	if err != nil {
		return fmt.Errorf("failed to set salary paid status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrRecordNotFound
	}

	return nil
}

func (r *salaryRepository) ListByPeriod(ctx context.Context, month, year int) ([]salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.staff_id, r.month, r.year, r.shift_rate, r.total_shifts, r.shift_amount,
			r.total_advance, r.carry_forward, r.payable, r.is_paid, r.paid_date, r.paid_by,
			r.created_at, r.updated_at, s.name
		FROM salary_records r
		JOIN staff s ON r.staff_id = s.id
		WHERE r.month = $1 AND r.year = $2
		ORDER BY s.category, s.name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	return scanSalaryRecordsWithName(rows)
}

func (r *salaryRepository) ListByStaff(ctx context.Context, staffID string) ([]salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.staff_id, r.month, r.year, r.shift_rate, r.total_shifts, r.shift_amount,
			r.total_advance, r.carry_forward, r.payable, r.is_paid, r.paid_date, r.paid_by,
			r.created_at, r.updated_at, s.name
		FROM salary_records r
		JOIN staff s ON r.staff_id = s.id
		WHERE r.staff_id = $1
		ORDER BY r.year DESC, r.month DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	return scanSalaryRecordsWithName(rows)
}

func scanSalaryRecordsWithName(rows pgx.Rows) ([]salary.Record, error) {
	var records []salary.Record
	for rows.Next() {
		var rec salary.Record
		if err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Month, &rec.Year, &rec.ShiftRate, &rec.TotalShifts,
			&rec.ShiftAmount, &rec.TotalAdvance, &rec.CarryForward, &rec.Payable,
			&rec.IsPaid, &rec.PaidDate, &rec.PaidBy, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.StaffName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
