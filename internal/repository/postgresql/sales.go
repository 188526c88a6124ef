package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/domain/sales"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salesRepository struct {
	db *database.DB
}

func NewSalesRepository(db *database.DB) sales.SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) Create(ctx context.Context, s sales.Sale) (sales.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO petroleum_sales (date, fuel, quantity, rate, amount, payment_mode, party_id, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, date, fuel, quantity, rate, amount, payment_mode, party_id, note, created_at
	`

	var saved sales.Sale
	err := q.QueryRow(ctx, query,
		s.Date, s.Fuel, s.Quantity, s.Rate, s.Amount, s.PaymentMode, s.PartyID, s.Note,
	).Scan(
		&saved.ID, &saved.Date, &saved.Fuel, &saved.Quantity, &saved.Rate,
		&saved.Amount, &saved.PaymentMode, &saved.PartyID, &saved.Note, &saved.CreatedAt,
	)
	if err != nil {
		return sales.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	return saved, nil
}

func (r *salesRepository) GetByID(ctx context.Context, id string) (sales.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.date, s.fuel, s.quantity, s.rate, s.amount, s.payment_mode,
			s.party_id, s.note, s.created_at, p.name
		FROM petroleum_sales s
		LEFT JOIN credit_parties p ON s.party_id = p.id
		WHERE s.id = $1
	`

	var s sales.Sale
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Date, &s.Fuel, &s.Quantity, &s.Rate, &s.Amount,
		&s.PaymentMode, &s.PartyID, &s.Note, &s.CreatedAt, &s.PartyName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sales.Sale{}, sales.ErrSaleNotFound
		}
		return sales.Sale{}, fmt.Errorf("failed to get sale: %w", err)
	}

	return s, nil
}

func (r *salesRepository) ListByRange(ctx context.Context, from, to time.Time) ([]sales.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.date, s.fuel, s.quantity, s.rate, s.amount, s.payment_mode,
			s.party_id, s.note, s.created_at, p.name
		FROM petroleum_sales s
		LEFT JOIN credit_parties p ON s.party_id = p.id
		WHERE s.date >= $1 AND s.date <= $2
		ORDER BY s.date, s.created_at
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var list []sales.Sale
	for rows.Next() {
		var s sales.Sale
		if err := rows.Scan(
			&s.ID, &s.Date, &s.Fuel, &s.Quantity, &s.Rate, &s.Amount,
			&s.PaymentMode, &s.PartyID, &s.Note, &s.CreatedAt, &s.PartyName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		list = append(list, s)
	}

	return list, nil
}

func (r *salesRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM petroleum_sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sales.ErrSaleNotFound
	}

	return nil
}
