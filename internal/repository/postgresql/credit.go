package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/domain/credit"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type creditRepository struct {
	db *database.DB
}

func NewCreditRepository(db *database.DB) credit.CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) CreateParty(ctx context.Context, p credit.Party) (credit.Party, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO credit_parties (name, phone, note, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id, name, phone, note, is_active, created_at, updated_at
	`

	var saved credit.Party
	err := q.QueryRow(ctx, query, p.Name, p.Phone, p.Note).Scan(
		&saved.ID, &saved.Name, &saved.Phone, &saved.Note,
		&saved.IsActive, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return credit.Party{}, fmt.Errorf("failed to create credit party: %w", err)
	}

	return saved, nil
}

func (r *creditRepository) GetParty(ctx context.Context, id string) (credit.Party, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, note, is_active, created_at, updated_at
		FROM credit_parties
		WHERE id = $1
	`

	var p credit.Party
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Phone, &p.Note, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return credit.Party{}, credit.ErrPartyNotFound
		}
		return credit.Party{}, fmt.Errorf("failed to get credit party: %w", err)
	}

	return p, nil
}

func (r *creditRepository) ListParties(ctx context.Context, activeOnly bool) ([]credit.Party, error) {
	q := GetQuerier(ctx, r.db)

	// Balance is derived from the full transaction history, credits minus
	// payments. A party with no transactions balances to zero.
	query := `
		SELECT p.id, p.name, p.phone, p.note, p.is_active, p.created_at, p.updated_at,
			COALESCE(SUM(CASE WHEN t.kind = 'credit' THEN t.amount ELSE -t.amount END), 0)
		FROM credit_parties p
		LEFT JOIN credit_transactions t ON t.party_id = p.id
	`
	if activeOnly {
		query += ` WHERE p.is_active = true`
	}
	query += `
		GROUP BY p.id
		ORDER BY p.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit parties: %w", err)
	}
	defer rows.Close()

	var parties []credit.Party
	for rows.Next() {
		var p credit.Party
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Phone, &p.Note, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt, &p.Balance,
		); err != nil {
			return nil, fmt.Errorf("failed to scan credit party: %w", err)
		}
		parties = append(parties, p)
	}

	return parties, nil
}

func (r *creditRepository) DeactivateParty(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE credit_parties SET is_active = false, updated_at = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate credit party: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return credit.ErrPartyNotFound
	}

	return nil
}

func (r *creditRepository) CreateTransaction(ctx context.Context, t credit.Transaction) (credit.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO credit_transactions (party_id, date, amount, kind, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, party_id, date, amount, kind, note, created_at
	`

	var saved credit.Transaction
	err := q.QueryRow(ctx, query, t.PartyID, t.Date, t.Amount, t.Kind, t.Note).Scan(
		&saved.ID, &saved.PartyID, &saved.Date, &saved.Amount,
		&saved.Kind, &saved.Note, &saved.CreatedAt,
	)
	if err != nil {
		return credit.Transaction{}, fmt.Errorf("failed to create credit transaction: %w", err)
	}

	return saved, nil
}

func (r *creditRepository) ListTransactions(ctx context.Context, partyID string, from, to time.Time) ([]credit.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.party_id, t.date, t.amount, t.kind, t.note, t.created_at, p.name
		FROM credit_transactions t
		JOIN credit_parties p ON t.party_id = p.id
		WHERE t.party_id = $1 AND t.date >= $2 AND t.date <= $3
		ORDER BY t.date, t.created_at
	`

	rows, err := q.Query(ctx, query, partyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit transactions: %w", err)
	}
	defer rows.Close()

	return scanCreditTransactions(rows)
}

func (r *creditRepository) ListAllTransactions(ctx context.Context, partyID string) ([]credit.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.party_id, t.date, t.amount, t.kind, t.note, t.created_at, p.name
		FROM credit_transactions t
		JOIN credit_parties p ON t.party_id = p.id
		WHERE t.party_id = $1
		ORDER BY t.date, t.created_at
	`

	rows, err := q.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit transactions: %w", err)
	}
	defer rows.Close()

	return scanCreditTransactions(rows)
}

func (r *creditRepository) DeleteTransaction(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM credit_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete credit transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return credit.ErrTransactionNotFound
	}

	return nil
}

func scanCreditTransactions(rows pgx.Rows) ([]credit.Transaction, error) {
	var txns []credit.Transaction
	for rows.Next() {
		var t credit.Transaction
		if err := rows.Scan(
			&t.ID, &t.PartyID, &t.Date, &t.Amount, &t.Kind, &t.Note,
			&t.CreatedAt, &t.PartyName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan credit transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}
