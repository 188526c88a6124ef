package credit

import (
	"context"
	"time"
)

type CreditRepository interface {
	CreateParty(ctx context.Context, p Party) (Party, error)
	GetParty(ctx context.Context, id string) (Party, error)
	// ListParties returns active parties with their full-history balance.
	ListParties(ctx context.Context, activeOnly bool) ([]Party, error)
	DeactivateParty(ctx context.Context, id string) error

	CreateTransaction(ctx context.Context, t Transaction) (Transaction, error)
	ListTransactions(ctx context.Context, partyID string, from, to time.Time) ([]Transaction, error)
	ListAllTransactions(ctx context.Context, partyID string) ([]Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}
