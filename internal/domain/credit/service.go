package credit

import "context"

// CreditService defines business logic for the credit party ledger
type CreditService interface {
	CreateParty(ctx context.Context, req CreatePartyRequest) (PartyResponse, error)
	ListParties(ctx context.Context, activeOnly bool) ([]PartyResponse, error)
	DeactivateParty(ctx context.Context, id string) error

	AddTransaction(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)
	DeleteTransaction(ctx context.Context, id string) error
	// Statement returns a party's rows for a month plus range totals and the
	// all-time balance.
	Statement(ctx context.Context, partyID string, month, year int) (StatementResponse, error)
}
