package advance

import "context"

// AdvanceService defines business logic for the cash advance ledger
type AdvanceService interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	// Ledger returns the advances of a staff member for a month along with
	// the total/deducted/pending partition.
	Ledger(ctx context.Context, staffID string, month, year int) (LedgerResponse, error)
	// SetDeducted is the administrative override; the normal flip happens
	// inside the salary payment transaction.
	SetDeducted(ctx context.Context, id string, deducted bool) error
	Delete(ctx context.Context, id string) error
	DeleteForStaff(ctx context.Context, staffID string) (int64, error)
}
