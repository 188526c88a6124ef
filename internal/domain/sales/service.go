package sales

import "context"

// SalesService defines business logic for petroleum sale entries
type SalesService interface {
	Create(ctx context.Context, req CreateSaleRequest) (SaleResponse, error)
	Delete(ctx context.Context, id string) error
	// DailySummary covers one date; MonthlySummary a whole month. Both
	// return the rows plus fuel and payment-mode totals.
	DailySummary(ctx context.Context, date string) (SummaryResponse, error)
	MonthlySummary(ctx context.Context, month, year int) (SummaryResponse, error)
}
