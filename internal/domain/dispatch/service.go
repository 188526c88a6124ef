package dispatch

import "context"

// DispatchService defines business logic for transport dispatch entries
type DispatchService interface {
	Create(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	Delete(ctx context.Context, id string) error
	MonthSummary(ctx context.Context, month, year int) (MonthSummaryResponse, error)
}
