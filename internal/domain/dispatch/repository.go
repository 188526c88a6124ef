package dispatch

import (
	"context"
	"time"
)

type DispatchRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}
