package sales

import (
	"context"
	"time"
)

type SalesRepository interface {
	Create(ctx context.Context, s Sale) (Sale, error)
	GetByID(ctx context.Context, id string) (Sale, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]Sale, error)
	Delete(ctx context.Context, id string) error
}
