package staff

import "context"

type StaffRepository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	List(ctx context.Context, filter StaffFilter) ([]Staff, error)
	Update(ctx context.Context, req UpdateStaffRequest) error
	// Deactivate is the only removal; rows are never deleted so historical
	// attendance, advance and salary records keep a valid anchor.
	Deactivate(ctx context.Context, id string) error
}
