package staff

import (
	"context"

	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"
	"github.com/shopspring/decimal"
)

type StaffServiceImpl struct {
	staffRepo staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{staffRepo: staffRepo}
}

func mapStaffToResponse(s staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:         s.ID,
		Name:       s.Name,
		Roster:     string(s.Roster),
		Category:   string(s.Category),
		ShiftRate:  s.ShiftRate,
		BaseSalary: s.BaseSalary,
		Phone:      s.Phone,
		IsActive:   s.IsActive,
	}
}

func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	baseSalary := decimal.Zero
	if req.BaseSalary != nil {
		baseSalary = *req.BaseSalary
	}

	created, err := s.staffRepo.Create(ctx, staff.Staff{
		Name:       req.Name,
		Roster:     staff.Roster(req.Roster),
		Category:   staff.Category(req.Category),
		ShiftRate:  req.ShiftRate,
		BaseSalary: baseSalary,
		Phone:      req.Phone,
	})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return mapStaffToResponse(created), nil
}

func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	found, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return mapStaffToResponse(found), nil
}

func (s *StaffServiceImpl) List(ctx context.Context, filter staff.StaffFilter) ([]staff.StaffResponse, error) {
	list, err := s.staffRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]staff.StaffResponse, 0, len(list))
	for _, member := range list {
		responses = append(responses, mapStaffToResponse(member))
	}
	return responses, nil
}

func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	current, err := s.staffRepo.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	// A category change must stay inside the member's roster; the roster
	// itself is fixed at creation.
	if req.Category != nil && !staff.Category(*req.Category).BelongsTo(current.Roster) {
		return staff.StaffResponse{}, staff.ErrCategoryNotInRoster
	}

	if err := s.staffRepo.Update(ctx, req); err != nil {
		return staff.StaffResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *StaffServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.staffRepo.Deactivate(ctx, id)
}
