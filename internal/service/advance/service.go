package advance

import (
	"context"

	"github.com/girnar-group/staffops-backend-go/internal/domain/advance"
	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"
	attendanceservice "github.com/girnar-group/staffops-backend-go/internal/service/attendance"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	staffRepo   staff.StaffRepository
}

func NewAdvanceService(
	advanceRepo advance.AdvanceRepository,
	staffRepo staff.StaffRepository,
) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo: advanceRepo,
		staffRepo:   staffRepo,
	}
}

func mapAdvanceToResponse(a advance.Advance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:         a.ID,
		StaffID:    a.StaffID,
		StaffName:  a.StaffName,
		Amount:     a.Amount,
		Date:       a.Date.Format("2006-01-02"),
		Note:       a.Note,
		IsDeducted: a.IsDeducted,
	}
}

func (s *AdvanceServiceImpl) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if !member.IsActive {
		return advance.AdvanceResponse{}, staff.ErrStaffInactive
	}

	created, err := s.advanceRepo.Create(ctx, advance.Advance{
		StaffID: req.StaffID,
		Amount:  req.Amount,
		Date:    req.ParsedDate(),
		Note:    req.Note,
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return mapAdvanceToResponse(created), nil
}

func (s *AdvanceServiceImpl) Ledger(ctx context.Context, staffID string, month, year int) (advance.LedgerResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return advance.LedgerResponse{}, err
	}

	from, to := attendanceservice.MonthRange(month, year)
	advances, err := s.advanceRepo.ListByStaffRange(ctx, staffID, from, to)
	if err != nil {
		return advance.LedgerResponse{}, err
	}

	totals := advance.Totals(advances)
	resp := advance.LedgerResponse{
		StaffID:         staffID,
		TotalAdvance:    totals.Total,
		DeductedAdvance: totals.Deducted,
		PendingAdvance:  totals.Pending,
		Advances:        make([]advance.AdvanceResponse, 0, len(advances)),
	}
	for _, a := range advances {
		resp.Advances = append(resp.Advances, mapAdvanceToResponse(a))
	}
	return resp, nil
}

func (s *AdvanceServiceImpl) SetDeducted(ctx context.Context, id string, deducted bool) error {
	return s.advanceRepo.SetDeducted(ctx, id, deducted)
}

func (s *AdvanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.advanceRepo.Delete(ctx, id)
}

func (s *AdvanceServiceImpl) DeleteForStaff(ctx context.Context, staffID string) (int64, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return 0, err
	}
	return s.advanceRepo.DeleteByStaff(ctx, staffID)
}
