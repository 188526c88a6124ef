package salary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/domain/advance"
	"github.com/girnar-group/staffops-backend-go/internal/domain/attendance"
	"github.com/girnar-group/staffops-backend-go/internal/domain/salary"
	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/database"
	"github.com/girnar-group/staffops-backend-go/internal/repository/postgresql"
	attendanceservice "github.com/girnar-group/staffops-backend-go/internal/service/attendance"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SalaryServiceImpl struct {
	db             *database.DB
	salaryRepo     salary.SalaryRepository
	staffRepo      staff.StaffRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
}

func NewSalaryService(
	db *database.DB,
	salaryRepo salary.SalaryRepository,
	staffRepo staff.StaffRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		db:             db,
		salaryRepo:     salaryRepo,
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
	}
}

func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// calculate assembles the live view for one staff member. It runs against
// whatever querier the context carries, so MarkPaid gets transactional reads
// for free.
func (s *SalaryServiceImpl) calculate(ctx context.Context, member staff.Staff, month, year int) (salary.Calculation, error) {
	from, to := attendanceservice.MonthRange(month, year)

	records, err := s.attendanceRepo.ListByStaffRange(ctx, member.ID, from, to)
	if err != nil {
		return salary.Calculation{}, err
	}

	advances, err := s.advanceRepo.ListByStaffRange(ctx, member.ID, from, to)
	if err != nil {
		return salary.Calculation{}, err
	}

	carryForward, err := s.carryForward(ctx, member.ID, month, year)
	if err != nil {
		return salary.Calculation{}, err
	}

	calc := salary.Compute(member.ShiftRate, attendance.Summarize(records), advance.Totals(advances), carryForward)
	calc.StaffID = member.ID
	calc.StaffName = member.Name
	calc.Category = string(member.Category)
	calc.Month = month
	calc.Year = year

	// Payment state comes from the persisted record when one exists.
	rec, err := s.salaryRepo.GetByStaffPeriod(ctx, member.ID, month, year)
	switch {
	case err == nil:
		calc.IsPaid = rec.IsPaid
		calc.PaidDate = rec.PaidDate
	case errors.Is(err, salary.ErrRecordNotFound):
		// never paid, stays unpaid
	default:
		return salary.Calculation{}, err
	}

	return calc, nil
}

// carryForward reads the immediately preceding month's record. Paid or absent
// records contribute nothing; an unpaid record contributes its frozen payable,
// which already folds in any older carry-forward.
func (s *SalaryServiceImpl) carryForward(ctx context.Context, staffID string, month, year int) (decimal.Decimal, error) {
	prevMonth, prevYear := salary.PreviousPeriod(month, year)

	prev, err := s.salaryRepo.GetByStaffPeriod(ctx, staffID, prevMonth, prevYear)
	if err != nil {
		if errors.Is(err, salary.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return salary.CarryForwardFrom(&prev), nil
}

func mapCalculationToResponse(c salary.Calculation) salary.CalculationResponse {
	return salary.CalculationResponse{
		StaffID:         c.StaffID,
		StaffName:       c.StaffName,
		Category:        c.Category,
		Month:           c.Month,
		Year:            c.Year,
		ShiftRate:       c.ShiftRate,
		TotalShifts:     c.TotalShifts,
		AbsentDays:      c.AbsentDays,
		ShiftAmount:     c.ShiftAmount,
		TotalAdvance:    c.TotalAdvance,
		DeductedAdvance: c.DeductedAdvance,
		PendingAdvance:  c.PendingAdvance,
		CarryForward:    c.CarryForward,
		Payable:         c.Payable,
		IsPaid:          c.IsPaid,
		PaidDate:        salary.FormatPaidDate(c.PaidDate),
	}
}

func mapRecordToResponse(rec salary.Record) salary.RecordResponse {
	return salary.RecordResponse{
		ID:           rec.ID,
		StaffID:      rec.StaffID,
		StaffName:    rec.StaffName,
		Month:        rec.Month,
		Year:         rec.Year,
		ShiftRate:    rec.ShiftRate,
		TotalShifts:  rec.TotalShifts,
		ShiftAmount:  rec.ShiftAmount,
		TotalAdvance: rec.TotalAdvance,
		CarryForward: rec.CarryForward,
		Payable:      rec.Payable,
		IsPaid:       rec.IsPaid,
		PaidDate:     salary.FormatPaidDate(rec.PaidDate),
	}
}

func (s *SalaryServiceImpl) Calculate(ctx context.Context, staffID string, month, year int) (salary.CalculationResponse, error) {
	if err := (salary.Period{Month: month, Year: year}).Validate(); err != nil {
		return salary.CalculationResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return salary.CalculationResponse{}, err
	}

	calc, err := s.calculate(ctx, member, month, year)
	if err != nil {
		return salary.CalculationResponse{}, err
	}

	return mapCalculationToResponse(calc), nil
}

func (s *SalaryServiceImpl) Summary(ctx context.Context, month, year int, category *staff.Category) (salary.SummaryResponse, error) {
	if err := (salary.Period{Month: month, Year: year}).Validate(); err != nil {
		return salary.SummaryResponse{}, err
	}

	members, err := s.staffRepo.List(ctx, staff.StaffFilter{Category: category, ActiveOnly: true})
	if err != nil {
		return salary.SummaryResponse{}, err
	}

	resp := salary.SummaryResponse{
		Month:        month,
		Year:         year,
		Staff:        make([]salary.CalculationResponse, 0, len(members)),
		TotalPayable: decimal.Zero,
	}
	if category != nil {
		cat := string(*category)
		resp.Category = &cat
	}

	for _, member := range members {
		calc, err := s.calculate(ctx, member, month, year)
		if err != nil {
			return salary.SummaryResponse{}, err
		}
		resp.Staff = append(resp.Staff, mapCalculationToResponse(calc))
		resp.TotalPayable = resp.TotalPayable.Add(calc.Payable)
	}

	return resp, nil
}

func (s *SalaryServiceImpl) MarkPaid(ctx context.Context, req salary.MarkPaidRequest) (salary.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.RecordResponse{}, err
	}

	paidBy, err := getUserIDFromContext(ctx)
	if err != nil {
		return salary.RecordResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return salary.RecordResponse{}, err
	}

	var saved salary.Record
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Recompute inside the transaction so the frozen figures cannot be
		// stale against a concurrent attendance or advance write.
		calc, err := s.calculate(txCtx, member, req.Month, req.Year)
		if err != nil {
			return err
		}

		if _, err := s.advanceRepo.MarkDeductedByStaff(txCtx, req.StaffID); err != nil {
			return err
		}

		now := time.Now()
		saved, err = s.salaryRepo.Upsert(txCtx, salary.Record{
			StaffID:      req.StaffID,
			Month:        req.Month,
			Year:         req.Year,
			ShiftRate:    calc.ShiftRate,
			TotalShifts:  calc.TotalShifts,
			ShiftAmount:  calc.ShiftAmount,
			TotalAdvance: calc.TotalAdvance,
			CarryForward: calc.CarryForward,
			Payable:      calc.Payable,
			IsPaid:       true,
			PaidDate:     &now,
			PaidBy:       &paidBy,
		})
		return err
	})
	if err != nil {
		return salary.RecordResponse{}, err
	}

	return mapRecordToResponse(saved), nil
}

func (s *SalaryServiceImpl) MarkUnpaid(ctx context.Context, req salary.MarkPaidRequest) (salary.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.RecordResponse{}, err
	}

	rec, err := s.salaryRepo.GetByStaffPeriod(ctx, req.StaffID, req.Month, req.Year)
	if err != nil {
		return salary.RecordResponse{}, err
	}
	if !rec.IsPaid {
		return salary.RecordResponse{}, salary.ErrNotPaid
	}

	// Only the flag reverses. Advances deducted by the pay action stay
	// deducted; restoring them is the advance admin override's job.
	if err := s.salaryRepo.SetPaidStatus(ctx, req.StaffID, req.Month, req.Year, false, nil, nil); err != nil {
		return salary.RecordResponse{}, err
	}

	rec.IsPaid = false
	rec.PaidDate = nil
	rec.PaidBy = nil
	return mapRecordToResponse(rec), nil
}

func (s *SalaryServiceImpl) History(ctx context.Context, staffID string) ([]salary.RecordResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	records, err := s.salaryRepo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}
