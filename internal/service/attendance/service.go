package attendance

import (
	"context"
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/domain/attendance"
	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	staffRepo      staff.StaffRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		staffRepo:      staffRepo,
	}
}

// MonthRange returns the first and last calendar date of a month.
func MonthRange(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	shifts := 0
	if rec.Status == attendance.StatusPresent {
		shifts = 1
		if rec.ShiftCount != nil {
			shifts = *rec.ShiftCount
		}
	}
	return attendance.RecordResponse{
		ID:         rec.ID,
		StaffID:    rec.StaffID,
		StaffName:  rec.StaffName,
		Date:       rec.Date.Format("2006-01-02"),
		Status:     string(rec.Status),
		ShiftCount: shifts,
	}
}

func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !member.IsActive {
		return attendance.RecordResponse{}, staff.ErrStaffInactive
	}

	rec := attendance.Record{
		StaffID: req.StaffID,
		Date:    req.ParsedDate(),
		Status:  attendance.Status(req.Status),
	}
	if rec.Status == attendance.StatusPresent {
		rec.ShiftCount = req.ShiftCount
	}

	saved, err := s.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return mapRecordToResponse(saved), nil
}

func (s *AttendanceServiceImpl) Clear(ctx context.Context, req attendance.ClearRequest) error {
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return validator.ValidationErrors{{Field: "date", Message: "must be YYYY-MM-DD"}}
	}
	return s.attendanceRepo.Delete(ctx, req.StaffID, date)
}

func (s *AttendanceServiceImpl) ListForStaff(ctx context.Context, staffID string, month, year int) ([]attendance.RecordResponse, error) {
	from, to := MonthRange(month, year)
	records, err := s.attendanceRepo.ListByStaffRange(ctx, staffID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) ListForDate(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
	parsed, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "must be YYYY-MM-DD"}}
	}

	records, err := s.attendanceRepo.ListByDate(ctx, parsed)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) MonthSummary(ctx context.Context, staffID string, month, year int) (attendance.MonthSummaryResponse, error) {
	from, to := MonthRange(month, year)
	records, err := s.attendanceRepo.ListByStaffRange(ctx, staffID, from, to)
	if err != nil {
		return attendance.MonthSummaryResponse{}, err
	}

	summary := attendance.Summarize(records)
	return attendance.MonthSummaryResponse{
		StaffID:     staffID,
		Month:       month,
		Year:        year,
		TotalShifts: summary.TotalShifts,
		AbsentDays:  summary.AbsentDays,
	}, nil
}
