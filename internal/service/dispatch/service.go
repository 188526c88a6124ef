package dispatch

import (
	"context"
	"sort"

	"github.com/girnar-group/staffops-backend-go/internal/domain/dispatch"
	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"
	attendanceservice "github.com/girnar-group/staffops-backend-go/internal/service/attendance"
	"github.com/shopspring/decimal"
)

type DispatchServiceImpl struct {
	dispatchRepo dispatch.DispatchRepository
	staffRepo    staff.StaffRepository
}

func NewDispatchService(
	dispatchRepo dispatch.DispatchRepository,
	staffRepo staff.StaffRepository,
) dispatch.DispatchService {
	return &DispatchServiceImpl{
		dispatchRepo: dispatchRepo,
		staffRepo:    staffRepo,
	}
}

func mapEntryToResponse(e dispatch.Entry) dispatch.EntryResponse {
	return dispatch.EntryResponse{
		ID:         e.ID,
		Date:       e.Date.Format("2006-01-02"),
		VehicleNo:  e.VehicleNo,
		DriverID:   e.DriverID,
		DriverName: e.DriverName,
		Material:   e.Material,
		Trips:      e.Trips,
		Rate:       e.Rate,
		Amount:     e.Amount,
		Note:       e.Note,
	}
}

func (s *DispatchServiceImpl) Create(ctx context.Context, req dispatch.CreateEntryRequest) (dispatch.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return dispatch.EntryResponse{}, err
	}

	driver, err := s.staffRepo.GetByID(ctx, req.DriverID)
	if err != nil {
		return dispatch.EntryResponse{}, err
	}
	if driver.Roster != staff.RosterTransport {
		return dispatch.EntryResponse{}, dispatch.ErrDriverNotInRoster
	}
	if !driver.IsActive {
		return dispatch.EntryResponse{}, staff.ErrStaffInactive
	}

	created, err := s.dispatchRepo.Create(ctx, dispatch.Entry{
		Date:      req.ParsedDate(),
		VehicleNo: req.VehicleNo,
		DriverID:  req.DriverID,
		Material:  req.Material,
		Trips:     req.Trips,
		Rate:      req.Rate,
		Amount:    decimal.NewFromInt(int64(req.Trips)).Mul(req.Rate),
		Note:      req.Note,
	})
	if err != nil {
		return dispatch.EntryResponse{}, err
	}

	return mapEntryToResponse(created), nil
}

func (s *DispatchServiceImpl) Delete(ctx context.Context, id string) error {
	return s.dispatchRepo.Delete(ctx, id)
}

func (s *DispatchServiceImpl) MonthSummary(ctx context.Context, month, year int) (dispatch.MonthSummaryResponse, error) {
	from, to := attendanceservice.MonthRange(month, year)
	entries, err := s.dispatchRepo.ListByRange(ctx, from, to)
	if err != nil {
		return dispatch.MonthSummaryResponse{}, err
	}

	resp := dispatch.MonthSummaryResponse{
		Month:       month,
		Year:        year,
		Entries:     make([]dispatch.EntryResponse, 0, len(entries)),
		TotalAmount: decimal.Zero,
	}

	byVehicle := make(map[string]*dispatch.VehicleTotalResponse)
	byDriver := make(map[string]*dispatch.DriverTotalResponse)

	for _, e := range entries {
		resp.Entries = append(resp.Entries, mapEntryToResponse(e))
		resp.TotalAmount = resp.TotalAmount.Add(e.Amount)

		v, ok := byVehicle[e.VehicleNo]
		if !ok {
			v = &dispatch.VehicleTotalResponse{VehicleNo: e.VehicleNo, TotalAmount: decimal.Zero}
			byVehicle[e.VehicleNo] = v
		}
		v.Trips += e.Trips
		v.TotalAmount = v.TotalAmount.Add(e.Amount)

		d, ok := byDriver[e.DriverID]
		if !ok {
			name := ""
			if e.DriverName != nil {
				name = *e.DriverName
			}
			d = &dispatch.DriverTotalResponse{DriverID: e.DriverID, DriverName: name, TotalAmount: decimal.Zero}
			byDriver[e.DriverID] = d
		}
		d.Trips += e.Trips
		d.TotalAmount = d.TotalAmount.Add(e.Amount)
	}

	for _, v := range byVehicle {
		resp.ByVehicle = append(resp.ByVehicle, *v)
	}
	sort.Slice(resp.ByVehicle, func(i, j int) bool {
		return resp.ByVehicle[i].VehicleNo < resp.ByVehicle[j].VehicleNo
	})

	for _, d := range byDriver {
		resp.ByDriver = append(resp.ByDriver, *d)
	}
	sort.Slice(resp.ByDriver, func(i, j int) bool {
		return resp.ByDriver[i].DriverName < resp.ByDriver[j].DriverName
	})

	return resp, nil
}
