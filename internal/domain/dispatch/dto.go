package dispatch

import (
	"time"

	"github.com/girnar-group/staffops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEntryRequest struct {
	Date      string          `json:"date"`
	VehicleNo string          `json:"vehicle_no"`
	DriverID  string          `json:"driver_id"`
	Material  string          `json:"material"`
	Trips     int             `json:"trips"`
	Rate      decimal.Decimal `json:"rate"`
	Note      *string         `json:"note,omitempty"`

	parsedDate time.Time
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	r.parsedDate = date
	if validator.IsEmpty(r.VehicleNo) {
		errs = append(errs, validator.ValidationError{Field: "vehicle_no", Message: "is required"})
	}
	if validator.IsEmpty(r.DriverID) {
		errs = append(errs, validator.ValidationError{Field: "driver_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Material) {
		errs = append(errs, validator.ValidationError{Field: "material", Message: "is required"})
	}
	if r.Trips < 1 {
		errs = append(errs, validator.ValidationError{Field: "trips", Message: "must be at least 1"})
	}
	if !r.Rate.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateEntryRequest) ParsedDate() time.Time {
	return r.parsedDate
}

type EntryResponse struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	VehicleNo  string          `json:"vehicle_no"`
	DriverID   string          `json:"driver_id"`
	DriverName *string         `json:"driver_name,omitempty"`
	Material   string          `json:"material"`
	Trips      int             `json:"trips"`
	Rate       decimal.Decimal `json:"rate"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note,omitempty"`
}

type MonthSummaryResponse struct {
	Month       int                    `json:"month"`
	Year        int                    `json:"year"`
	Entries     []EntryResponse        `json:"entries"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	ByVehicle   []VehicleTotalResponse `json:"by_vehicle"`
	ByDriver    []DriverTotalResponse  `json:"by_driver"`
}

type VehicleTotalResponse struct {
	VehicleNo   string          `json:"vehicle_no"`
	Trips       int             `json:"trips"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type DriverTotalResponse struct {
	DriverID    string          `json:"driver_id"`
	DriverName  string          `json:"driver_name"`
	Trips       int             `json:"trips"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
