package dispatch

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry - one transport dispatch: a vehicle run by a driver carrying
// material. Amount is trips × rate at entry time.
type Entry struct {
	ID        string
	Date      time.Time
	VehicleNo string
	DriverID  string
	Material  string
	Trips     int
	Rate      decimal.Decimal
	Amount    decimal.Decimal
	Note      *string
	CreatedAt time.Time

	// Joined fields
	DriverName *string
}

// VehicleTotal aggregates a month's entries for one vehicle.
type VehicleTotal struct {
	VehicleNo   string
	Trips       int
	TotalAmount decimal.Decimal
}

// DriverTotal aggregates a month's entries for one driver.
type DriverTotal struct {
	DriverID    string
	DriverName  string
	Trips       int
	TotalAmount decimal.Decimal
}
