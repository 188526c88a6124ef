package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roster enum - the two structurally parallel staff rosters
type Roster string

const (
	RosterGeneral   Roster = "general"
	RosterTransport Roster = "transport"
)

// Category enum - closed per roster; a category is only valid inside its
// own roster
type Category string

const (
	// General roster
	CategoryPetroleum Category = "petroleum"
	CategoryCrusher   Category = "crusher"
	CategoryOffice    Category = "office"

	// Transport roster
	CategoryDriver  Category = "driver"
	CategoryKhalasi Category = "khalasi"
)

var rosterCategories = map[Roster][]Category{
	RosterGeneral:   {CategoryPetroleum, CategoryCrusher, CategoryOffice},
	RosterTransport: {CategoryDriver, CategoryKhalasi},
}

func (r Roster) IsValid() bool {
	_, ok := rosterCategories[r]
	return ok
}

// Categories returns the closed category set of the roster.
func (r Roster) Categories() []Category {
	return rosterCategories[r]
}

// BelongsTo reports whether the category is a member of the roster.
func (c Category) BelongsTo(r Roster) bool {
	for _, cat := range rosterCategories[r] {
		if cat == c {
			return true
		}
	}
	return false
}

// Staff - a person on one of the rosters. Never hard-deleted; deactivation
// keeps historical attendance, advance and salary rows valid.
type Staff struct {
	ID         string
	Name       string
	Roster     Roster
	Category   Category
	ShiftRate  decimal.Decimal
	BaseSalary decimal.Decimal
	Phone      *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
