package staff

import "errors"

var (
	ErrStaffNotFound       = errors.New("staff not found")
	ErrStaffInactive       = errors.New("staff is deactivated")
	ErrCategoryNotInRoster = errors.New("category does not belong to roster")
)
