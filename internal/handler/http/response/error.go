package response

import (
	"errors"
	"net/http"

	"github.com/girnar-group/staffops-backend-go/internal/domain/advance"
	"github.com/girnar-group/staffops-backend-go/internal/domain/attendance"
	"github.com/girnar-group/staffops-backend-go/internal/domain/auth"
	"github.com/girnar-group/staffops-backend-go/internal/domain/credit"
	"github.com/girnar-group/staffops-backend-go/internal/domain/dispatch"
	"github.com/girnar-group/staffops-backend-go/internal/domain/salary"
	"github.com/girnar-group/staffops-backend-go/internal/domain/sales"
	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"
	"github.com/girnar-group/staffops-backend-go/internal/domain/user"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrGoogleEmailUnknown):
		Forbidden(w, "Google account not registered")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, staff.ErrStaffInactive):
		BadRequest(w, "Staff is deactivated", nil)
	case errors.Is(err, staff.ErrCategoryNotInRoster):
		BadRequest(w, "Category does not belong to roster", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrInvalidShiftCount):
		BadRequest(w, "Shift count must be 1 or 2", nil)

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, advance.ErrInvalidAmount):
		BadRequest(w, "Advance amount must be positive", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrNotPaid):
		Conflict(w, "Salary record is not marked paid")
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, "Invalid salary period", nil)

	// Credit domain errors
	case errors.Is(err, credit.ErrPartyNotFound):
		NotFound(w, "Credit party not found")
	case errors.Is(err, credit.ErrTransactionNotFound):
		NotFound(w, "Credit transaction not found")

	// Sales domain errors
	case errors.Is(err, sales.ErrSaleNotFound):
		NotFound(w, "Sale not found")
	case errors.Is(err, sales.ErrCreditPartyMissing):
		BadRequest(w, "Credit sale requires a party", nil)

	// Dispatch domain errors
	case errors.Is(err, dispatch.ErrEntryNotFound):
		NotFound(w, "Dispatch entry not found")
	case errors.Is(err, dispatch.ErrDriverNotInRoster):
		BadRequest(w, "Driver must be on the transport roster", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
