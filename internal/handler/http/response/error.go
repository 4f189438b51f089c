package response

import (
	"errors"
	"net/http"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Uniqueness violations
// map to 400 rather than 409, matching the API contract. Anything
// unrecognized surfaces as 500 with the underlying message.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationFailed(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, "Invalid employee ID format", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, `Status must be either "Present" or "Absent"`, nil)
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeIDExists),
		errors.Is(err, employee.ErrEmailExists),
		errors.Is(err, attendance.ErrAttendanceExists):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, err.Error())
	}
}
