package attendance

import (
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceResponse is the shape returned by the mark operation.
type AttendanceResponse struct {
	ID           string `json:"_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	MarkedAt     string `json:"marked_at"`
}

type EmployeeDetails struct {
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
}

// AttendanceRecordResponse is the listing shape, joined against the
// employee set. Unresolved references degrade to "Unknown"/"N/A".
type AttendanceRecordResponse struct {
	ID              string          `json:"_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	EmployeeDetails EmployeeDetails `json:"employee_details"`
	Date            string          `json:"date"`
	Status          string          `json:"status"`
	MarkedAt        string          `json:"marked_at"`
}

// EmployeeAttendanceRecord is the trimmed per-record shape for the
// per-employee listing, where the employee identity is already fixed.
type EmployeeAttendanceRecord struct {
	ID       string `json:"_id"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	MarkedAt string `json:"marked_at"`
}

type EmployeeProfile struct {
	ID         string `json:"_id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type EmployeeAttendanceResponse struct {
	Employee EmployeeProfile
	Records  []EmployeeAttendanceRecord
}
