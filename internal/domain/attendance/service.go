package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance records one employee's status for one day, enforcing
	// employee existence and per-day uniqueness
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance lists records (optionally filtered to an exact date),
	// joined against the employee set
	ListAttendance(ctx context.Context, date string) ([]AttendanceRecordResponse, error)

	// GetEmployeeAttendance lists one employee's records plus their profile
	GetEmployeeAttendance(ctx context.Context, employeeID string) (EmployeeAttendanceResponse, error)
}
