package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Employee references are the hex string form of the employee identifier.
type AttendanceRepository interface {
	// Create persists a new attendance record and re-reads the stored document
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// FindByEmployeeAndDate returns nil when no record exists for the pair.
	// Used to enforce one record per employee per day.
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// List retrieves records ordered by date descending; date filters to an
	// exact normalized date string when non-empty
	List(ctx context.Context, date string) ([]Attendance, error)

	// ListByEmployee retrieves one employee's records, date descending
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// DeleteByEmployee removes all records referencing the employee (cascade)
	DeleteByEmployee(ctx context.Context, employeeID string) (int64, error)
}
