package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrAttendanceExists = errors.New("attendance already marked")
	ErrInvalidStatus    = errors.New("invalid attendance status")
)

// DuplicateRecordError names the employee and date already covered by a
// record, for the client-facing message.
type DuplicateRecordError struct {
	EmployeeName string
	Date         string
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("Attendance already marked for %s on %s", e.EmployeeName, e.Date)
}

func (e *DuplicateRecordError) Unwrap() error { return ErrAttendanceExists }
