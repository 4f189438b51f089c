package attendance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Attendance is one employee's record for one calendar day. EmployeeID holds
// the hex form of the employee's store identifier (weak reference), Date the
// canonical "YYYY-MM-DD" string used for the per-day uniqueness check.
type Attendance struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	Date       string             `bson:"date"`
	Status     Status             `bson:"status"`
	MarkedAt   time.Time          `bson:"marked_at"`
}
