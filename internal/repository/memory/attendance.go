package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendanceRepository struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		docs: make(map[primitive.ObjectID]attendance.Attendance),
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = primitive.NewObjectID()
	r.docs[record.ID] = record
	return record, nil
}

func (r *AttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.docs {
		if record.EmployeeID == employeeID && record.Date == date {
			found := record
			return &found, nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepository) List(ctx context.Context, date string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := []attendance.Attendance{}
	for _, record := range r.docs {
		if date == "" || record.Date == date {
			records = append(records, record)
		}
	}
	sortByDateDesc(records)
	return records, nil
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := []attendance.Attendance{}
	for _, record := range r.docs {
		if record.EmployeeID == employeeID {
			records = append(records, record)
		}
	}
	sortByDateDesc(records)
	return records, nil
}

func (r *AttendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, record := range r.docs {
		if record.EmployeeID == employeeID {
			delete(r.docs, id)
			deleted++
		}
	}
	return deleted, nil
}

// ISO date strings order lexicographically, matching the store's sort.
func sortByDateDesc(records []attendance.Attendance) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
}
