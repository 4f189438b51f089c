package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const attendanceCollection = "attendances"

type attendanceRepositoryImpl struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{
		coll: db.Collection(attendanceCollection),
	}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	result, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return attendance.Attendance{}, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	var created attendance.Attendance
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&created); err != nil {
		return attendance.Attendance{}, fmt.Errorf("find inserted attendance: %w", err)
	}
	return created, nil
}

// FindByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) FindByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	var record attendance.Attendance
	err := r.coll.FindOne(ctx, bson.M{"employee_id": employeeID, "date": date}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	return &record, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, date string) ([]attendance.Attendance, error) {
	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}
	return r.find(ctx, filter)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return r.find(ctx, bson.M{"employee_id": employeeID})
}

func (r *attendanceRepositoryImpl) find(ctx context.Context, filter bson.M) ([]attendance.Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	records := []attendance.Attendance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}
	return records, nil
}

// DeleteByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, fmt.Errorf("delete attendance for employee: %w", err)
	}
	return result.DeletedCount, nil
}
