package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// MarkAttendance implements attendance.AttendanceService.
//
// The duplicate check and the insert are sequential reads, so concurrent
// marks for the same (employee, date) can race (documented limitation).
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	validStatuses := []string{string(attendance.StatusPresent), string(attendance.StatusAbsent)}
	if !validator.IsInSlice(req.Status, validStatuses) {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidStatus
	}

	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		}}
	}
	dateStr := date.Format(dateLayout)

	existing, err := s.attendanceRepo.FindByEmployeeAndDate(ctx, emp.ID.Hex(), dateStr)
	if err != nil {
		slog.Error("Failed to check attendance uniqueness", "error", err)
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, &attendance.DuplicateRecordError{EmployeeName: emp.FullName, Date: dateStr}
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID.Hex(),
		Date:       dateStr,
		Status:     attendance.Status(req.Status),
		MarkedAt:   time.Now().UTC(),
	})
	if err != nil {
		slog.Error("Failed to create attendance record", "error", err)
		return attendance.AttendanceResponse{}, err
	}

	return attendance.AttendanceResponse{
		ID:           created.ID.Hex(),
		EmployeeID:   created.EmployeeID,
		EmployeeName: emp.FullName,
		Date:         created.Date,
		Status:       string(created.Status),
		MarkedAt:     created.MarkedAt.Format(timestampLayout),
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
//
// The employee set is loaded once per call for the join; records whose
// employee no longer resolves fall back to placeholder values instead of
// failing the whole listing.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, date string) ([]attendance.AttendanceRecordResponse, error) {
	records, err := s.attendanceRepo.List(ctx, date)
	if err != nil {
		slog.Error("Failed to list attendance records", "error", err)
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		slog.Error("Failed to load employees for attendance join", "error", err)
		return nil, err
	}
	byID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID.Hex()] = emp
	}

	responses := make([]attendance.AttendanceRecordResponse, 0, len(records))
	for _, record := range records {
		resp := attendance.AttendanceRecordResponse{
			ID:           record.ID.Hex(),
			EmployeeID:   record.EmployeeID,
			EmployeeName: "Unknown",
			EmployeeDetails: attendance.EmployeeDetails{
				EmployeeID: "N/A",
				Department: "N/A",
			},
			Date:     record.Date,
			Status:   string(record.Status),
			MarkedAt: record.MarkedAt.Format(timestampLayout),
		}
		if emp, ok := byID[record.EmployeeID]; ok {
			resp.EmployeeName = emp.FullName
			resp.EmployeeDetails = attendance.EmployeeDetails{
				EmployeeID: emp.EmployeeID,
				Department: emp.Department,
			}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID string) (attendance.EmployeeAttendanceResponse, error) {
	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID.Hex())
	if err != nil {
		slog.Error("Failed to list employee attendance", "error", err)
		return attendance.EmployeeAttendanceResponse{}, err
	}

	responses := make([]attendance.EmployeeAttendanceRecord, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.EmployeeAttendanceRecord{
			ID:       record.ID.Hex(),
			Date:     record.Date,
			Status:   string(record.Status),
			MarkedAt: record.MarkedAt.Format(timestampLayout),
		})
	}

	return attendance.EmployeeAttendanceResponse{
		Employee: attendance.EmployeeProfile{
			ID:         emp.ID.Hex(),
			EmployeeID: emp.EmployeeID,
			FullName:   emp.FullName,
			Email:      emp.Email,
			Department: emp.Department,
		},
		Records: responses,
	}, nil
}

func (s *AttendanceServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("%w: %s", employee.ErrInvalidEmployeeID, id)
	}

	emp, err := s.employeeRepo.GetByID(ctx, oid)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, &employee.NotFoundError{ID: id}
	}
	if err != nil {
		slog.Error("Failed to fetch employee", "error", err)
		return employee.Employee{}, err
	}
	return emp, nil
}
