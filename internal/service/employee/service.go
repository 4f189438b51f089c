package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const timestampLayout = "2006-01-02 15:04:05"

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		slog.Error("Failed to list employees", "error", err)
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// CreateEmployee implements employee.EmployeeService.
//
// The two uniqueness checks are sequential reads, not a store constraint;
// concurrent creates with the same key can race (documented limitation).
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		slog.Error("Failed to check employee_id uniqueness", "error", err)
		return employee.EmployeeResponse{}, err
	}
	if existing != nil {
		return employee.EmployeeResponse{}, &employee.DuplicateKeyError{Field: "employee_id", Value: req.EmployeeID}
	}

	byEmail, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		slog.Error("Failed to check email uniqueness", "error", err)
		return employee.EmployeeResponse{}, err
	}
	if byEmail != nil {
		return employee.EmployeeResponse{}, &employee.DuplicateKeyError{Field: "email", Value: req.Email}
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		slog.Error("Failed to create employee", "error", err)
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.getByHexID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
//
// The cascade is two sequential store operations; a crash in between can
// leave orphaned attendance records (accepted in scope).
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) (string, error) {
	emp, err := s.getByHexID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.employeeRepo.Delete(ctx, emp.ID); err != nil {
		slog.Error("Failed to delete employee", "error", err)
		return "", err
	}

	if _, err := s.attendanceRepo.DeleteByEmployee(ctx, emp.ID.Hex()); err != nil {
		slog.Error("Failed to cascade attendance delete", "error", err)
		return "", err
	}

	return emp.FullName, nil
}

func (s *EmployeeServiceImpl) getByHexID(ctx context.Context, id string) (employee.Employee, error) {
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

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID.Hex(),
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
		CreatedAt:  emp.CreatedAt.Format(timestampLayout),
	}
}
