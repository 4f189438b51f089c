package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists all employees, newest first
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// CreateEmployee registers a new employee, enforcing employee_id and email uniqueness
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by store identifier
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and cascades to its attendance records,
	// returning the deleted employee's full name
	DeleteEmployee(ctx context.Context, id string) (string, error)
}
