package employee

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmployeeRepository interface {
	// Create persists a new employee and re-reads the stored document
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByID retrieves an employee by store identifier, ErrEmployeeNotFound when absent
	GetByID(ctx context.Context, id primitive.ObjectID) (Employee, error)

	// FindByEmployeeID returns nil when no employee carries the external code
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)

	// FindByEmail returns nil when the email is unused
	FindByEmail(ctx context.Context, email string) (*Employee, error)

	// List retrieves all employees ordered by created_at descending
	List(ctx context.Context) ([]Employee, error)

	// Delete removes the employee, ErrEmployeeNotFound when absent
	Delete(ctx context.Context, id primitive.ObjectID) error
}
