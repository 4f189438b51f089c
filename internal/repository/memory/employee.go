// Package memory provides map-backed repositories matching the document
// store's observable behavior. Used for isolated, deterministic tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmployeeRepository struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		docs: make(map[primitive.ObjectID]employee.Employee),
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newEmployee.ID = primitive.NewObjectID()
	r.docs[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.docs[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.docs {
		if emp.EmployeeID == employeeID {
			found := emp
			return &found, nil
		}
	}
	return nil, nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.docs {
		if emp.Email == email {
			found := emp
			return &found, nil
		}
	}
	return nil, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]employee.Employee, 0, len(r.docs))
	for _, emp := range r.docs {
		employees = append(employees, emp)
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].CreatedAt.After(employees[j].CreatedAt)
	})
	return employees, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.docs, id)
	return nil
}
