package employee

import (
	"errors"
	"fmt"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidEmployeeID = errors.New("invalid employee ID format")
	ErrEmployeeIDExists  = errors.New("employee ID already exists")
	ErrEmailExists       = errors.New("email already registered")
)

// NotFoundError carries the requested identifier so the boundary can
// surface it in the client-facing message.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Employee with ID %s not found", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrEmployeeNotFound }

// DuplicateKeyError names the natural key that is already taken.
type DuplicateKeyError struct {
	Field string // "employee_id" or "email"
	Value string
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "email" {
		return fmt.Sprintf("Email '%s' is already registered", e.Value)
	}
	return fmt.Sprintf("Employee ID '%s' already exists", e.Value)
}

func (e *DuplicateKeyError) Unwrap() error {
	if e.Field == "email" {
		return ErrEmailExists
	}
	return ErrEmployeeIDExists
}
