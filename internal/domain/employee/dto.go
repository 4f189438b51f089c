package employee

import (
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.LengthBetween(r.EmployeeID, 3, 20) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be 3-20 characters",
		})
	}

	if !validator.LengthBetween(r.FullName, 2, 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must be 2-100 characters",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if !validator.LengthBetween(r.Department, 2, 50) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be 2-50 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string `json:"_id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}
