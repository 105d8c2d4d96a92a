package employee

import "github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	NIK        string `json:"nik"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	BaseSalary int64  `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NIK) {
		errs = append(errs, validator.ValidationError{
			Field:   "nik",
			Message: "nik is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *CreateEmployeeRequest) ToNewEmployee() NewEmployee {
	return NewEmployee{
		NIK:        r.NIK,
		Name:       r.Name,
		Department: r.Department,
		Position:   r.Position,
		BaseSalary: r.BaseSalary,
	}
}

type UpdateEmployeeRequest struct {
	ID         int64  `json:"id"`
	NIK        string `json:"nik"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	BaseSalary int64  `json:"base_salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.NIK) {
		errs = append(errs, validator.ValidationError{
			Field:   "nik",
			Message: "nik is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateEmployeeRequest) ToEmployee() Employee {
	return Employee{
		ID:         r.ID,
		NIK:        r.NIK,
		Name:       r.Name,
		Department: r.Department,
		Position:   r.Position,
		BaseSalary: r.BaseSalary,
	}
}
