package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/postgrest"
)

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	AddEmployee(ctx context.Context, req employee.CreateEmployeeRequest) error
	UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error
	DeleteEmployee(ctx context.Context, id int64) error
}

type employeeServiceImpl struct {
	repo employee.Repository
}

func NewEmployeeService(repo employee.Repository) EmployeeService {
	return &employeeServiceImpl{repo: repo}
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeServiceImpl) AddEmployee(ctx context.Context, req employee.CreateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.repo.Insert(ctx, req.ToNewEmployee()); err != nil {
		// Uniqueness violation on nik, regardless of backend.
		var backendErr *postgrest.BackendError
		if errors.As(err, &backendErr) && backendErr.IsUniqueViolation() {
			return employee.ErrNIKExists
		}
		if errors.Is(err, employee.ErrNIKExists) {
			return employee.ErrNIKExists
		}
		return fmt.Errorf("add employee: %w", err)
	}

	return nil
}

func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, req.ToEmployee()); err != nil {
		var backendErr *postgrest.BackendError
		if errors.As(err, &backendErr) && backendErr.IsUniqueViolation() {
			return employee.ErrNIKExists
		}
		if errors.Is(err, employee.ErrNIKExists) {
			return employee.ErrNIKExists
		}
		return fmt.Errorf("update employee: %w", err)
	}

	return nil
}

func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if id <= 0 {
		return employee.ErrInvalidEmployeeID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	return nil
}
