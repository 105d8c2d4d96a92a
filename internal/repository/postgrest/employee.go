package postgrest

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/postgrest"
)

type employeeRepositoryImpl struct {
	client *postgrest.Client
}

func NewEmployeeRepository(client *postgrest.Client) employee.Repository {
	return &employeeRepositoryImpl{client: client}
}

// ListAll implements employee.Repository.
func (r *employeeRepositoryImpl) ListAll(ctx context.Context) ([]employee.Employee, error) {
	query := postgrest.NewQuery().Select("*").OrderAsc("id")

	employees := []employee.Employee{}
	if err := r.client.Get(ctx, "employees", query, &employees); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// Insert implements employee.Repository. is_active is not part of the
// payload; the store default (true) applies.
func (r *employeeRepositoryImpl) Insert(ctx context.Context, e employee.NewEmployee) error {
	body := map[string]any{
		"nik":         e.NIK,
		"name":        e.Name,
		"department":  e.Department,
		"position":    e.Position,
		"base_salary": e.BaseSalary,
	}

	if err := r.client.Post(ctx, "employees", body); err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}

	return nil
}

// Update implements employee.Repository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	query := postgrest.NewQuery().Eq("id", e.ID)
	body := map[string]any{
		"nik":         e.NIK,
		"name":        e.Name,
		"department":  e.Department,
		"position":    e.Position,
		"base_salary": e.BaseSalary,
	}

	if err := r.client.Patch(ctx, "employees", query, body); err != nil {
		return fmt.Errorf("failed to update employee %d: %w", e.ID, err)
	}

	return nil
}

// Delete implements employee.Repository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	query := postgrest.NewQuery().Eq("id", id)

	if err := r.client.Delete(ctx, "employees", query); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}

	return nil
}
