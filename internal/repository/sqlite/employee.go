package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	db     *DB
	logger *slog.Logger
}

func NewEmployeeRepository(db *DB, logger *slog.Logger) employee.Repository {
	return &employeeRepositoryImpl{db: db, logger: logger}
}

// ListAll implements employee.Repository. Rows that fail to scan are
// skipped with a diagnostic rather than aborting the whole list.
func (r *employeeRepositoryImpl) ListAll(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.db.conn.QueryContext(ctx, `
		SELECT id, nik, name, department, position, base_salary, is_active
		FROM employees
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		var e employee.Employee
		var isActive int64
		if err := rows.Scan(&e.ID, &e.NIK, &e.Name, &e.Department, &e.Position, &e.BaseSalary, &isActive); err != nil {
			r.logger.Warn("skipping undecodable employee row", "error", err)
			continue
		}
		e.IsActive = isActive != 0
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// Insert implements employee.Repository. New employees always start
// active; there is no toggle operation.
func (r *employeeRepositoryImpl) Insert(ctx context.Context, e employee.NewEmployee) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	_, err := r.db.conn.ExecContext(ctx, `
		INSERT INTO employees (nik, name, department, position, base_salary, is_active)
		VALUES (?, ?, ?, ?, ?, 1)
	`, e.NIK, e.Name, e.Department, e.Position, e.BaseSalary)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrNIKExists
		}
		return fmt.Errorf("failed to insert employee: %w", err)
	}

	return nil
}

// Update implements employee.Repository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	_, err := r.db.conn.ExecContext(ctx, `
		UPDATE employees
		SET nik = ?, name = ?, department = ?, position = ?, base_salary = ?
		WHERE id = ?
	`, e.NIK, e.Name, e.Department, e.Position, e.BaseSalary, e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrNIKExists
		}
		return fmt.Errorf("failed to update employee %d: %w", e.ID, err)
	}

	return nil
}

// Delete implements employee.Repository. Attendance rows referencing the
// employee are left untouched (orphan-and-ignore).
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	_, err := r.db.conn.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
