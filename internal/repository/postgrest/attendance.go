package postgrest

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/dateutil"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/postgrest"
)

type attendanceRepositoryImpl struct {
	client *postgrest.Client
}

func NewAttendanceRepository(client *postgrest.Client) attendance.Repository {
	return &attendanceRepositoryImpl{client: client}
}

// ListForEmployeeInRange implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListForEmployeeInRange(ctx context.Context, employeeID int64, first, last dateutil.Date) ([]attendance.Attendance, error) {
	query := postgrest.NewQuery().
		Select("*").
		Eq("employee_id", employeeID).
		Gte("tanggal", first).
		Lte("tanggal", last).
		OrderAsc("tanggal")

	records := []attendance.Attendance{}
	if err := r.client.Get(ctx, "presensi", query, &records); err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %d: %w", employeeID, err)
	}

	return records, nil
}

// Upsert implements attendance.Repository. The (employee_id, tanggal)
// uniqueness constraint lives in the backend; merge-duplicates makes a
// repeated call overwrite the stored status instead of failing.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.NewAttendance) error {
	body := map[string]any{
		"employee_id": a.EmployeeID,
		"tanggal":     a.Tanggal,
		"status":      a.Status,
	}

	if err := r.client.Upsert(ctx, "presensi", "employee_id,tanggal", body); err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return nil
}
