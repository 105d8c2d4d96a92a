package attendance

import (
	"context"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/dateutil"
)

// Repository is the storage contract for attendance records.
type Repository interface {
	// ListForEmployeeInRange returns the employee's records with
	// first <= tanggal <= last, ordered by tanggal ascending; an empty
	// slice when there are none.
	ListForEmployeeInRange(ctx context.Context, employeeID int64, first, last dateutil.Date) ([]Attendance, error)

	// Upsert inserts the record, or overwrites the existing row's status
	// when (employee_id, tanggal) already exists. Safe to repeat.
	Upsert(ctx context.Context, a NewAttendance) error
}
