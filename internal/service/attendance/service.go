package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/dateutil"
)

type AttendanceService interface {
	// ListAttendance returns the employee's records for the given month,
	// ordered by tanggal ascending.
	ListAttendance(ctx context.Context, employeeID int64, year, month int) ([]attendance.Attendance, error)

	// GetAttendanceSummary reduces the month's records to per-status counts.
	GetAttendanceSummary(ctx context.Context, employeeID int64, year, month int) (attendance.Summary, error)

	// UpsertAttendance records the status for one employee and day,
	// overwriting any existing record for the same day.
	UpsertAttendance(ctx context.Context, req attendance.UpsertAttendanceRequest) error
}

type attendanceServiceImpl struct {
	repo   attendance.Repository
	logger *slog.Logger
}

func NewAttendanceService(repo attendance.Repository, logger *slog.Logger) AttendanceService {
	return &attendanceServiceImpl{repo: repo, logger: logger}
}

func (s *attendanceServiceImpl) ListAttendance(ctx context.Context, employeeID int64, year, month int) ([]attendance.Attendance, error) {
	if employeeID <= 0 {
		return nil, attendance.ErrInvalidEmployeeID
	}

	first, last, err := dateutil.MonthBounds(year, month)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListForEmployeeInRange(ctx, employeeID, first, last)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	return records, nil
}

func (s *attendanceServiceImpl) GetAttendanceSummary(ctx context.Context, employeeID int64, year, month int) (attendance.Summary, error) {
	records, err := s.ListAttendance(ctx, employeeID, year, month)
	if err != nil {
		return attendance.Summary{}, err
	}

	return Summarize(records, s.logger), nil
}

func (s *attendanceServiceImpl) UpsertAttendance(ctx context.Context, req attendance.UpsertAttendanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	record, err := req.ToNewAttendance()
	if err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("upsert attendance: %w", err)
	}

	return nil
}

// Summarize reduces attendance records to per-status counts in one pass.
// It is order-independent: the same multiset of statuses always yields
// the same summary. A status outside the known set is excluded from every
// counter and logged as a diagnostic; it never fails the call.
func Summarize(records []attendance.Attendance, logger *slog.Logger) attendance.Summary {
	var summary attendance.Summary

	for _, record := range records {
		switch record.Status {
		case attendance.StatusHadir:
			summary.TotalHadir++
		case attendance.StatusSakit:
			summary.TotalSakit++
		case attendance.StatusCuti:
			summary.TotalCuti++
		case attendance.StatusAbsen:
			summary.TotalAbsen++
		default:
			logger.Warn("unrecognized attendance status excluded from summary",
				"status", record.Status,
				"employee_id", record.EmployeeID,
				"tanggal", record.Tanggal.String(),
			)
		}
	}

	return summary
}
