package attendance

import "github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/dateutil"

// Status values recognized by the aggregation engine. Anything else is
// dropped from summaries with a diagnostic.
const (
	StatusHadir = "hadir"
	StatusSakit = "sakit"
	StatusCuti  = "cuti"
	StatusAbsen = "absen"
)

func KnownStatuses() []string {
	return []string{StatusHadir, StatusSakit, StatusCuti, StatusAbsen}
}

// Attendance is one presensi record. At most one row exists per
// (employee_id, tanggal); upserts merge on that constraint.
type Attendance struct {
	ID         int64         `json:"id"`
	EmployeeID int64         `json:"employee_id"`
	Tanggal    dateutil.Date `json:"tanggal"`
	Status     string        `json:"status"`
}

type NewAttendance struct {
	EmployeeID int64         `json:"employee_id"`
	Tanggal    dateutil.Date `json:"tanggal"`
	Status     string        `json:"status"`
}

// Summary is the per-status count for one employee and month. It is
// derived on every request, never persisted.
type Summary struct {
	TotalHadir int64 `json:"total_hadir"`
	TotalSakit int64 `json:"total_sakit"`
	TotalCuti  int64 `json:"total_cuti"`
	TotalAbsen int64 `json:"total_absen"`
}
