package attendance

import (
	"strings"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/dateutil"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/validator"
)

type UpsertAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Tanggal    string `json:"tanggal"`
	Status     string `json:"status"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Tanggal); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal",
			Message: "tanggal must be a valid YYYY-MM-DD date",
		})
	}

	if !validator.IsInSlice(r.Status, KnownStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of " + strings.Join(KnownStatuses(), ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpsertAttendanceRequest) ToNewAttendance() (NewAttendance, error) {
	tanggal, err := dateutil.ParseDate(r.Tanggal)
	if err != nil {
		return NewAttendance{}, err
	}
	return NewAttendance{
		EmployeeID: r.EmployeeID,
		Tanggal:    tanggal,
		Status:     r.Status,
	}, nil
}
