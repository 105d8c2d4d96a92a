package position

import (
	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/validator"
)

type CreatePositionRequest struct {
	Nama      string          `json:"nama"`
	Tunjangan decimal.Decimal `json:"tunjangan"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Nama) {
		errs = append(errs, validator.ValidationError{
			Field:   "nama",
			Message: "nama is required",
		})
	} else if len(r.Nama) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "nama",
			Message: "nama must not exceed 100 characters",
		})
	}

	if r.Tunjangan.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "tunjangan",
			Message: "tunjangan must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *CreatePositionRequest) ToNewPosition() NewPosition {
	return NewPosition{
		Nama:      r.Nama,
		Tunjangan: r.Tunjangan,
	}
}
