package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/admin"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/position"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/dateutil"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/postgrest"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/validator"
)

// HandleError maps domain and infrastructure errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Infrastructure errors: keep transport failures distinct from
	// backend rejections so the caller can tell them apart.
	var transportErr *postgrest.TransportError
	if errors.As(err, &transportErr) {
		ServiceUnavailable(w, "Backend unreachable")
		return
	}
	var backendErr *postgrest.BackendError
	if errors.As(err, &backendErr) {
		BadGateway(w, "Backend rejected the request")
		return
	}
	var decodeErr *postgrest.DecodeError
	if errors.As(err, &decodeErr) {
		BadGateway(w, "Backend returned an unexpected payload")
		return
	}

	switch {
	// Invalid caller input
	case errors.Is(err, dateutil.ErrInvalidDateRange):
		BadRequest(w, "Year and month do not form a valid calendar date", nil)
	case errors.Is(err, employee.ErrInvalidEmployeeID),
		errors.Is(err, attendance.ErrInvalidEmployeeID):
		BadRequest(w, "Employee id must be a positive integer", nil)

	// Conflicts
	case errors.Is(err, employee.ErrNIKExists):
		Conflict(w, "NIK already registered")
	case errors.Is(err, position.ErrPositionNameExists):
		Conflict(w, "Position with this name already exists")

	// Auth
	case errors.Is(err, admin.ErrAuthenticationFailed):
		Unauthorized(w, "Email atau password salah")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
