package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/handler/http/response"
	attendanceService "github.com/cmlabs-hris/kepegawaian-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendanceService.AttendanceService
}

func NewAttendanceHandler(attendanceService attendanceService.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// monthQuery reads the employee_id, year, and month query parameters
// shared by List and Summary. Non-numeric values fail here; range checks
// belong to the service.
func monthQuery(r *http.Request) (employeeID int64, year, month int, ok bool) {
	var err error
	employeeID, err = strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	if err != nil {
		return 0, 0, 0, false
	}
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, 0, false
	}
	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, 0, false
	}
	return employeeID, year, month, true
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, ok := monthQuery(r)
	if !ok {
		response.BadRequest(w, "employee_id, year, and month must be integers", nil)
		return
	}

	results, err := h.attendanceService.ListAttendance(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, ok := monthQuery(r)
	if !ok {
		response.BadRequest(w, "employee_id, year, and month must be integers", nil)
		return
	}

	summary, err := h.attendanceService.GetAttendanceSummary(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

func (h *attendanceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.UpsertAttendance(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
