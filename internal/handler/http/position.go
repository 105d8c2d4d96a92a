package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/position"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/handler/http/response"
	positionService "github.com/cmlabs-hris/kepegawaian-backend-go/internal/service/position"
)

type PositionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type positionHandlerImpl struct {
	positionService positionService.PositionService
}

func NewPositionHandler(positionService positionService.PositionService) PositionHandler {
	return &positionHandlerImpl{
		positionService: positionService,
	}
}

// namaParam extracts the position's natural key from the route. Names may
// carry spaces and reserved characters, so the path segment is unescaped.
func namaParam(r *http.Request) string {
	raw := chi.URLParam(r, "nama")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (h *positionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.positionService.ListPositions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *positionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.positionService.AddPosition(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", nil)
}

func (h *positionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.positionService.UpdatePosition(r.Context(), namaParam(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

func (h *positionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.positionService.DeletePosition(r.Context(), namaParam(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
