package http

import (
	"encoding/json"
	"net/http"

	"github.com/girnar-group/staffops-backend-go/internal/domain/dispatch"
	"github.com/girnar-group/staffops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DispatchHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MonthSummary(w http.ResponseWriter, r *http.Request)
}

type dispatchHandlerImpl struct {
	dispatchService dispatch.DispatchService
}

func NewDispatchHandler(dispatchService dispatch.DispatchService) DispatchHandler {
	return &dispatchHandlerImpl{dispatchService: dispatchService}
}

func (h *dispatchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req dispatch.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.dispatchService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Dispatch entry recorded", result)
}

func (h *dispatchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	if err := h.dispatchService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Dispatch entry deleted", nil)
}

func (h *dispatchHandlerImpl) MonthSummary(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	result, err := h.dispatchService.MonthSummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
