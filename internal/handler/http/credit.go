package http

import (
	"encoding/json"
	"net/http"

	"github.com/girnar-group/staffops-backend-go/internal/domain/credit"
	"github.com/girnar-group/staffops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CreditHandler interface {
	CreateParty(w http.ResponseWriter, r *http.Request)
	ListParties(w http.ResponseWriter, r *http.Request)
	DeactivateParty(w http.ResponseWriter, r *http.Request)
	AddTransaction(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
	Statement(w http.ResponseWriter, r *http.Request)
}

type creditHandlerImpl struct {
	creditService credit.CreditService
}

func NewCreditHandler(creditService credit.CreditService) CreditHandler {
	return &creditHandlerImpl{creditService: creditService}
}

func (h *creditHandlerImpl) CreateParty(w http.ResponseWriter, r *http.Request) {
	var req credit.CreatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.creditService.CreateParty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Credit party created", result)
}

func (h *creditHandlerImpl) ListParties(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.creditService.ListParties(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *creditHandlerImpl) DeactivateParty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Party ID is required", nil)
		return
	}

	if err := h.creditService.DeactivateParty(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Credit party deactivated", nil)
}

func (h *creditHandlerImpl) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var req credit.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.creditService.AddTransaction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded", result)
}

func (h *creditHandlerImpl) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transaction ID is required", nil)
		return
	}

	if err := h.creditService.DeleteTransaction(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction deleted", nil)
}

func (h *creditHandlerImpl) Statement(w http.ResponseWriter, r *http.Request) {
	partyID := chi.URLParam(r, "id")
	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	result, err := h.creditService.Statement(r.Context(), partyID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
