package http

import (
	"net/http"

	"github.com/girnar-group/staffops-backend-go/internal/domain/report"
	"github.com/girnar-group/staffops-backend-go/internal/domain/staff"
	"github.com/girnar-group/staffops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	SalarySheet(w http.ResponseWriter, r *http.Request)
	CreditStatement(w http.ResponseWriter, r *http.Request)
	SalesSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// format query parameter selects the rendering: pdf, csv or text.

func (h *reportHandlerImpl) SalarySheet(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	var category *staff.Category
	if v := r.URL.Query().Get("category"); v != "" {
		cat := staff.Category(v)
		category = &cat
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		result, err := h.reportService.SalarySheetCSV(r.Context(), month, year, category)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
	case "text":
		result, err := h.reportService.SalaryShareText(r.Context(), month, year, category)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
	default:
		result, err := h.reportService.SalarySheetPDF(r.Context(), month, year, category)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
	}
}

func (h *reportHandlerImpl) CreditStatement(w http.ResponseWriter, r *http.Request) {
	partyID := chi.URLParam(r, "id")
	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		result, err := h.reportService.CreditStatementCSV(r.Context(), partyID, month, year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
	case "text":
		result, err := h.reportService.CreditShareText(r.Context(), partyID, month, year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
	default:
		result, err := h.reportService.CreditStatementPDF(r.Context(), partyID, month, year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
	}
}

func (h *reportHandlerImpl) SalesSummary(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		result, err := h.reportService.SalesSummaryCSV(r.Context(), month, year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
	case "text":
		result, err := h.reportService.SalesShareText(r.Context(), month, year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
	default:
		result, err := h.reportService.SalesSummaryPDF(r.Context(), month, year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
	}
}
