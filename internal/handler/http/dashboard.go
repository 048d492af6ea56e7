package http

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	reportService report.ReportService
}

func NewDashboardHandler(reportService report.ReportService) DashboardHandler {
	return &dashboardHandlerImpl{
		reportService: reportService,
	}
}

// Today implements DashboardHandler.
func (h *dashboardHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.TodayBoard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Monthly implements DashboardHandler.
func (h *dashboardHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.reportService.MonthlyStats(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
