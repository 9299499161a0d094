package http

import (
	"net/http"
	"strconv"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/report"
	"github.com/hanbit-hr/worktime-backend-go/internal/handler/http/response"
	reportService "github.com/hanbit-hr/worktime-backend-go/internal/service/report"
)

type ReportHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	WeeklySummary(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService *reportService.Service
}

func NewReportHandler(service *reportService.Service) ReportHandler {
	return &reportHandlerImpl{reportService: service}
}

// Overview implements ReportHandler.
func (h *reportHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	baseDate, ok := dateQuery(w, r, "date")
	if !ok {
		return
	}

	filter := report.OverviewFilter{BaseDate: baseDate}
	if raw := r.URL.Query().Get("department_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(w, "Invalid department_id", nil)
			return
		}
		filter.DepartmentID = &id
	}
	if raw := r.URL.Query().Get("q"); raw != "" {
		filter.Query = &raw
	}

	rows, err := h.reportService.Overview(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// WeeklySummary implements ReportHandler.
func (h *reportHandlerImpl) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	employeeID, ok := requireEmployee(w, r, actor)
	if !ok {
		return
	}
	date, ok := dateQuery(w, r, "date")
	if !ok {
		return
	}

	summary, err := h.reportService.WeeklySummary(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Dashboard implements ReportHandler.
func (h *reportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	quarter := r.URL.Query().Get("quarter")
	if quarter == "" || !performance.IsValidQuarter(quarter) {
		response.BadRequest(w, "quarter must be formatted as YYYYQn", nil)
		return
	}
	period := r.URL.Query().Get("period")
	if period == "" {
		period = quarter
	} else if !performance.IsValidQuarter(period) {
		response.BadRequest(w, "period must be formatted as YYYYQn", nil)
		return
	}

	dashboard, err := h.reportService.Dashboard(r.Context(), quarter, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}
