package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/master/department"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/master/holiday"
	"github.com/hanbit-hr/worktime-backend-go/internal/handler/http/response"
	masterService "github.com/hanbit-hr/worktime-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	AddHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	AuditLog(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService *masterService.Service
}

func NewMasterHandler(service *masterService.Service) MasterHandler {
	return &masterHandlerImpl{masterService: service}
}

// CreateDepartment implements MasterHandler.
func (h *masterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.masterService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", created)
}

// ListDepartments implements MasterHandler.
func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// AddHoliday implements MasterHandler.
func (h *masterHandlerImpl) AddHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.AddHolidayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.masterService.AddHoliday(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday added", nil)
}

// DeleteHoliday implements MasterHandler.
func (h *masterHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	if err := h.masterService.DeleteHoliday(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday removed", nil)
}

// ListHolidays implements MasterHandler.
func (h *masterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.masterService.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// AuditLog implements MasterHandler.
func (h *masterHandlerImpl) AuditLog(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	entries, err := h.masterService.RecentAuditEntries(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
