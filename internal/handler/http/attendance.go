package http

import (
	"net/http"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/hanbit-hr/worktime-backend-go/internal/handler/http/response"
	attendanceService "github.com/hanbit-hr/worktime-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Day(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendanceService.Service
}

func NewAttendanceHandler(service *attendanceService.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: service}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	employeeID, ok := requireEmployee(w, r, actor)
	if !ok {
		return
	}

	var req attendance.ClockInRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.ClockIn(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", record)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	employeeID, ok := requireEmployee(w, r, actor)
	if !ok {
		return
	}

	var req attendance.ClockOutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.ClockOut(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", record)
}

// Day implements AttendanceHandler.
func (h *attendanceHandlerImpl) Day(w http.ResponseWriter, r *http.Request) {
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

	day, err := h.attendanceService.Day(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, day)
}

// Range implements AttendanceHandler.
func (h *attendanceHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	employeeID, ok := requireEmployee(w, r, actor)
	if !ok {
		return
	}
	start, ok := dateQuery(w, r, "start")
	if !ok {
		return
	}
	end, ok := dateQuery(w, r, "end")
	if !ok {
		return
	}

	days, err := h.attendanceService.Range(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}
