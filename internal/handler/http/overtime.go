package http

import (
	"net/http"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/overtime"
	"github.com/hanbit-hr/worktime-backend-go/internal/handler/http/response"
	approvalService "github.com/hanbit-hr/worktime-backend-go/internal/service/approval"
	overtimeService "github.com/hanbit-hr/worktime-backend-go/internal/service/overtime"
)

type OvertimeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService *overtimeService.Service
	approvalService *approvalService.Service
}

func NewOvertimeHandler(overtimeSvc *overtimeService.Service, approvalSvc *approvalService.Service) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeSvc, approvalService: approvalSvc}
}

// Create implements OvertimeHandler.
func (h *overtimeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	employeeID, ok := requireEmployee(w, r, actor)
	if !ok {
		return
	}

	var req overtime.CreateOvertimeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.overtimeService.CreateRequest(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request filed", created)
}

// List implements OvertimeHandler.
func (h *overtimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	requests, err := h.overtimeService.List(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Get implements OvertimeHandler.
func (h *overtimeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	request, err := h.overtimeService.Get(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

// Decide implements OvertimeHandler.
func (h *overtimeHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req approval.DecisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	outcome, err := h.approvalService.DecideOvertime(r.Context(), actor, id, approval.Stage(req.Stage), req.Approve)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, outcome)
}
