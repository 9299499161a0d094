package http

import (
	"net/http"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/correction"
	"github.com/hanbit-hr/worktime-backend-go/internal/handler/http/response"
	approvalService "github.com/hanbit-hr/worktime-backend-go/internal/service/approval"
	correctionService "github.com/hanbit-hr/worktime-backend-go/internal/service/correction"
)

type CorrectionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type correctionHandlerImpl struct {
	correctionService *correctionService.Service
	approvalService   *approvalService.Service
}

func NewCorrectionHandler(correctionSvc *correctionService.Service, approvalSvc *approvalService.Service) CorrectionHandler {
	return &correctionHandlerImpl{correctionService: correctionSvc, approvalService: approvalSvc}
}

// Create implements CorrectionHandler.
func (h *correctionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	employeeID, ok := requireEmployee(w, r, actor)
	if !ok {
		return
	}

	var req correction.CreateCorrectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.correctionService.CreateRequest(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Correction request filed", created)
}

// List implements CorrectionHandler.
func (h *correctionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	requests, err := h.correctionService.List(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Get implements CorrectionHandler.
func (h *correctionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	request, err := h.correctionService.Get(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

// Decide implements CorrectionHandler.
func (h *correctionHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
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

	outcome, err := h.approvalService.DecideCorrection(r.Context(), actor, id, approval.Stage(req.Stage), req.Approve)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, outcome)
}
