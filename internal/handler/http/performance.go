package http

import (
	"net/http"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/handler/http/response"
	approvalService "github.com/hanbit-hr/worktime-backend-go/internal/service/approval"
	performanceService "github.com/hanbit-hr/worktime-backend-go/internal/service/performance"
)

type PerformanceHandler interface {
	CreateGoal(w http.ResponseWriter, r *http.Request)
	ListGoals(w http.ResponseWriter, r *http.Request)
	GetGoal(w http.ResponseWriter, r *http.Request)
	SubmitGoal(w http.ResponseWriter, r *http.Request)
	UpdateProgress(w http.ResponseWriter, r *http.Request)
	DecideGoal(w http.ResponseWriter, r *http.Request)
	CreateReview(w http.ResponseWriter, r *http.Request)
	ListReviews(w http.ResponseWriter, r *http.Request)
	CreateCompetency(w http.ResponseWriter, r *http.Request)
	ListCompetencies(w http.ResponseWriter, r *http.Request)
	SetCompetencyLevel(w http.ResponseWriter, r *http.Request)
	EmployeeCompetencies(w http.ResponseWriter, r *http.Request)
	GiveFeedback(w http.ResponseWriter, r *http.Request)
	FeedbackReceived(w http.ResponseWriter, r *http.Request)
	FeedbackGiven(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService *performanceService.Service
	approvalService    *approvalService.Service
}

func NewPerformanceHandler(performanceSvc *performanceService.Service, approvalSvc *approvalService.Service) PerformanceHandler {
	return &performanceHandlerImpl{performanceService: performanceSvc, approvalService: approvalSvc}
}

// CreateGoal implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateGoal(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req performance.CreateGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EmployeeID == 0 && actor.EmployeeID != nil {
		req.EmployeeID = *actor.EmployeeID
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	goal, err := h.performanceService.CreateGoal(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Goal drafted", goal)
}

// ListGoals implements PerformanceHandler.
func (h *performanceHandlerImpl) ListGoals(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var quarter *string
	if raw := r.URL.Query().Get("quarter"); raw != "" {
		if !performance.IsValidQuarter(raw) {
			response.BadRequest(w, "quarter must be formatted as YYYYQn", nil)
			return
		}
		quarter = &raw
	}

	goals, err := h.performanceService.ListGoals(r.Context(), actor, quarter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, goals)
}

// GetGoal implements PerformanceHandler.
func (h *performanceHandlerImpl) GetGoal(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	goal, err := h.performanceService.GetGoal(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, goal)
}

// SubmitGoal implements PerformanceHandler.
func (h *performanceHandlerImpl) SubmitGoal(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	goal, err := h.performanceService.SubmitGoal(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Goal submitted", goal)
}

// UpdateProgress implements PerformanceHandler.
func (h *performanceHandlerImpl) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req performance.UpdateProgressRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.performanceService.UpdateProgress(r.Context(), actor, id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Progress updated", nil)
}

// DecideGoal implements PerformanceHandler.
func (h *performanceHandlerImpl) DecideGoal(w http.ResponseWriter, r *http.Request) {
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

	outcome, err := h.approvalService.DecideGoal(r.Context(), actor, id, approval.Stage(req.Stage), req.Approve)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, outcome)
}

// CreateReview implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req performance.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	review, err := h.performanceService.CreateReview(r.Context(), actor.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review recorded", review)
}

// ListReviews implements PerformanceHandler.
func (h *performanceHandlerImpl) ListReviews(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var period *string
	if raw := r.URL.Query().Get("period"); raw != "" {
		if !performance.IsValidQuarter(raw) {
			response.BadRequest(w, "period must be formatted as YYYYQn", nil)
			return
		}
		period = &raw
	}

	reviews, err := h.performanceService.ListReviews(r.Context(), actor, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// CreateCompetency implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateCompetency(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description,omitempty"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "name is required", nil)
		return
	}

	competency, err := h.performanceService.CreateCompetency(r.Context(), req.Name, req.Description)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Competency added", competency)
}

// ListCompetencies implements PerformanceHandler.
func (h *performanceHandlerImpl) ListCompetencies(w http.ResponseWriter, r *http.Request) {
	competencies, err := h.performanceService.ListCompetencies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, competencies)
}

// SetCompetencyLevel implements PerformanceHandler.
func (h *performanceHandlerImpl) SetCompetencyLevel(w http.ResponseWriter, r *http.Request) {
	var req performance.SetCompetencyLevelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.performanceService.SetCompetencyLevel(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Competency level set", nil)
}

// EmployeeCompetencies implements PerformanceHandler.
func (h *performanceHandlerImpl) EmployeeCompetencies(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	employeeID, ok := requireEmployee(w, r, actor)
	if !ok {
		return
	}

	levels, err := h.performanceService.EmployeeCompetencies(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, levels)
}

// GiveFeedback implements PerformanceHandler.
func (h *performanceHandlerImpl) GiveFeedback(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req performance.GiveFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	feedback, err := h.performanceService.GiveFeedback(r.Context(), actor.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Feedback recorded", feedback)
}

// FeedbackReceived implements PerformanceHandler.
func (h *performanceHandlerImpl) FeedbackReceived(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	entries, err := h.performanceService.FeedbackReceived(r.Context(), actor.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// FeedbackGiven implements PerformanceHandler.
func (h *performanceHandlerImpl) FeedbackGiven(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	entries, err := h.performanceService.FeedbackGiven(r.Context(), actor.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
