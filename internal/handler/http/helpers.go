package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/handler/http/middleware"
	"github.com/hanbit-hr/worktime-backend-go/internal/handler/http/response"
)

// decodeJSON reads the request body into dst, writing the error
// response itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// idParam parses the {id} URL parameter.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

// requireActor pulls the authenticated actor off the context.
func requireActor(w http.ResponseWriter, r *http.Request) (user.Actor, bool) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing access token")
		return user.Actor{}, false
	}
	return actor, true
}

// requireEmployee resolves the acting employee id. Privileged actors
// may act for another employee through the employee_id query parameter.
func requireEmployee(w http.ResponseWriter, r *http.Request, actor user.Actor) (int64, bool) {
	if raw := r.URL.Query().Get("employee_id"); raw != "" && actor.IsPrivileged() {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(w, "Invalid employee_id", nil)
			return 0, false
		}
		return id, true
	}
	if actor.EmployeeID == nil {
		response.HandleError(w, user.ErrInsufficientPermissions)
		return 0, false
	}
	return *actor.EmployeeID, true
}

// dateQuery parses a YYYY-MM-DD query parameter, defaulting to today.
func dateQuery(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.BadRequest(w, name+" must be formatted as YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return date, true
}
