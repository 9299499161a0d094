package middleware

import (
	"net/http"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFrom(r.Context())
		if !ok || actor.Role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireApprover requires a role that can act on an approval stage:
// manager, hr or admin.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFrom(r.Context())
		if !ok {
			response.HandleError(w, user.ErrApproverAccessRequired)
			return
		}
		switch actor.Role {
		case user.RoleAdmin, user.RoleHR, user.RoleManager:
			next.ServeHTTP(w, r)
		default:
			response.HandleError(w, user.ErrApproverAccessRequired)
		}
	})
}

// RequirePrivileged requires any role that sees beyond its own records.
func RequirePrivileged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFrom(r.Context())
		if !ok || !actor.IsPrivileged() {
			response.HandleError(w, user.ErrInsufficientPermissions)
			return
		}
		next.ServeHTTP(w, r)
	})
}
