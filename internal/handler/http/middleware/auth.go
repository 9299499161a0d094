package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/handler/http/response"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthRequired rejects requests without a valid access token and puts
// the decoded Actor on the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			actor, ok := actorFromClaims(claims)
			if !ok {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFrom returns the authenticated actor stored by AuthRequired.
func ActorFrom(ctx context.Context) (user.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(user.Actor)
	return actor, ok
}

func actorFromClaims(claims map[string]interface{}) (user.Actor, bool) {
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return user.Actor{}, false
	}
	roleStr, ok := claims["role"].(string)
	if !ok || !user.ValidRole(user.Role(roleStr)) {
		return user.Actor{}, false
	}

	actor := user.Actor{
		UserID: int64(userID),
		Role:   user.Role(roleStr),
	}
	if employeeID, ok := claims["employee_id"].(float64); ok {
		id := int64(employeeID)
		actor.EmployeeID = &id
	}
	if departmentID, ok := claims["department_id"].(float64); ok {
		id := int64(departmentID)
		actor.DepartmentID = &id
	}
	return actor, true
}
