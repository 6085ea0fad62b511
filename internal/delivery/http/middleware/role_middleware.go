package middleware

import (
	"net/http"

	"mediconnect/internal/domain/entity"
	"mediconnect/pkg/response"
)

// RequireRole gates a route to the given roles. It assumes
// AuthMiddleware already ran; a missing context user answers 401.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}
			if _, ok := allowed[user.Role]; !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequirePatient() func(http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)
}

func RequireDoctor() func(http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)
}

func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)
}
