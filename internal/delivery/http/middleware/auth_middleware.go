package middleware

import (
	"context"
	"net/http"

	"mediconnect/internal/domain/entity"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/session"
)

type contextKey string

const (
	userContextKey      contextKey = "auth_user"
	sessionIDContextKey contextKey = "auth_session_id"
)

// AuthMiddleware resolves the session cookie into a user and injects it
// into the request context. Missing cookie, bad token, revoked session
// and deactivated account all answer 401 alike.
type AuthMiddleware struct {
	authUsecase *usecase.AuthUsecase
	cookies     *session.CookieManager
}

func NewAuthMiddleware(authUsecase *usecase.AuthUsecase, cookies *session.CookieManager) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		cookies:     cookies,
	}
}

func (m *AuthMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := m.cookies.Read(r)
		if !ok {
			response.Unauthorized(w, "Authentication required")
			return
		}

		user, sessionID, err := m.authUsecase.Resolve(r.Context(), token)
		if err != nil {
			response.Unauthorized(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user set by AuthMiddleware.
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entity.User)
	return user, ok
}

// SessionIDFromContext returns the session id of the current request.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDContextKey).(string)
	return sessionID, ok
}
