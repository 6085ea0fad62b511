package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediconnect/internal/domain/entity"
)

func requestWithUser(user *entity.User) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), userContextKey, user)
	ctx = context.WithValue(ctx, sessionIDContextKey, "session-1")
	return req.WithContext(ctx)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	var called bool
	handler := RequireDoctor()(okHandler(&called))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, requestWithUser(&entity.User{ID: uuid.New(), Role: entity.RoleDoctor}))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	var called bool
	handler := RequireAdmin()(okHandler(&called))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, requestWithUser(&entity.User{ID: uuid.New(), Role: entity.RolePatient}))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleWithoutUser(t *testing.T) {
	var called bool
	handler := RequirePatient()(okHandler(&called))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleMultipleRoles(t *testing.T) {
	var called bool
	handler := RequireRole(entity.RolePatient, entity.RoleDoctor)(okHandler(&called))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, requestWithUser(&entity.User{ID: uuid.New(), Role: entity.RolePatient}))

	assert.True(t, called)
}

func TestUserFromContext(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RolePatient}
	req := requestWithUser(user)

	got, ok := UserFromContext(req.Context())
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)

	sessionID, ok := SessionIDFromContext(req.Context())
	require.True(t, ok)
	assert.Equal(t, "session-1", sessionID)

	_, ok = UserFromContext(context.Background())
	assert.False(t, ok)
}

func TestCORSAllowedOrigin(t *testing.T) {
	var called bool
	handler := CORS("https://app.example.com")(okHandler(&called))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSRejectedOrigin(t *testing.T) {
	handler := CORS("https://app.example.com")(okHandler(new(bool)))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")

	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	var called bool
	handler := CORS("*")(okHandler(&called))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")

	handler.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
