package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetWritesHardenedCookie(t *testing.T) {
	m := NewCookieManager(true, time.Hour)
	rec := httptest.NewRecorder()

	m.Set(rec, "token-value")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)
}

func TestReadRoundTrip(t *testing.T) {
	m := NewCookieManager(false, time.Hour)
	rec := httptest.NewRecorder()
	m.Set(rec, "token-value")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}

	token, ok := m.Read(req)
	require.True(t, ok)
	assert.Equal(t, "token-value", token)
}

func TestReadMissingCookie(t *testing.T) {
	m := NewCookieManager(false, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := m.Read(req)
	assert.False(t, ok)
}

func TestClearExpiresCookie(t *testing.T) {
	m := NewCookieManager(false, time.Hour)
	rec := httptest.NewRecorder()

	m.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
