package session

import (
	"net/http"
	"time"
)

// CookieName holds the signed session token on the client.
const CookieName = "mediconnect_session"

// CookieManager writes and reads the HTTP-only session cookie.
type CookieManager struct {
	secure bool
	maxAge time.Duration
}

// NewCookieManager creates a cookie manager. secure should be true in
// production so the cookie is only sent over TLS.
func NewCookieManager(secure bool, maxAge time.Duration) *CookieManager {
	return &CookieManager{
		secure: secure,
		maxAge: maxAge,
	}
}

func (m *CookieManager) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *CookieManager) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (m *CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
