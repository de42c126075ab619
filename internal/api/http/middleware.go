package http

import (
	"net/http"

	"rentalhub-backend/internal/logger"
	"rentalhub-backend/internal/security"
)

// AuthMiddleware validates the session cookie on every request. Unauthenticated
// access redirects (302) to the login entry point rather than returning 401.
type AuthMiddleware struct {
	tokens     security.TokenManager
	cookieName string
	loginURL   string
}

func NewAuthMiddleware(tokens security.TokenManager, cookieName, loginURL string) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:     tokens,
		cookieName: cookieName,
		loginURL:   loginURL,
	}
}

func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil {
			http.Redirect(w, r, m.loginURL, http.StatusFound)
			return
		}
		claims, err := m.tokens.ValidateToken(cookie.Value)
		if err != nil {
			logger.Debug("session token rejected", "error", err)
			http.Redirect(w, r, m.loginURL, http.StatusFound)
			return
		}
		rc := &RequestContext{
			UserID:      claims.UserID,
			HubID:       claims.HubID,
			Permissions: claims.Permissions,
		}
		next.ServeHTTP(w, r.WithContext(WithRequestContext(r.Context(), rc)))
	})
}
