// ABOUTME: Bearer token authentication middleware for the editor routes.
// ABOUTME: Supports Authorization header and quill_token cookie for browser sessions.
package editor

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

const tokenCookie = "quill_token"

// AuthMiddleware returns an http.Handler middleware that validates bearer tokens
// on every route except static assets, the health check, and the login endpoint.
// For browser sessions, the middleware also accepts the quill_token cookie.
func AuthMiddleware(token string) func(http.Handler) http.Handler {
	expected := "Bearer " + token
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if path == "/health" || path == "/login" || strings.HasPrefix(path, "/static/") {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header (API clients)
			auth := r.Header.Get("Authorization")
			if subtle.ConstantTimeCompare([]byte(auth), []byte(expected)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			// Check cookie (browser sessions)
			if cookie, err := r.Cookie(tokenCookie); err == nil {
				if subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(token)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}

			// Script calls get JSON; browser navigation goes to login.
			if !strings.Contains(r.Header.Get("Accept"), "text/html") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			http.Redirect(w, r, "/login", http.StatusSeeOther)
		})
	}
}

const loginPage = `<!DOCTYPE html><html><head><title>quill login</title></head><body style="font-family:sans-serif;display:flex;justify-content:center;align-items:center;height:100vh;margin:0"><div style="text-align:center"><h1>quill</h1><p>%s</p></div></body></html>`

// LoginHandler validates a token query parameter and sets a session cookie.
// GET /login?token=xxx validates and sets the cookie, then redirects to /.
// GET /login without a token shows a minimal login prompt.
func LoginHandler(expectedToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			writeLogin(w, "Authentication required. Append <code>?token=YOUR_TOKEN</code> to this URL.")
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
			writeLogin(w, "Invalid token.")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     tokenCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteStrictMode,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func writeLogin(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(strings.Replace(loginPage, "%s", msg, 1)))
}
