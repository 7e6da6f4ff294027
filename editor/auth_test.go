// ABOUTME: Tests for bearer token middleware and the login cookie flow.
package editor

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthExemptPaths(t *testing.T) {
	srv, _ := newTestServer(t, WithAuthToken("tok"))

	for _, path := range []string{"/health", "/static/css/editor.css"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, rec.Code)
		}
	}
}

func TestAuthRejectsMissingToken(t *testing.T) {
	srv, _ := newTestServer(t, WithAuthToken("tok"))

	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Errorf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestAuthAcceptsBearerAndCookie(t *testing.T) {
	srv, _ := newTestServer(t, WithAuthToken("tok"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("bearer: expected status 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookie, Value: "tok"})
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("cookie: expected status 200, got %d", rec.Code)
	}
}

func TestLoginSetsCookie(t *testing.T) {
	srv, _ := newTestServer(t, WithAuthToken("tok"))

	req := httptest.NewRequest(http.MethodGet, "/login?token=tok", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rec.Code)
	}
	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == tokenCookie && c.Value == "tok" {
			found = true
		}
	}
	if !found {
		t.Error("expected token cookie to be set")
	}

	req = httptest.NewRequest(http.MethodGet, "/login?token=wrong", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong token: expected status 401, got %d", rec.Code)
	}
}
