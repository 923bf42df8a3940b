package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestAdminTokenAcceptsHeader(t *testing.T) {
	handler, called := okHandler()
	mw := AdminToken("secret")
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("X-Admin-Token", "secret")
	rec := httptest.NewRecorder()

	mw(handler).ServeHTTP(rec, req)

	if !*called {
		t.Fatalf("expected handler to be called")
	}
}

func TestAdminTokenAcceptsQueryParam(t *testing.T) {
	handler, called := okHandler()
	mw := AdminToken("secret")
	req := httptest.NewRequest(http.MethodGet, "/api/patients/export?token=secret", nil)
	rec := httptest.NewRecorder()

	mw(handler).ServeHTTP(rec, req)

	if !*called {
		t.Fatalf("expected handler to be called")
	}
}

func TestAdminTokenRejectsWrongToken(t *testing.T) {
	handler, called := okHandler()
	mw := AdminToken("secret")
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	rec := httptest.NewRecorder()

	mw(handler).ServeHTTP(rec, req)

	if *called {
		t.Fatalf("expected handler not to be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON error body, got content type %q", ct)
	}
}

func TestAdminTokenRejectsMissingToken(t *testing.T) {
	handler, called := okHandler()
	mw := AdminToken("secret")
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()

	mw(handler).ServeHTTP(rec, req)

	if *called {
		t.Fatalf("expected handler not to be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAdminTokenDisabledWhenEmpty(t *testing.T) {
	handler, called := okHandler()
	mw := AdminToken("")
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()

	mw(handler).ServeHTTP(rec, req)

	if !*called {
		t.Fatalf("expected handler to be called with auth disabled")
	}
}
