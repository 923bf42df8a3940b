package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brsaude/patient-intake/internal/http/handlers"
	"github.com/brsaude/patient-intake/internal/storage"
)

func newTestRouter(adminToken string) http.Handler {
	h := handlers.NewPatientsHandler(storage.NewMemoryStore(), nil, nil)
	return New(&Config{
		Patients:           h,
		AdminToken:         adminToken,
		CORSAllowedOrigins: []string{"*"},
	})
}

func TestRouter_SubmitIsPublic(t *testing.T) {
	r := newTestRouter("secret")

	body := strings.NewReader(`{"full_name":"Ana Silva","mobile_number":"11987654321"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/patients", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"action":"insert"`)
}

func TestRouter_ListRequiresToken(t *testing.T) {
	r := newTestRouter("secret")

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("X-Admin-Token", "secret")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ExportAcceptsQueryToken(t *testing.T) {
	r := newTestRouter("secret")

	req := httptest.NewRequest(http.MethodGet, "/api/patients/export?token=secret", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter("")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
