package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"truedoc-admin/internal/delivery/http/middleware"

	"github.com/stretchr/testify/assert"
)

func corsRequest(m *middleware.CORSMiddleware, method, origin string) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
	})

	req := httptest.NewRequest(method, "/api/v1/admin/leads", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestCORS_AnyOrigin(t *testing.T) {
	for _, m := range []*middleware.CORSMiddleware{middleware.NewCORSMiddleware(), middleware.NewCORSMiddleware("*")} {
		rec, reached := corsRequest(m, http.MethodGet, "https://admin.truedoc.example")

		assert.True(t, reached)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORS_AllowList(t *testing.T) {
	m := middleware.NewCORSMiddleware("https://admin.truedoc.example", " https://staging.truedoc.example ")

	rec, _ := corsRequest(m, http.MethodGet, "https://staging.truedoc.example")
	assert.Equal(t, "https://staging.truedoc.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))

	rec, reached := corsRequest(m, http.MethodGet, "https://evil.example")
	assert.True(t, reached)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	rec, reached := corsRequest(middleware.NewCORSMiddleware(), http.MethodOptions, "https://admin.truedoc.example")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")
}
