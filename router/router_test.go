// file: router/router_test.go

package router_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"lifeseeker-api/logger"
	"lifeseeker-api/router"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestHealthCheck(t *testing.T) {
	// Route registration does not touch the handlers, so nil is fine here.
	r := router.NewRouter(nil, nil, nil, nil, nil, nil, nil)

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	expectedBody := `{"status":"API is healthy and running"}`
	assert.JSONEq(t, expectedBody, rr.Body.String())
}

func TestRouting(t *testing.T) {
	r := router.NewRouter(nil, nil, nil, nil, nil, nil, nil)

	t.Run("unknown route", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/does-not-exist", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/auth", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}
