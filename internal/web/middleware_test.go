package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadedpez/blackjackr/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestLogMiddleware(t *testing.T) {
	var out bytes.Buffer
	logger := logging.NewLoggerWithOutput(logging.INFO, &out)

	handler := LogMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/round/hit", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	logged := out.String()
	assert.Contains(t, logged, "HTTP Request")
	assert.Contains(t, logged, "method=POST")
	assert.Contains(t, logged, "path=/api/round/hit")
	assert.Contains(t, logged, "status=418")
}

func TestLogMiddlewareDefaultStatus(t *testing.T) {
	var out bytes.Buffer
	logger := logging.NewLoggerWithOutput(logging.INFO, &out)

	handler := LogMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, out.String(), "status=200")
}
