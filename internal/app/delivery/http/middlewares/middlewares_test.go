package middlewares

import (
	"bytes"
	"context"
	"errors"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/testutil"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(t *testing.T) *Middlewares {
	return NewMiddlewares(zap.NewNop(), nil, testutil.NewPolicy(t), &config.InternalConfig{
		App: config.App{RequestBodyLimitInMegabyte: 1, MaxRequests: 2, RequestTimeoutInSeconds: 1},
	})
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := newTestMiddlewares(t)
	handler := m.ErrorHandler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(t)
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
	assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "from-client")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "from-client", seen)
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares(t)
	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	oversized := bytes.Repeat([]byte("a"), 1024*1024+1)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(oversized)))

	var maxBytesErr *http.MaxBytesError
	require.Error(t, readErr)
	assert.True(t, errors.As(readErr, &maxBytesErr))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("small"))))
	assert.NoError(t, readErr)
}

func TestRequirePermission(t *testing.T) {
	m := newTestMiddlewares(t)
	reached := false
	handler := m.RequirePermission(constvars.ActionViewPatientRecord)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		reached = true
	}))

	serveAs := func(session *models.Session) int {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if session != nil {
			req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session))
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serveAs(nil))
	assert.False(t, reached)

	assert.Equal(t, http.StatusForbidden, serveAs(&models.Session{UserID: "u1", Role: constvars.RolePatient}))
	assert.False(t, reached)

	assert.Equal(t, http.StatusOK, serveAs(&models.Session{UserID: "u2", Role: constvars.RoleDoctor}))
	assert.True(t, reached)
}

func TestRateLimiter(t *testing.T) {
	m := newTestMiddlewares(t)
	handler := m.RateLimiter()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}
