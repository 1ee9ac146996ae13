package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/denmor86/ya-orderdesk/internal/helpers"
	"github.com/denmor86/ya-orderdesk/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = helpers.GetRequestID(r.Context())
	}))

	t.Run("Generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})

	t.Run("Reused from client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("Too long is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 65))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Len(t, seen, 36)
	})
}

func TestRateLimiter(t *testing.T) {
	require.NoError(t, logger.Initialize("info"))

	limiter := NewRateLimiter(1, 2)
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, httptest.NewRequest(http.MethodPost, "/insert_order", nil))
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "1", last.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"Too many requests"}`, last.Body.String())
}

func TestRateLimiter_Unlimited(t *testing.T) {
	limiter := NewRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, limiter.Allow())
	}
}

func TestLoggingResponseWriter(t *testing.T) {
	require.NoError(t, logger.Initialize("info"))

	handler := LogHandle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lw, ok := w.(*LoggingResponseWriter)
		require.True(t, ok)
		_, _ = w.Write([]byte("hello"))
		assert.Equal(t, http.StatusOK, lw.Status())
		assert.Equal(t, 5, lw.responseData.size)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping?key=secret", nil))
	assert.Equal(t, "hello", rec.Body.String())
}
