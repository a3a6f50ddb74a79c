package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/client-keeper/internal/app"
	"github.com/MKhiriev/client-keeper/internal/service"
	"github.com/MKhiriev/client-keeper/internal/store"
	"github.com/MKhiriev/client-keeper/internal/utils"
	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"field errors are appended", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.FieldErrors{"phone": "must be at least 10 characters"}),
			http.StatusBadRequest, app.MsgInvalidDataProvided + ": phone must be at least 10 characters"},
		{"bad json", fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"bad header", utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{"token before not found", fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, store.ErrUserNotFound),
			http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
		{"wrapped conflict", fmt.Errorf("create: %w", store.ErrClientEmailAlreadyExists), http.StatusConflict, app.MsgClientEmailAlreadyExists},
		{"storage", store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
		{"unknown", errors.New("pq: relation does not exist"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestResponseWriter(t *testing.T) {
	t.Run("implicit 200", func(t *testing.T) {
		lw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
		assert.Equal(t, http.StatusOK, lw.statusCode())

		n, err := lw.Write([]byte("hello"))
		assert.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, 5, lw.size)
		assert.Equal(t, http.StatusOK, lw.statusCode())
	})

	t.Run("first header wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		lw := &responseWriter{ResponseWriter: rec}

		lw.WriteHeader(http.StatusNotFound)
		lw.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusNotFound, lw.statusCode())
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Same(t, rec, lw.Unwrap())
	})
}

func TestIPRateLimiter(t *testing.T) {
	t.Run("per address buckets", func(t *testing.T) {
		l := newIPRateLimiter(0.001, 2)

		assert.True(t, l.allow("10.0.0.1"))
		assert.True(t, l.allow("10.0.0.1"))
		assert.False(t, l.allow("10.0.0.1"))
		assert.True(t, l.allow("10.0.0.2"))
	})

	t.Run("defaults", func(t *testing.T) {
		l := newIPRateLimiter(0, 0)
		assert.Equal(t, defaultForgotBurst, l.burst)
	})

	t.Run("map is reset when full", func(t *testing.T) {
		l := newIPRateLimiter(1, 1)
		for i := 0; i < maxTrackedClients; i++ {
			l.allow(fmt.Sprintf("ip-%d", i))
		}
		l.allow("one-more")
		assert.Len(t, l.limiters, 1)
	})
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.7:51234"
	assert.Equal(t, "192.0.2.7", clientIP(r))

	r.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", clientIP(r))
}
