package httpapi_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idnumber/httpapi"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates an id when absent", func(t *testing.T) {
		t.Parallel()

		handler := httpapi.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := httpapi.RequestIDFromContext(r.Context())
			assert.NotEmpty(t, id)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(httpapi.RequestIDHeader))
	})

	t.Run("keeps a well-formed client id", func(t *testing.T) {
		t.Parallel()

		const clientID = "fixture-run-42"
		handler := httpapi.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, clientID, httpapi.RequestIDFromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(httpapi.RequestIDHeader, clientID)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, clientID, rec.Header().Get(httpapi.RequestIDHeader))
	})

	t.Run("replaces malformed client ids", func(t *testing.T) {
		t.Parallel()

		malformed := []string{
			"fixture run 42",
			"fixture/run/42",
			"<script>alert(1)</script>",
			strings.Repeat("a", 129),
		}
		for _, bad := range malformed {
			handler := httpapi.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id := httpapi.RequestIDFromContext(r.Context())
				assert.NotEmpty(t, id)
				assert.NotEqual(t, bad, id)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(httpapi.RequestIDHeader, bad)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.NotEqual(t, bad, rec.Header().Get(httpapi.RequestIDHeader))
		}
	})

	t.Run("empty without the middleware", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, httpapi.RequestIDFromContext(context.Background()))
	})
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	handler := httpapi.RequestID(httpapi.RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodGet, "/v1/schemes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	logged := buf.String()
	assert.Contains(t, logged, "method=GET")
	assert.Contains(t, logged, "path=/v1/schemes")
	assert.Contains(t, logged, "status=418")
	assert.Contains(t, logged, "request_id=")
}

func TestRecoverer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	handler := httpapi.Recoverer(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
	assert.Contains(t, buf.String(), "boom")
}
