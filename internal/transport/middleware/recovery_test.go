package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiphoChris/afrilex/pkg/ctxutil"
)

func TestRecovery_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	h := Recovery(slog.New(slog.NewJSONHandler(&buf, nil)))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/words", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, buf.String())
}

func TestRecovery_Panic(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "string", value: "nil form"},
		{name: "error", value: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := Recovery(slog.New(slog.NewJSONHandler(&buf, nil)))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(tt.value)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/browse", nil)
			req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-42"))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"internal server error","request_id":"req-42"}`, rec.Body.String())

			logged := buf.String()
			assert.Contains(t, logged, "panic recovered")
			assert.Contains(t, logged, `"request_id":"req-42"`)
			assert.Contains(t, logged, `"stack"`)
		})
	}
}

func TestRecovery_AbortHandlerPropagates(t *testing.T) {
	h := Recovery(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		require.Equal(t, http.ErrAbortHandler, recover())
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	t.Fatal("expected panic")
}
