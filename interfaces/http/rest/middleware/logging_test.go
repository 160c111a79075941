package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// serveLogged runs one request through the Logger middleware and returns
// the requestID field of the resulting log line
func serveLogged(t *testing.T, wrap func(http.Handler) http.Handler, req *http.Request) string {
	t.Helper()

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	var handler http.Handler = Logger(logger)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	if wrap != nil {
		handler = wrap(handler)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	entries := logs.All()
	require.Len(t, entries, 1)
	requestID, ok := entries[0].ContextMap()["requestID"].(string)
	require.True(t, ok, "log line must carry a requestID field")
	return requestID
}

func TestLogger_UsesChiRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)

	requestID := serveLogged(t, chimiddleware.RequestID, req)

	assert.NotEmpty(t, requestID)
}

func TestLogger_FallsBackToTraceHeader(t *testing.T) {
	// No chi RequestID middleware, as when chi runs behind API Gateway.
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("X-Amzn-Trace-Id", "Root=1-67891233-abcdef012345678912345678")

	requestID := serveLogged(t, nil, req)

	assert.Equal(t, "Root=1-67891233-abcdef012345678912345678", requestID)
}

func TestLogger_GeneratesRequestIDWhenAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)

	requestID := serveLogged(t, nil, req)

	_, err := uuid.Parse(requestID)
	assert.NoError(t, err, "generated fallback must be a uuid, got %q", requestID)
}
