package middleware

import (
	"net/http"
	"time"

	"ecommerce-backend/pkg/common"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Logger creates a request logging middleware
func Logger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			// Behind API Gateway the chi request id is absent; fall back
			// to the trace header or a generated id so every line stays
			// correlatable.
			requestID := middleware.GetReqID(r.Context())
			if requestID == "" {
				requestID = common.ExtractRequestID(r)
			}

			logger.Info("HTTP Request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestID", requestID),
				zap.String("remoteAddr", r.RemoteAddr),
			)
		})
	}
}
