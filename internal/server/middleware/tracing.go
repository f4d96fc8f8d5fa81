package middleware

import (
	"net/http"

	"github.com/segmentio/ksuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/iudanet/gophdraw/internal/telemetry"
)

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// TracingMiddleware открывает спан на каждый запрос и выставляет X-Request-ID.
// ResponseWriter не оборачивается, апгрейд до websocket продолжает работать.
func TracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = ksuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx, span := telemetry.StartSpan(r.Context(), r.Method+" "+r.URL.Path,
			attribute.String("http.method", r.Method),
			attribute.String("http.url", r.URL.Path),
			attribute.String("http.user_agent", r.UserAgent()),
			attribute.String("request.id", requestID),
		)
		defer span.End()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
