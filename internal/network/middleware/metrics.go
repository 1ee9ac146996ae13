package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/denmor86/ya-orderdesk/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// Metrics - middleware, считающий запросы по шаблону маршрута chi
func Metrics(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := NewLoggingResponseWriter(w)
		h.ServeHTTP(lw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		metrics.ObserveRequest(r.Method, route, strconv.Itoa(lw.Status()), start)
	})
}
