package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestObserver receives one call per finished request
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// RequestMetrics reports every request to observer, keyed by the matched chi
// route pattern so that path parameters do not explode label cardinality.
func RequestMetrics(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}

			observer.ObserveRequest(r.Method, route, status, time.Since(start))
		})
	}
}
