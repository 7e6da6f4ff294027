// ABOUTME: Request logging for the editor server, one key=value line per request.
// ABOUTME: Lines carry the chi route pattern and the short browser profile id so one profile's traffic can be followed.
package editor

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// logProfile returns the short form of the request's profile cookie, or "-"
// when the browser has none yet.
func logProfile(r *http.Request) string {
	c, err := r.Cookie(profileCookie)
	if err != nil || c.Value == "" {
		return "-"
	}
	if len(c.Value) > 8 {
		return c.Value[:8]
	}
	return c.Value
}

// logRoute prefers the matched route pattern so static asset paths collapse to one route.
func logRoute(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("quill request profile=%s method=%s route=%s status=%d bytes=%d duration=%s",
			logProfile(r), r.Method, logRoute(r), status, ww.BytesWritten(),
			time.Since(start).Round(time.Microsecond))
	})
}
