// internal/web/middleware.go
//
// HTTP middleware: security headers, HTTPS redirect, request logging,
// and the visit recorder.
package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/requestinfo"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
)

// security sets baseline headers on every response before the handler
// runs; a handler that needs a different value overwrites its own.
func security(next http.Handler) http.Handler {
	const (
		hsts = "max-age=63072000; includeSubDomains; preload"
		csp  = "default-src 'self'; img-src 'self' https: data:; object-src 'none'; " +
			"base-uri 'self'; frame-ancestors 'none'"
		xfo   = "DENY"
		nosn  = "nosniff"
		refer = "strict-origin-when-cross-origin"
		perm  = "geolocation=(), microphone=(), camera=()"
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Headers must be in place before the handler writes its
		// status line; anything added afterwards is dropped.  Handlers
		// may still replace individual values.
		h := w.Header()
		h.Set("Strict-Transport-Security", hsts)
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Frame-Options", xfo)
		h.Set("X-Content-Type-Options", nosn)
		h.Set("Referrer-Policy", refer)
		h.Set("Permissions-Policy", perm)

		next.ServeHTTP(w, r)
	})
}

// forceHTTPS issues a 308 to the HTTPS version of the same URL for
// plain-HTTP requests, skipping localhost so dev flows keep working.
func forceHTTPS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS != nil || stripPort(r.Host) == "localhost" ||
			strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
			next.ServeHTTP(w, r)
			return
		}
		target := "https://" + r.Host + r.URL.RequestURI()
		http.Redirect(w, r, target, http.StatusPermanentRedirect)
	})
}

func stripPort(h string) string {
	if i := strings.IndexByte(h, ':'); i != -1 {
		return h[:i]
	}
	return h
}

// requestLogger emits one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		zap.S().Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// recordVisits persists one Visit row per public page view.  Writes
// happen on a detached goroutine so a slow insert never delays the
// response; failures are logged and dropped.
func recordVisits(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			if r.Method != http.MethodGet {
				return
			}
			info := requestinfo.FromContext(r.Context())
			if info == nil {
				return
			}

			v := store.Visit{
				Path:       r.URL.Path,
				Browser:    info.UA.Browser,
				OS:         info.UA.OS,
				Device:     info.UA.Device,
				IsBot:      info.UA.IsBot,
				CountryISO: info.Geo.CountryISO,
				City:       info.Geo.City,
			}
			if ref := r.Referer(); ref != "" {
				v.Referrer = &ref
			}
			if info.Geo.IP != nil {
				ip := info.Geo.IP.String()
				v.IP = &ip
			}

			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := st.InsertVisit(ctx, v); err != nil {
					zap.S().Warnw("visit insert failed", "error", err)
				}
			}()
		})
	}
}
