package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/refurnish/authcore/internal/common"
	"github.com/refurnish/authcore/internal/server/auth"
)

type ctxKey string

const principalKey ctxKey = "principal"

const bearerPrefix = "Bearer "

// requireAuth verifies the bearer token on protected routes and stores the
// recovered principal in the request context. Missing, malformed, or expired
// tokens all end the request with 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			s.writeError(r.Context(), w, common.ErrInvalidToken)
			return
		}

		principal, err := s.verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			s.writeError(r.Context(), w, common.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFromContext returns the principal stored by requireAuth.
func PrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(auth.Principal)
	return p, ok
}

// requestMetrics observes per-request latency labeled by route pattern and
// status code.
func (s *Server) requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		s.collector.RecordRequest(route, ww.Status(), time.Since(start))
	})
}

// clientMeta extracts the originating IP and user agent recorded with
// sessions and audit entries.
func clientMeta(r *http.Request) (ip, userAgent string) {
	ip = r.RemoteAddr
	if i := strings.LastIndex(ip, ":"); i > 0 {
		ip = ip[:i]
	}
	return ip, r.UserAgent()
}
