// Package httpapi exposes the credential core over HTTP: the two auth
// endpoints, the bearer-protected product routes, and the operational
// endpoints (health, metrics).
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/refurnish/authcore/internal/logging"
	"github.com/refurnish/authcore/internal/server/auth"
	"github.com/refurnish/authcore/internal/server/metrics"
	"github.com/refurnish/authcore/internal/server/products"
	"github.com/refurnish/authcore/internal/server/users"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	addr      string
	logger    logging.Logger
	users     *users.Service
	products  *products.Service
	verifier  *auth.TokenIssuer
	collector *metrics.Collector
	gatherer  prometheus.Gatherer
}

func NewServer(
	addr string,
	logger logging.Logger,
	userService *users.Service,
	productService *products.Service,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
) *Server {
	return &Server{
		addr:      addr,
		logger:    logger.With("module", "http_server"),
		users:     userService,
		products:  productService,
		verifier:  userService.TokenIssuer(),
		collector: collector,
		gatherer:  gatherer,
	}
}

// Routes assembles the router. Every protected route sits behind requireAuth;
// product reads are public.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestMetrics)

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(s.gatherer))

	r.Get("/products/{id}", s.handleGetProduct)
	r.Group(func(pr chi.Router) {
		pr.Use(s.requireAuth)
		pr.Post("/products", s.handleCreateProduct)
		pr.Delete("/products/{id}", s.handleDeleteProduct)
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
