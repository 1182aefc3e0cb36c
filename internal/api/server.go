package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/OWOTL/nuomi/internal/api/handlers"
	"github.com/OWOTL/nuomi/internal/api/middleware"
	"github.com/OWOTL/nuomi/internal/application/service"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Server is the HTTP API server.
type Server struct {
	config     Config
	router     chi.Router
	httpServer *http.Server
	logger     *slog.Logger
	svc        *service.VoucherService
}

// NewServer creates a new API server around the voucher service.
func NewServer(cfg Config, svc *service.VoucherService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config: cfg,
		router: chi.NewRouter(),
		logger: logger,
		svc:    svc,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	corsConfig := middleware.CORSConfig{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}
	s.router.Use(middleware.CORS(corsConfig))
	s.router.Use(middleware.Logging(s.logger))
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check (no /api prefix - for load balancers)
	healthHandler := handlers.NewHealthHandler()
	s.router.Get("/health", healthHandler.ServeHTTP)

	s.router.Route("/api", func(r chi.Router) {
		// Reference tables
		tablesHandler := handlers.NewTablesHandler(s.svc)
		r.Get("/accounts", tablesHandler.ListAccounts)
		r.Put("/accounts", tablesHandler.ReplaceAccounts)
		r.Post("/accounts/import", tablesHandler.ImportAccounts)
		r.Get("/customers", tablesHandler.ListCustomers)
		r.Put("/customers", tablesHandler.ReplaceCustomers)
		r.Post("/customers/import", tablesHandler.ImportCustomers)
		r.Get("/rules", tablesHandler.ListRules)
		r.Put("/rules", tablesHandler.ReplaceRules)

		// Voucher generation
		generateHandler := handlers.NewGenerateHandler(s.svc)
		r.Post("/generate", generateHandler.Generate)
		r.Post("/generate/export", generateHandler.Export)

		// Backup / restore
		backupHandler := handlers.NewBackupHandler(s.svc)
		r.Get("/backup", backupHandler.Get)
		r.Post("/restore", backupHandler.Restore)

		// Run history
		runsHandler := handlers.NewRunsHandler(s.svc)
		r.Get("/runs", runsHandler.List)
	})
}

// Router exposes the configured router, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting API server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
