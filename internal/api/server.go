package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	httpSwagger "github.com/swaggo/http-swagger"

	api "reportboard/internal/api/application"
	"reportboard/internal/api/handlers"
	apimiddleware "reportboard/internal/api/middleware"
	configapp "reportboard/internal/config/application"
	"reportboard/internal/observability"
	reportingapp "reportboard/internal/reporting/application"
	sharedlogger "reportboard/internal/shared/logger"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
	logger     sharedlogger.Logger
}

// NewServer creates a new API server. exports may be nil, in which case the
// export routes are not mounted.
func NewServer(
	logger sharedlogger.Logger,
	runtimeCfg *configapp.RuntimeConfig,
	reports *reportingapp.Service,
	exports *api.ExportService,
	prom *observability.Prom,
) (*Server, error) {
	if reports == nil {
		return nil, fmt.Errorf("report service is required")
	}
	if err := runtimeCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid runtime config: %w", err)
	}

	defaultRange := runtimeCfg.Range()

	// Initialize handlers
	rangeHandler := handlers.NewRangeHandler(defaultRange)
	reportHandler := handlers.NewReportHandler(reports, defaultRange)
	chartHandler := handlers.NewChartHandler(reports, defaultRange)

	// Setup chi router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// HTTP logging middleware - need concrete slog.Logger for httplog
	// Type assert to infrastructure logger to get underlying slog.Logger
	var slogLogger *slog.Logger
	if infraLogger, ok := logger.(interface{ SLog() *slog.Logger }); ok {
		slogLogger = infraLogger.SLog()
	} else {
		// Fallback to default if type assertion fails
		slogLogger = slog.Default()
	}

	r.Use(httplog.RequestLogger(slogLogger, &httplog.Options{
		Level:             slog.LevelDebug,
		Schema:            httplog.SchemaECS.Concise(true),
		LogRequestHeaders: []string{}, // Log no headers by default to reduce verbosity
	}))

	middlewares := []string{"RequestID", "RealIP", "Recoverer", "httplog"}
	if prom != nil {
		r.Use(apimiddleware.RequestMetrics(prom))
		r.Handle("/metrics", prom.Handler())
		middlewares = append(middlewares, "RequestMetrics")
	}

	// Swagger UI (only in dev mode)
	if runtimeCfg.DevMode {
		swaggerHandler := httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		)
		r.Handle("/swagger/*", swaggerHandler)
		r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
		})
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ranges", rangeHandler.ListRanges)
		r.Get("/identity", reportHandler.GetIdentity)
		r.Get("/hygiene", reportHandler.GetHygiene)
		r.Get("/hygiene/breakdown/{name}", reportHandler.GetBreakdown)
		r.Get("/charts", chartHandler.ListCharts)
		r.Get("/charts/{chart}", chartHandler.GetChart)

		if exports != nil {
			exportHandler := handlers.NewExportHandler(exports)
			r.Get("/exports", exportHandler.ListRuns)
			r.Get("/exports/samples", exportHandler.ListSamples)
		}
	})

	httpServer := &http.Server{
		Addr:         ":" + runtimeCfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Debug("Server configured",
		"port", runtimeCfg.APIPort,
		"dev_mode", runtimeCfg.DevMode,
		"default_range", string(defaultRange),
		"exports", exports != nil,
		"middleware", middlewares,
	)

	return &Server{
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.logger.Error("Server error", "err", err)
	}
	return err
}

// Serve accepts connections on an existing listener
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("Starting HTTP server", "addr", l.Addr().String())
	err := s.httpServer.Serve(l)
	if err != nil && err != http.ErrServerClosed {
		s.logger.Error("Server error", "err", err)
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server shutdown error", "err", err)
	} else {
		s.logger.Info("Server shutdown complete")
	}
	return err
}
