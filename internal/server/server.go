package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/beanlog/cuppa/internal/plugin"
	"github.com/beanlog/cuppa/internal/version"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr string

	// RateLimit is the allowed requests per second per client.
	// Zero disables rate limiting.
	RateLimit float64
	RateBurst int
}

// Server is the main cuppa API server.
type Server struct {
	httpServer *http.Server
	registry   *plugin.Registry
	logger     *zap.Logger
	mux        *http.ServeMux
	limiter    *RateLimiter
}

// New creates a new Server instance.
func New(cfg Config, reg *plugin.Registry, logger *zap.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:        cfg.Addr,
			Handler:     mux,
			ReadTimeout: 15 * time.Second,
			// No write deadline: MCP SSE sessions hold the response open.
			IdleTimeout: 60 * time.Second,
		},
		registry: reg,
		logger:   logger,
		mux:      mux,
	}

	if cfg.RateLimit > 0 {
		s.limiter = NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst, logger)
		s.httpServer.Handler = s.limiter.Middleware(mux)
	}

	s.registerCoreRoutes()
	s.mountModuleRoutes()
	s.mountRawHandlers()

	return s
}

// registerCoreRoutes sets up routes that are always available.
func (s *Server) registerCoreRoutes() {
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/v1/version", s.handleVersion)
	s.mux.HandleFunc("GET /api/v1/modules", s.handleModules)
	s.mux.Handle("GET /metrics", promhttp.Handler())
	s.mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))
}

// mountModuleRoutes registers all module routes under /api/v1/{module}/.
func (s *Server) mountModuleRoutes() {
	allRoutes := s.registry.AllRoutes()
	for moduleName, routes := range allRoutes {
		for _, route := range routes {
			pattern := fmt.Sprintf("%s /api/v1/%s%s", route.Method, moduleName, route.Path)
			s.mux.HandleFunc(pattern, route.Handler)
			s.logger.Debug("mounted route",
				zap.String("module", moduleName),
				zap.String("pattern", pattern),
			)
		}
	}
}

// mountRawHandlers registers module handlers that live on the server
// root, outside the versioned API prefix.
func (s *Server) mountRawHandlers() {
	for pattern, handler := range s.registry.RawHandlers() {
		s.mux.Handle(pattern, handler)
		s.logger.Debug("mounted raw handler", zap.String("pattern", pattern))
	}
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	if s.limiter != nil {
		s.limiter.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}

type healthResponse struct {
	Status  string                         `json:"status"`
	Service string                         `json:"service"`
	Version string                         `json:"version"`
	Modules map[string]plugin.HealthStatus `json:"modules"`
}

type moduleResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// handleHealth returns the server health status.
//
//	@Summary		Health check
//	@Description	Aggregated health of the server and every enabled module
//	@Tags			core
//	@Produce		json
//	@Success		200	{object}	healthResponse
//	@Router			/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	modules := s.registry.Health(r.Context())
	status := "ok"
	for _, hs := range modules {
		if !hs.Healthy {
			status = "degraded"
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cuppa-Version", version.Short())
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:  status,
		Service: "cuppa",
		Version: version.Short(),
		Modules: modules,
	})
}

// handleVersion returns build information.
//
//	@Summary		Version
//	@Description	Build-time version, commit, and runtime information
//	@Tags			core
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cuppa-Version", version.Short())
	_ = json.NewEncoder(w).Encode(version.Map())
}

// handleModules returns the list of registered modules.
//
//	@Summary		List modules
//	@Description	Registered modules with their versions
//	@Tags			core
//	@Produce		json
//	@Success		200	{array}	moduleResponse
//	@Router			/modules [get]
func (s *Server) handleModules(w http.ResponseWriter, r *http.Request) {
	modules := s.registry.All()
	info := make([]moduleResponse, 0, len(modules))
	for _, m := range modules {
		info = append(info, moduleResponse{
			Name:    m.Name(),
			Version: m.Version(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cuppa-Version", version.Short())
	_ = json.NewEncoder(w).Encode(info)
}
