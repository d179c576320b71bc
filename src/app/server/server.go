// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"survivordraft/src/app/http/handler"
	"survivordraft/src/app/middleware"
	"survivordraft/src/core/ports"
	"survivordraft/src/core/usecase"
	"survivordraft/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler   *handler.HealthHandler
	sessionHandler  *handler.SessionHandler
	castawayHandler *handler.CastawayHandler
	picksHandler    *handler.PicksHandler
	overviewHandler *handler.OverviewHandler
	adminHandler    *handler.AdminHandler

	adminAuth *usecase.AdminAuthService
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repo ports.DraftRepository) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(repo, log)
	sessionService := usecase.NewSessionService(repo, log)
	castawayService := usecase.NewCastawayService(repo, log)
	picksService := usecase.NewPicksService(repo, log)
	overviewService := usecase.NewOverviewService(repo, log)
	adminAuthService := usecase.NewAdminAuthService(cfg.Admin.Password)
	adminService := usecase.NewAdminService(repo, log)

	s := &Server{
		cfg:             cfg,
		log:             log,
		router:          router,
		healthHandler:   handler.NewHealthHandler(healthService),
		sessionHandler:  handler.NewSessionHandler(sessionService),
		castawayHandler: handler.NewCastawayHandler(castawayService),
		picksHandler:    handler.NewPicksHandler(picksService),
		overviewHandler: handler.NewOverviewHandler(overviewService),
		adminHandler:    handler.NewAdminHandler(adminAuthService, adminService),
		adminAuth:       adminAuthService,
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Metrics())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health and metrics endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := s.router.Group("/v1")
	{
		// Session
		v1.POST("/session/join", s.sessionHandler.Join)
		v1.GET("/users", s.sessionHandler.Users)

		// Cast browser
		v1.GET("/castaways", s.castawayHandler.List)

		// Picks
		v1.GET("/users/:username/picks", s.picksHandler.Get)
		v1.PUT("/users/:username/picks", s.picksHandler.Save)

		// Overview
		v1.GET("/overview/scores", s.overviewHandler.Scores)
		v1.GET("/overview/progression", s.overviewHandler.Progression)
		v1.GET("/overview/standings", s.overviewHandler.Standings)
		v1.GET("/overview/state", s.overviewHandler.State)

		// Admin
		v1.POST("/admin/login", s.adminHandler.Login)
		admin := v1.Group("/admin", middleware.AdminAuth(s.adminAuth))
		{
			admin.PUT("/castaways/:player_name/outcome", s.adminHandler.Outcome)
		}
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
