package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/mfedotov/renderscope/pkg/db"
	"github.com/mfedotov/renderscope/pkg/gen"
	"github.com/mfedotov/renderscope/pkg/render"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	svc     Renderer
	history History
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Renderer runs the generation pipeline
type Renderer interface {
	Render(ctx context.Context, req render.Request) (*render.Response, error)
	Analyze(ctx context.Context, img gen.Image) (string, error)
	SubmitFeedback(ctx context.Context, recordID string, rating int, tags []string) error
}

// History provides read access to stored render records
type History interface {
	ListRenders(ctx context.Context, category, style string, limit int) ([]db.Render, error)
	FeedbackStats(ctx context.Context) (*db.FeedbackStats, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, svc Renderer, history History, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		svc:     svc,
		history: history,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("renderscope", "mfedotov", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(32))
	s.router.Use(rest.SizeLimit(20 * 1024 * 1024)) // base64 image payloads
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /render", s.renderHandler)
		r.HandleFunc("POST /render/{id}/feedback", s.feedbackHandler)
		r.HandleFunc("POST /analyze", s.analyzeHandler)
		r.HandleFunc("GET /renders", s.listRendersHandler)
		r.HandleFunc("GET /presets", s.presetsHandler)
		r.HandleFunc("GET /stats", s.statsHandler)
	})
}
