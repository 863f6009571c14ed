// Package server exposes the stockfolio HTTP surfaces: the stock records
// REST API and the capital gains API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mattgrove/stockfolio/internal/app"
	"github.com/mattgrove/stockfolio/internal/common"
	"github.com/mattgrove/stockfolio/internal/interfaces"
)

// Server wraps the stock records HTTP server and application reference.
type Server struct {
	app    *app.App
	server *http.Server
	logger *common.Logger
}

// NewServer creates the stock records REST API server.
func NewServer(a *app.App) *Server {
	s := &Server{
		app:    a,
		logger: a.Logger,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	handler := applyMiddleware(mux, a.Logger)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting stock records API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// GainsServer wraps the capital gains HTTP server.
type GainsServer struct {
	gains  interfaces.CapitalGainsService
	server *http.Server
	logger *common.Logger
}

// NewGainsServer creates the capital gains API server.
func NewGainsServer(a *app.GainsApp) *GainsServer {
	s := &GainsServer{
		gains:  a.GainsService,
		logger: a.Logger,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	handler := applyMiddleware(mux, a.Logger)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", a.Config.Gains.Host, a.Config.Gains.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for testing.
func (s *GainsServer) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *GainsServer) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting capital gains API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *GainsServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
