package server

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mattgrove/stockfolio/internal/common"
)

// registerRoutes sets up the stock records REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/kill", s.handleKill)

	// Stocks
	mux.HandleFunc("/stocks", s.handleStocksRoot)
	mux.HandleFunc("/stocks/", s.routeStock)

	// Valuation
	mux.HandleFunc("/stock-value/", s.handleStockValue)
	mux.HandleFunc("/portfolio-value", s.handlePortfolioValue)
}

// registerRoutes sets up the capital gains API routes on the mux.
func (s *GainsServer) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", handleGainsHealth)
	mux.HandleFunc("/capital-gains", s.handleCapitalGains)
}

// routeStock dispatches /stocks/{id} to the appropriate handler.
func (s *Server) routeStock(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/stocks/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handleStockGet(w, r, id)
	case http.MethodPut:
		s.handleStockUpdate(w, r, id)
	case http.MethodDelete:
		s.handleStockDelete(w, r, id)
	default:
		w.Header().Set("Allow", "GET, PUT, DELETE")
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleKill terminates the process with a non-zero exit code. Deployment
// harnesses use it to exercise container restart behavior.
func (s *Server) handleKill(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	s.logger.Warn().Msg("Kill requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	go func() {
		time.Sleep(100 * time.Millisecond)
		os.Exit(1)
	}()
}

func handleGainsHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
