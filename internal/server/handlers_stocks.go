package server

import (
	"errors"
	"net/http"

	"github.com/mattgrove/stockfolio/internal/models"
	"github.com/mattgrove/stockfolio/internal/services/stockrecords"
)

// handleStocksRoot dispatches GET /stocks (list) and POST /stocks (create).
func (s *Server) handleStocksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleStockList(w, r)
	case http.MethodPost:
		s.handleStockCreate(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleStockCreate handles POST /stocks.
func (s *Server) handleStockCreate(w http.ResponseWriter, r *http.Request) {
	if !RequireJSONContentType(w, r) {
		return
	}

	var req models.StockRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	id, err := s.app.StockService.Create(r.Context(), &req)
	if err != nil {
		s.writeStockError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleStockList handles GET /stocks with optional exact-match query filters.
func (s *Server) handleStockList(w http.ResponseWriter, r *http.Request) {
	filters := map[string]string{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	stocks, err := s.app.StockService.List(r.Context(), filters)
	if err != nil {
		s.writeStockError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, stocks)
}

// handleStockGet handles GET /stocks/{id}.
func (s *Server) handleStockGet(w http.ResponseWriter, r *http.Request, id string) {
	stock, err := s.app.StockService.Get(r.Context(), id)
	if err != nil {
		s.writeStockError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, stock)
}

// handleStockUpdate handles PUT /stocks/{id}. The path id wins over the
// body id; every field must be present.
func (s *Server) handleStockUpdate(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireJSONContentType(w, r) {
		return
	}

	var req models.StockRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	updatedID, err := s.app.StockService.Update(r.Context(), id, &req)
	if err != nil {
		s.writeStockError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"id": updatedID})
}

// handleStockDelete handles DELETE /stocks/{id}. Succeeds whether or not a
// document was removed.
func (s *Server) handleStockDelete(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.app.StockService.Delete(r.Context(), id); err != nil {
		s.writeStockError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// handleStockValue handles GET /stock-value/{id}.
func (s *Server) handleStockValue(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := r.URL.Path[len("/stock-value/"):]
	if id == "" {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}

	v, err := s.app.StockService.Valuation(r.Context(), id)
	if err != nil {
		s.writeStockError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, v)
}

// handlePortfolioValue handles GET /portfolio-value.
func (s *Server) handlePortfolioValue(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	pv, err := s.app.StockService.PortfolioValue(r.Context())
	if err != nil {
		s.writeStockError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, pv)
}

// writeStockError maps service errors onto the HTTP error taxonomy:
// validation failures and duplicate symbols are malformed data, unknown ids
// are not found, and everything else (oracle and store failures) surfaces
// as a server error with the raw error text.
func (s *Server) writeStockError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, stockrecords.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Not found")
	case stockrecords.IsClientError(err):
		WriteError(w, http.StatusBadRequest, "Malformed data")
	default:
		WriteServerError(w, err.Error())
	}
}
