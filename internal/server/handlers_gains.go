package server

import (
	"net/http"
	"strconv"

	"github.com/mattgrove/stockfolio/internal/models"
)

// handleCapitalGains handles GET /capital-gains with optional numsharegt and
// numsharelt share-count filters. Filter values that do not parse as
// integers are ignored.
func (g *GainsServer) handleCapitalGains(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	var sharesGt, sharesLt *int
	if raw := r.URL.Query().Get("numsharegt"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			sharesGt = &n
		}
	}
	if raw := r.URL.Query().Get("numsharelt"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			sharesLt = &n
		}
	}

	gains, err := g.gains.CapitalGains(r.Context(), sharesGt, sharesLt)
	if err != nil {
		g.logger.Error().Err(err).Msg("Capital gains computation failed")
		WriteServerError(w, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, models.CapitalGains{CapitalGains: gains})
}
