package interfaces

import (
	"context"

	"github.com/mattgrove/stockfolio/internal/models"
)

// StockService implements the stock records business logic: CRUD over the
// stock store plus live valuation against the price oracle.
type StockService interface {
	// Create validates the request, assigns a fresh id and persists the
	// position. Fails when a required field is missing, the purchase date
	// is not DD-MM-YYYY, shares is not positive, or the symbol duplicates
	// an existing position.
	Create(ctx context.Context, req *models.StockRequest) (string, error)

	// List returns all positions matching every supplied string-cast field
	// constraint, or all positions when filters is empty.
	List(ctx context.Context, filters map[string]string) ([]*models.StockPosition, error)

	Get(ctx context.Context, id string) (*models.StockPosition, error)

	// Update fully replaces the stored fields of the position with the path
	// id. Every request field must be present; the stored id is unchanged.
	Update(ctx context.Context, id string, req *models.StockRequest) (string, error)

	Delete(ctx context.Context, id string) error

	// Valuation computes the current value of one position from a live
	// price lookup.
	Valuation(ctx context.Context, id string) (*models.Valuation, error)

	// PortfolioValue sums the live valuations of every stored position.
	// One failing lookup fails the whole aggregate.
	PortfolioValue(ctx context.Context) (*models.PortfolioValue, error)
}

// CapitalGainsService computes aggregate unrealized gain across positions
// held by the stock records service.
type CapitalGainsService interface {
	// CapitalGains returns total current valuation minus total purchase
	// cost over the positions passing the optional share-count bounds
	// (shares > sharesGt, shares < sharesLt), rounded to 2 decimals.
	CapitalGains(ctx context.Context, sharesGt, sharesLt *int) (float64, error)
}
