package interfaces

import (
	"context"

	"github.com/mattgrove/stockfolio/internal/models"
)

// PriceClient retrieves live stock prices from the price oracle.
type PriceClient interface {
	// GetPrice returns the current unit price for a ticker symbol.
	// A non-success oracle response is returned as an error carrying the
	// upstream status code.
	GetPrice(ctx context.Context, symbol string) (float64, error)
}

// StocksClient is the capital gains service's view of the stock records
// service HTTP API.
type StocksClient interface {
	ListStocks(ctx context.Context) ([]*models.StockPosition, error)
	GetStockValue(ctx context.Context, id string) (*models.Valuation, error)
}
