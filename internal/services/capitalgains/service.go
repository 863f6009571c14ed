// Package capitalgains computes aggregate unrealized gain across positions
// held by the stock records service.
package capitalgains

import (
	"context"
	"fmt"

	"github.com/mattgrove/stockfolio/internal/common"
	"github.com/mattgrove/stockfolio/internal/interfaces"
	"github.com/mattgrove/stockfolio/internal/models"
)

// Service implements interfaces.CapitalGainsService over the stock records
// service HTTP API.
type Service struct {
	stocks interfaces.StocksClient
	logger *common.Logger
}

// NewService creates a new capital gains service.
func NewService(stocks interfaces.StocksClient, logger *common.Logger) *Service {
	return &Service{
		stocks: stocks,
		logger: logger,
	}
}

// CapitalGains fetches all positions, applies the optional share-count
// bounds, and returns total live valuation minus total purchase cost over
// the surviving set, rounded to 2 decimals. One valuation call per
// position, sequential; any downstream failure fails the whole computation.
func (s *Service) CapitalGains(ctx context.Context, sharesGt, sharesLt *int) (float64, error) {
	stocks, err := s.stocks.ListStocks(ctx)
	if err != nil {
		return 0, fmt.Errorf("list stocks: %w", err)
	}

	filtered := make([]*models.StockPosition, 0, len(stocks))
	for _, stock := range stocks {
		if sharesGt != nil && stock.Shares <= *sharesGt {
			continue
		}
		if sharesLt != nil && stock.Shares >= *sharesLt {
			continue
		}
		filtered = append(filtered, stock)
	}

	totalValue := 0.0
	totalCost := 0.0
	for _, stock := range filtered {
		v, err := s.stocks.GetStockValue(ctx, stock.ID)
		if err != nil {
			return 0, fmt.Errorf("stock value of %s: %w", stock.ID, err)
		}
		totalValue += v.StockValue
		totalCost += stock.PurchasePrice * float64(stock.Shares)
	}

	gains := models.Round2(totalValue - totalCost)

	s.logger.Debug().
		Int("positions", len(filtered)).
		Float64("capital_gains", gains).
		Msg("Capital gains computed")

	return gains, nil
}

// Ensure Service implements CapitalGainsService
var _ interfaces.CapitalGainsService = (*Service)(nil)
