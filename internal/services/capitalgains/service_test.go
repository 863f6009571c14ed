package capitalgains

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattgrove/stockfolio/internal/common"
	"github.com/mattgrove/stockfolio/internal/models"
)

// mockStocksClient serves canned positions and valuations.
type mockStocksClient struct {
	stocks   []*models.StockPosition
	values   map[string]*models.Valuation
	listErr  error
	valueErr error
}

func (m *mockStocksClient) ListStocks(ctx context.Context) ([]*models.StockPosition, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.stocks, nil
}

func (m *mockStocksClient) GetStockValue(ctx context.Context, id string) (*models.Valuation, error) {
	if m.valueErr != nil {
		return nil, m.valueErr
	}
	v, ok := m.values[id]
	if !ok {
		return nil, errors.New("unknown id " + id)
	}
	return v, nil
}

func position(id, symbol string, price float64, shares int) *models.StockPosition {
	return &models.StockPosition{
		ID:            id,
		Name:          "NA",
		Symbol:        symbol,
		PurchasePrice: price,
		PurchaseDate:  "22-02-2024",
		Shares:        shares,
	}
}

func newTestService(client *mockStocksClient) *Service {
	return NewService(client, common.NewSilentLogger())
}

func intPtr(n int) *int { return &n }

func TestCapitalGains_NoFilters(t *testing.T) {
	client := &mockStocksClient{
		stocks: []*models.StockPosition{
			position("stk_1", "AAPL", 100, 10), // cost 1000
			position("stk_2", "GOOG", 50, 4),   // cost 200
		},
		values: map[string]*models.Valuation{
			"stk_1": {Symbol: "AAPL", Ticker: 120, StockValue: 1200},
			"stk_2": {Symbol: "GOOG", Ticker: 45, StockValue: 180},
		},
	}
	svc := newTestService(client)

	gains, err := svc.CapitalGains(context.Background(), nil, nil)
	require.NoError(t, err)
	// (1200 + 180) - (1000 + 200)
	assert.Equal(t, 180.0, gains)
}

func TestCapitalGains_EmptyPortfolio(t *testing.T) {
	svc := newTestService(&mockStocksClient{})

	gains, err := svc.CapitalGains(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, gains)
}

func TestCapitalGains_SharesFilters(t *testing.T) {
	client := &mockStocksClient{
		stocks: []*models.StockPosition{
			position("stk_1", "AAPL", 100, 7),
			position("stk_2", "GOOG", 100, 14),
			position("stk_3", "NVDA", 100, 19),
		},
		values: map[string]*models.Valuation{
			"stk_1": {StockValue: 800},  // gain 100 over cost 700
			"stk_2": {StockValue: 1500}, // gain 100 over cost 1400
			"stk_3": {StockValue: 2000}, // gain 100 over cost 1900
		},
	}
	svc := newTestService(client)

	// Strictly greater than 10 excludes the 7-share position.
	gains, err := svc.CapitalGains(context.Background(), intPtr(10), nil)
	require.NoError(t, err)
	assert.Equal(t, 200.0, gains)

	// Strictly less than 19 excludes the 19-share position.
	gains, err = svc.CapitalGains(context.Background(), nil, intPtr(19))
	require.NoError(t, err)
	assert.Equal(t, 200.0, gains)

	// Both bounds leave only the middle position.
	gains, err = svc.CapitalGains(context.Background(), intPtr(7), intPtr(19))
	require.NoError(t, err)
	assert.Equal(t, 100.0, gains)

	// Bounds that exclude everything yield zero.
	gains, err = svc.CapitalGains(context.Background(), intPtr(100), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, gains)
}

func TestCapitalGains_Rounding(t *testing.T) {
	client := &mockStocksClient{
		stocks: []*models.StockPosition{
			position("stk_1", "AAPL", 33.333, 3), // cost 99.999
		},
		values: map[string]*models.Valuation{
			"stk_1": {StockValue: 100.123},
		},
	}
	svc := newTestService(client)

	gains, err := svc.CapitalGains(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.12, gains)
}

func TestCapitalGains_NegativeGains(t *testing.T) {
	client := &mockStocksClient{
		stocks: []*models.StockPosition{
			position("stk_1", "AAPL", 200, 5), // cost 1000
		},
		values: map[string]*models.Valuation{
			"stk_1": {StockValue: 750},
		},
	}
	svc := newTestService(client)

	gains, err := svc.CapitalGains(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, -250.0, gains)
}

func TestCapitalGains_ListFailure(t *testing.T) {
	svc := newTestService(&mockStocksClient{listErr: errors.New("stocks service down")})

	_, err := svc.CapitalGains(context.Background(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list stocks")
}

func TestCapitalGains_ValueFailure(t *testing.T) {
	client := &mockStocksClient{
		stocks: []*models.StockPosition{
			position("stk_1", "AAPL", 100, 10),
		},
		valueErr: errors.New("oracle unreachable"),
	}
	svc := newTestService(client)

	_, err := svc.CapitalGains(context.Background(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stk_1")
}
