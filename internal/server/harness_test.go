package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mattgrove/stockfolio/internal/app"
	"github.com/mattgrove/stockfolio/internal/common"
	"github.com/mattgrove/stockfolio/internal/models"
	"github.com/mattgrove/stockfolio/internal/services/stockrecords"
)

// memStore is an in-memory StockStore used by handler tests.
type memStore struct {
	stocks map[string]*models.StockPosition
	nextID int
}

func newMemStore() *memStore {
	return &memStore{stocks: map[string]*models.StockPosition{}}
}

func (m *memStore) Insert(ctx context.Context, stock *models.StockPosition) (string, error) {
	m.nextID++
	id := fmt.Sprintf("stk_%08d", m.nextID)
	clone := *stock
	clone.ID = id
	m.stocks[id] = &clone
	return id, nil
}

func (m *memStore) Get(ctx context.Context, id string) (*models.StockPosition, error) {
	stock, ok := m.stocks[id]
	if !ok {
		return nil, nil
	}
	clone := *stock
	return &clone, nil
}

func (m *memStore) List(ctx context.Context) ([]*models.StockPosition, error) {
	out := make([]*models.StockPosition, 0, len(m.stocks))
	for i := 1; i <= m.nextID; i++ {
		if stock, ok := m.stocks[fmt.Sprintf("stk_%08d", i)]; ok {
			clone := *stock
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (m *memStore) Replace(ctx context.Context, stock *models.StockPosition) error {
	clone := *stock
	m.stocks[stock.ID] = &clone
	return nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	delete(m.stocks, id)
	return nil
}

func (m *memStore) FindBySymbol(ctx context.Context, symbol string) (*models.StockPosition, error) {
	for _, stock := range m.stocks {
		if stock.Symbol == symbol {
			clone := *stock
			return &clone, nil
		}
	}
	return nil, nil
}

// stubPrices serves fixed prices per symbol; unknown symbols fail the way an
// unreachable oracle would.
type stubPrices struct {
	prices map[string]float64
	err    error
}

func (s *stubPrices) GetPrice(ctx context.Context, symbol string) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	price, ok := s.prices[symbol]
	if !ok {
		return 0, fmt.Errorf("no price for %s", symbol)
	}
	return price, nil
}

// newTestServer builds a Server over an in-memory store and stub oracle.
func newTestServer(t *testing.T, prices *stubPrices) (*Server, *memStore) {
	t.Helper()

	if prices == nil {
		prices = &stubPrices{prices: map[string]float64{}}
	}

	logger := common.NewSilentLogger()
	store := newMemStore()

	a := &app.App{
		Config:       common.NewDefaultConfig(),
		Logger:       logger,
		PriceClient:  prices,
		StockService: stockrecords.NewService(store, prices, logger),
	}
	return NewServer(a), store
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return bytes.NewBuffer(data)
}

func stockPayload(symbol string, shares int) map[string]interface{} {
	return map[string]interface{}{
		"name":           "NA",
		"symbol":         symbol,
		"purchase price": 100.50,
		"purchase date":  "22-02-2024",
		"shares":         shares,
	}
}
