// Package stockrecords implements the stock records business logic: CRUD
// over the stock store plus on-demand valuation against the price oracle.
package stockrecords

import (
	"context"
	"fmt"
	"time"

	"github.com/mattgrove/stockfolio/internal/common"
	"github.com/mattgrove/stockfolio/internal/interfaces"
	"github.com/mattgrove/stockfolio/internal/models"
)

// Service implements interfaces.StockService.
type Service struct {
	store  interfaces.StockStore
	prices interfaces.PriceClient
	logger *common.Logger
	now    func() time.Time // injectable clock for testing
}

// NewService creates a new stock records service.
func NewService(store interfaces.StockStore, prices interfaces.PriceClient, logger *common.Logger) *Service {
	return &Service{
		store:  store,
		prices: prices,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates the request, enforces symbol uniqueness and persists a
// new position with a store-assigned id.
//
// The uniqueness check is read-then-write with no unique index, so
// concurrent creates of the same symbol can race. Accepted: requests are
// handled independently and the store offers no transaction here.
func (s *Service) Create(ctx context.Context, req *models.StockRequest) (string, error) {
	stock, err := validateCreate(req)
	if err != nil {
		return "", err
	}

	existing, err := s.store.FindBySymbol(ctx, stock.Symbol)
	if err != nil {
		return "", fmt.Errorf("symbol lookup: %w", err)
	}
	if existing != nil {
		return "", ErrDuplicateSymbol
	}

	id, err := s.store.Insert(ctx, stock)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("id", id).Str("symbol", stock.Symbol).Msg("Stock created")
	return id, nil
}

// validateCreate checks required fields and builds the position to persist.
func validateCreate(req *models.StockRequest) (*models.StockPosition, error) {
	if req.Symbol == nil {
		return nil, invalidField("symbol", "required")
	}
	if req.PurchasePrice == nil {
		return nil, invalidField("purchase price", "required")
	}
	if req.Shares == nil {
		return nil, invalidField("shares", "required")
	}
	if *req.Shares <= 0 {
		return nil, invalidField("shares", "must be positive")
	}
	if req.PurchaseDate == nil {
		return nil, invalidField("purchase date", "required")
	}
	if !models.IsValidPurchaseDate(*req.PurchaseDate) {
		return nil, invalidField("purchase date", "must match DD-MM-YYYY")
	}

	name := models.DefaultName
	if req.Name != nil {
		name = *req.Name
	}

	return &models.StockPosition{
		Name:          name,
		Symbol:        *req.Symbol,
		PurchasePrice: models.Round2(*req.PurchasePrice),
		PurchaseDate:  *req.PurchaseDate,
		Shares:        *req.Shares,
	}, nil
}

// List returns every position matching all supplied string-cast field
// constraints, or all positions when filters is empty.
func (s *Service) List(ctx context.Context, filters map[string]string) ([]*models.StockPosition, error) {
	stocks, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return stocks, nil
	}

	matched := make([]*models.StockPosition, 0)
	for _, stock := range stocks {
		if matchesFilters(stock, filters) {
			matched = append(matched, stock)
		}
	}
	return matched, nil
}

func matchesFilters(stock *models.StockPosition, filters map[string]string) bool {
	for key, want := range filters {
		if stock.FieldString(key) != want {
			return false
		}
	}
	return true
}

// Get returns the position with the given id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*models.StockPosition, error) {
	stock, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, ErrNotFound
	}
	return stock, nil
}

// Update fully replaces the stored fields of the position with the path id.
// Every field must be present in the request; the body id is required but
// the path id wins. Date format is not re-validated on update, matching the
// presence-only contract of the operation.
func (s *Service) Update(ctx context.Context, id string, req *models.StockRequest) (string, error) {
	if req.ID == nil {
		return "", invalidField("id", "required")
	}
	if req.Name == nil {
		return "", invalidField("name", "required")
	}
	if req.Symbol == nil {
		return "", invalidField("symbol", "required")
	}
	if req.PurchasePrice == nil {
		return "", invalidField("purchase price", "required")
	}
	if req.PurchaseDate == nil {
		return "", invalidField("purchase date", "required")
	}
	if req.Shares == nil {
		return "", invalidField("shares", "required")
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", ErrNotFound
	}

	stock := &models.StockPosition{
		ID:            id,
		Name:          *req.Name,
		Symbol:        *req.Symbol,
		PurchasePrice: models.Round2(*req.PurchasePrice),
		PurchaseDate:  *req.PurchaseDate,
		Shares:        *req.Shares,
	}

	if err := s.store.Replace(ctx, stock); err != nil {
		return "", err
	}

	s.logger.Info().Str("id", id).Str("symbol", stock.Symbol).Msg("Stock updated")
	return id, nil
}

// Delete removes the position if present. Deleting an absent id succeeds;
// callers cannot distinguish the two outcomes.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("Stock deleted")
	return nil
}

// Valuation looks up the position and computes its current value from a
// live price lookup. The position value multiplies the unrounded unit price
// by the share count before rounding.
func (s *Service) Valuation(ctx context.Context, id string) (*models.Valuation, error) {
	stock, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := s.prices.GetPrice(ctx, stock.Symbol)
	if err != nil {
		return nil, err
	}

	return &models.Valuation{
		Symbol:     stock.Symbol,
		Ticker:     models.Round2(price),
		StockValue: models.Round2(price * float64(stock.Shares)),
	}, nil
}

// PortfolioValue sums the live valuations of every stored position, one
// sequential oracle call per position. Any single failure aborts the whole
// aggregate; there is no partial result.
func (s *Service) PortfolioValue(ctx context.Context) (*models.PortfolioValue, error) {
	stocks, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, stock := range stocks {
		v, err := s.Valuation(ctx, stock.ID)
		if err != nil {
			return nil, fmt.Errorf("valuation of %s: %w", stock.Symbol, err)
		}
		total += v.StockValue
	}

	return &models.PortfolioValue{
		Date:  s.now().Format(models.DateLayout),
		Total: models.Round2(total),
	}, nil
}

// Ensure Service implements StockService
var _ interfaces.StockService = (*Service)(nil)
