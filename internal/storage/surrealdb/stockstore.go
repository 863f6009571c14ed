package surrealdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/mattgrove/stockfolio/internal/common"
	"github.com/mattgrove/stockfolio/internal/interfaces"
	"github.com/mattgrove/stockfolio/internal/models"
)

// stockRecord is the persisted document shape. stock_id duplicates the
// record id as a plain string because SurrealDB's own id field is a
// composite record id that does not map onto the model's string id.
type stockRecord struct {
	StockID       string  `json:"stock_id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
	Shares        int     `json:"shares"`
}

func (r *stockRecord) toModel() *models.StockPosition {
	return &models.StockPosition{
		ID:            r.StockID,
		Name:          r.Name,
		Symbol:        r.Symbol,
		PurchasePrice: r.PurchasePrice,
		PurchaseDate:  r.PurchaseDate,
		Shares:        r.Shares,
	}
}

func recordFromModel(stock *models.StockPosition) *stockRecord {
	return &stockRecord{
		StockID:       stock.ID,
		Name:          stock.Name,
		Symbol:        stock.Symbol,
		PurchasePrice: stock.PurchasePrice,
		PurchaseDate:  stock.PurchaseDate,
		Shares:        stock.Shares,
	}
}

// StockStore implements interfaces.StockStore using SurrealDB.
type StockStore struct {
	db     *surrealdb.DB
	table  string
	logger *common.Logger
}

// NewStockStore creates a new StockStore over the given table.
func NewStockStore(db *surrealdb.DB, table string, logger *common.Logger) *StockStore {
	return &StockStore{db: db, table: table, logger: logger}
}

func (s *StockStore) Insert(ctx context.Context, stock *models.StockPosition) (string, error) {
	if stock.ID == "" {
		stock.ID = fmt.Sprintf("stk_%s", uuid.New().String()[:8])
	}

	sql := "UPSERT $rid CONTENT $stock"
	vars := map[string]any{
		"rid":   surrealmodels.NewRecordID(s.table, stock.ID),
		"stock": recordFromModel(stock),
	}

	if _, err := surrealdb.Query[any](ctx, s.db, sql, vars); err != nil {
		return "", fmt.Errorf("failed to insert stock: %w", err)
	}

	s.logger.Debug().Str("id", stock.ID).Str("symbol", stock.Symbol).Msg("Stock inserted")
	return stock.ID, nil
}

func (s *StockStore) Get(ctx context.Context, id string) (*models.StockPosition, error) {
	record, err := surrealdb.Select[stockRecord](ctx, s.db, surrealmodels.NewRecordID(s.table, id))
	if err != nil {
		if isNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select stock: %w", err)
	}
	if record == nil || record.StockID == "" {
		return nil, nil
	}
	return record.toModel(), nil
}

func (s *StockStore) List(ctx context.Context) ([]*models.StockPosition, error) {
	sql := fmt.Sprintf("SELECT * FROM %s ORDER BY stock_id", s.table)

	results, err := surrealdb.Query[[]stockRecord](ctx, s.db, sql, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	stocks := make([]*models.StockPosition, 0)
	if results != nil && len(*results) > 0 {
		for i := range (*results)[0].Result {
			stocks = append(stocks, (*results)[0].Result[i].toModel())
		}
	}
	return stocks, nil
}

func (s *StockStore) Replace(ctx context.Context, stock *models.StockPosition) error {
	sql := "UPSERT $rid CONTENT $stock"
	vars := map[string]any{
		"rid":   surrealmodels.NewRecordID(s.table, stock.ID),
		"stock": recordFromModel(stock),
	}

	if _, err := surrealdb.Query[any](ctx, s.db, sql, vars); err != nil {
		return fmt.Errorf("failed to replace stock: %w", err)
	}
	return nil
}

func (s *StockStore) Delete(ctx context.Context, id string) error {
	_, err := surrealdb.Delete[stockRecord](ctx, s.db, surrealmodels.NewRecordID(s.table, id))
	if err != nil && !isNotFoundError(err) {
		return fmt.Errorf("failed to delete stock: %w", err)
	}
	return nil
}

func (s *StockStore) FindBySymbol(ctx context.Context, symbol string) (*models.StockPosition, error) {
	sql := fmt.Sprintf("SELECT * FROM %s WHERE symbol = $symbol LIMIT 1", s.table)
	vars := map[string]any{"symbol": symbol}

	results, err := surrealdb.Query[[]stockRecord](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to find stock by symbol: %w", err)
	}

	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, nil
	}
	return (*results)[0].Result[0].toModel(), nil
}

// isNotFoundError reports whether the error indicates a missing record
// rather than a genuine storage failure.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "no record")
}

// Compile-time check
var _ interfaces.StockStore = (*StockStore)(nil)
