// Package interfaces defines service contracts for stockfolio
package interfaces

import (
	"context"

	"github.com/mattgrove/stockfolio/internal/models"
)

// StorageManager coordinates storage backends.
type StorageManager interface {
	StockStore() StockStore

	// Lifecycle
	Close() error
}

// StockStore persists stock position records in a document collection.
// Get and FindBySymbol return (nil, nil) when no record matches.
type StockStore interface {
	// Insert persists a new position, assigning a fresh unique id.
	// The assigned id is returned and set on the passed position.
	Insert(ctx context.Context, stock *models.StockPosition) (string, error)

	Get(ctx context.Context, id string) (*models.StockPosition, error)

	List(ctx context.Context) ([]*models.StockPosition, error)

	// Replace overwrites every stored field of the position with the given id.
	Replace(ctx context.Context, stock *models.StockPosition) error

	// Delete removes the position if present. Deleting an absent id is not
	// an error.
	Delete(ctx context.Context, id string) error

	FindBySymbol(ctx context.Context, symbol string) (*models.StockPosition, error)
}
