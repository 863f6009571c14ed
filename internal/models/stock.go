// Package models defines the data structures used across stockfolio
package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the fixed DD-MM-YYYY format used for purchase dates and
// the portfolio-value date.
const DateLayout = "02-01-2006"

// DefaultName is the placeholder stored when a position is created without a name.
const DefaultName = "NA"

// StockPosition is a single purchased stock holding.
// The JSON field names, including the space-separated keys, are the wire
// contract consumed by the capital gains service and external clients.
type StockPosition struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	PurchasePrice float64 `json:"purchase price"`
	PurchaseDate  string  `json:"purchase date"`
	Shares        int     `json:"shares"`
}

// StockRequest is the inbound create/update payload. Pointer fields
// distinguish an absent key from a zero value so required-field checks
// happen at the boundary rather than inside handler bodies.
type StockRequest struct {
	ID            *string  `json:"id,omitempty"`
	Name          *string  `json:"name,omitempty"`
	Symbol        *string  `json:"symbol,omitempty"`
	PurchasePrice *float64 `json:"purchase price,omitempty"`
	PurchaseDate  *string  `json:"purchase date,omitempty"`
	Shares        *int     `json:"shares,omitempty"`
}

// Valuation is the current market value of a position. It is computed fresh
// from a live price lookup on every request and never persisted.
// The "ticker" key carries the unit price; downstream callers depend on
// that name.
type Valuation struct {
	Symbol     string  `json:"symbol"`
	Ticker     float64 `json:"ticker"`
	StockValue float64 `json:"stock value"`
}

// PortfolioValue is the aggregate value of all positions at a point in time.
type PortfolioValue struct {
	Date  string  `json:"date"`
	Total float64 `json:"portfolio value"`
}

// CapitalGains is the aggregate unrealized gain over a filtered position set.
type CapitalGains struct {
	CapitalGains float64 `json:"capital gains"`
}

// IsValidPurchaseDate reports whether the string is a well-formed DD-MM-YYYY
// calendar date (e.g. "18-06-2024").
func IsValidPurchaseDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Round2 rounds a monetary value to 2 fractional digits.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FieldString returns the string-cast value of a position field by its wire
// name, or the empty string for unknown fields. Used for exact-match list
// filtering.
func (p *StockPosition) FieldString(key string) string {
	switch key {
	case "id":
		return p.ID
	case "name":
		return p.Name
	case "symbol":
		return p.Symbol
	case "purchase price":
		return strconv.FormatFloat(p.PurchasePrice, 'f', -1, 64)
	case "purchase date":
		return p.PurchaseDate
	case "shares":
		return strconv.Itoa(p.Shares)
	default:
		return ""
	}
}
