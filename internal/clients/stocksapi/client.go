// Package stocksapi provides an HTTP client for the stock records service
package stocksapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mattgrove/stockfolio/internal/common"
	"github.com/mattgrove/stockfolio/internal/interfaces"
	"github.com/mattgrove/stockfolio/internal/models"
)

const DefaultTimeout = 30 * time.Second

// Client implements the StocksClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new stock records service client
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stocks service error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a GET request and decodes the JSON response
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("path", path).Msg("Stocks service request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// ListStocks retrieves all stock positions.
func (c *Client) ListStocks(ctx context.Context) ([]*models.StockPosition, error) {
	var stocks []*models.StockPosition
	if err := c.get(ctx, "/stocks", &stocks); err != nil {
		return nil, err
	}
	return stocks, nil
}

// GetStockValue retrieves the live valuation of one position.
func (c *Client) GetStockValue(ctx context.Context, id string) (*models.Valuation, error) {
	var v models.Valuation
	if err := c.get(ctx, "/stock-value/"+url.PathEscape(id), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Ensure Client implements StocksClient
var _ interfaces.StocksClient = (*Client)(nil)
