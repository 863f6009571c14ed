// Package app wires configuration, storage, clients and services for the
// stockfolio binaries.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/mattgrove/stockfolio/internal/clients/ninja"
	"github.com/mattgrove/stockfolio/internal/clients/stocksapi"
	"github.com/mattgrove/stockfolio/internal/common"
	"github.com/mattgrove/stockfolio/internal/interfaces"
	"github.com/mattgrove/stockfolio/internal/services/capitalgains"
	"github.com/mattgrove/stockfolio/internal/services/stockrecords"
	"github.com/mattgrove/stockfolio/internal/storage/surrealdb"
)

// App holds the initialized dependencies of the stock records service.
type App struct {
	Config       *common.Config
	Logger       *common.Logger
	Storage      interfaces.StorageManager
	PriceClient  interfaces.PriceClient
	StockService interfaces.StockService
	StartupTime  time.Time
}

// resolveConfigPath returns the config file path: explicit argument, then
// the STOCKFOLIO_CONFIG env var, then the development default.
func resolveConfigPath(configPath string) string {
	if configPath == "" {
		configPath = os.Getenv("STOCKFOLIO_CONFIG")
	}
	if configPath == "" {
		configPath = "config/stockfolio.toml"
	}
	return configPath
}

// NewApp initializes the stock records service: config, logger, SurrealDB
// storage, the price oracle client and the stock service.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	config, err := common.LoadConfig(resolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	storageManager, err := surrealdb.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if config.Clients.Ninja.APIKey == "" {
		logger.Warn().Msg("Stock price API key not configured - valuation endpoints will fail upstream")
	}

	priceClient := ninja.NewClient(config.Clients.Ninja.APIKey,
		ninja.WithBaseURL(config.Clients.Ninja.BaseURL),
		ninja.WithLogger(logger),
		ninja.WithRateLimit(config.Clients.Ninja.RateLimit),
		ninja.WithTimeout(config.Clients.Ninja.GetTimeout()),
	)

	stockService := stockrecords.NewService(storageManager.StockStore(), priceClient, logger)

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return &App{
		Config:       config,
		Logger:       logger,
		Storage:      storageManager,
		PriceClient:  priceClient,
		StockService: stockService,
		StartupTime:  startupStart,
	}, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}

// GainsApp holds the initialized dependencies of the capital gains service.
type GainsApp struct {
	Config       *common.Config
	Logger       *common.Logger
	StocksClient interfaces.StocksClient
	GainsService interfaces.CapitalGainsService
	StartupTime  time.Time
}

// NewGainsApp initializes the capital gains service: config, logger, the
// stock records service client and the gains service. No storage of its own.
func NewGainsApp(configPath string) (*GainsApp, error) {
	startupStart := time.Now()

	config, err := common.LoadConfig(resolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	stocksClient := stocksapi.NewClient(config.Gains.StocksBaseURL,
		stocksapi.WithLogger(logger),
	)

	gainsService := capitalgains.NewService(stocksClient, logger)

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("Gains app initialized")

	return &GainsApp{
		Config:       config,
		Logger:       logger,
		StocksClient: stocksClient,
		GainsService: gainsService,
		StartupTime:  startupStart,
	}, nil
}
