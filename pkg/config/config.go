package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"

	"github.com/lip-protocol/lip-coordinator/pkg/logger"
)

// Config holds the configuration for the coordinator service
type Config struct {
	RPCURL               string
	ChainID              int64
	IntentManagerAddress string
	ChunkExecutorAddress string
	PrivateKey           string
	RefreshInterval      time.Duration
	RefreshConcurrency   int
	ConfirmationTimeout  time.Duration
	MetricsPort          string
	CircuitBreaker       CircuitBreakerConfig
	LoggerConfig         LoggerConfig
}

// CircuitBreakerConfig holds circuit breaker configuration
type CircuitBreakerConfig struct {
	Enabled        bool
	Threshold      int
	WindowDuration time.Duration
	ResetTimeout   time.Duration
}

// LoggerConfig holds the configuration for logging
type LoggerConfig struct {
	Level    logger.Level
	Coloring bool
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	rpcURL, err := GetEnvRPCURL()
	if err != nil {
		return nil, err
	}

	chainID, err := GetEnvChainID()
	if err != nil {
		return nil, err
	}

	intentManagerAddress, err := GetEnvIntentManagerAddress()
	if err != nil {
		return nil, err
	}

	chunkExecutorAddress, err := GetEnvChunkExecutorAddress()
	if err != nil {
		return nil, err
	}

	refreshInterval, err := GetEnvRefreshInterval()
	if err != nil {
		return nil, err
	}

	refreshConcurrency, err := GetEnvRefreshConcurrency()
	if err != nil {
		return nil, err
	}

	confirmationTimeout, err := GetEnvConfirmationTimeout()
	if err != nil {
		return nil, err
	}

	metricsPort, err := GetEnvMetricsPort()
	if err != nil {
		return nil, err
	}

	cbEnabled, err := GetEnvCircuitBreakerEnabled()
	if err != nil {
		return nil, err
	}

	cbThreshold, err := GetEnvCircuitBreakerThreshold()
	if err != nil {
		return nil, err
	}

	cbWindow, err := GetEnvCircuitBreakerWindow()
	if err != nil {
		return nil, err
	}

	cbReset, err := GetEnvCircuitBreakerReset()
	if err != nil {
		return nil, err
	}

	logLevel, err := GetEnvLogLevel()
	if err != nil {
		return nil, err
	}

	logColoring, err := GetEnvLogColoring()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		RPCURL:               rpcURL,
		ChainID:              chainID,
		IntentManagerAddress: intentManagerAddress,
		ChunkExecutorAddress: chunkExecutorAddress,
		PrivateKey:           os.Getenv("PRIVATE_KEY"),
		RefreshInterval:      refreshInterval,
		RefreshConcurrency:   refreshConcurrency,
		ConfirmationTimeout:  confirmationTimeout,
		MetricsPort:          metricsPort,
		CircuitBreaker: CircuitBreakerConfig{
			Enabled:        cbEnabled,
			Threshold:      cbThreshold,
			WindowDuration: cbWindow,
			ResetTimeout:   cbReset,
		},
		LoggerConfig: LoggerConfig{
			Level:    logLevel,
			Coloring: logColoring,
		},
	}

	// Validate required environment variables
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.RPCURL == "" {
		return fmt.Errorf("RPC_URL environment variable is required")
	}
	if !common.IsHexAddress(cfg.IntentManagerAddress) {
		return fmt.Errorf("INTENT_MANAGER_ADDRESS is not a valid address: %s", cfg.IntentManagerAddress)
	}
	if !common.IsHexAddress(cfg.ChunkExecutorAddress) {
		return fmt.Errorf("CHUNK_EXECUTOR_ADDRESS is not a valid address: %s", cfg.ChunkExecutorAddress)
	}
	if cfg.ChainID <= 0 {
		return fmt.Errorf("CHAIN_ID must be positive")
	}
	return nil
}
