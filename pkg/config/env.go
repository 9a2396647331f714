package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lip-protocol/lip-coordinator/pkg/logger"
)

const (
	// DefaultRPCURL is the default RPC endpoint (Sepolia testnet)
	DefaultRPCURL = "https://ethereum-sepolia-rpc.publicnode.com"

	// DefaultChainID is the chain the deployed contracts live on (Sepolia)
	DefaultChainID = 11155111

	// SepoliaIntentManagerAddress is the deployed IntentManager contract
	SepoliaIntentManagerAddress = "0xE514254c1EBD1B55A5C4A981ff2ef2B7AeC43525"

	// SepoliaChunkExecutorAddress is the deployed ChunkExecutor contract
	SepoliaChunkExecutorAddress = "0xE19dA85545Ac7eAc44Fe356D76CbFdBaCa3819fd"

	// DefaultRefreshInterval defines the default cache refresh interval in seconds
	DefaultRefreshInterval = 30

	// DefaultRefreshConcurrency defines the default window of parallel intent reads
	DefaultRefreshConcurrency = 10

	// DefaultConfirmationTimeout defines the confirmation watch bound in seconds
	DefaultConfirmationTimeout = 300

	// DefaultMetricsPort defines the default port for the health and metrics server
	DefaultMetricsPort = "8080"

	// DefaultCircuitBreakerEnabled defines whether the circuit breaker is enabled
	DefaultCircuitBreakerEnabled = true

	// DefaultCircuitBreakerThreshold defines the number of failures before the circuit breaker trips
	DefaultCircuitBreakerThreshold = 5

	// DefaultCircuitBreakerWindow defines the time window for the circuit breaker in minutes
	DefaultCircuitBreakerWindow = 5

	// DefaultCircuitBreakerReset defines the reset timeout for the circuit breaker in minutes
	DefaultCircuitBreakerReset = 15
)

// GetEnvRPCURL returns the RPC endpoint from environment variables
func GetEnvRPCURL() (string, error) {
	rpcURL := os.Getenv("RPC_URL")
	if rpcURL == "" {
		return DefaultRPCURL, nil
	}
	return rpcURL, nil
}

// GetEnvChainID returns the chain id from environment variables
func GetEnvChainID() (int64, error) {
	chainID := os.Getenv("CHAIN_ID")
	if chainID == "" {
		return DefaultChainID, nil
	}

	id, err := strconv.ParseInt(chainID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid CHAIN_ID value: %s, must be an integer", chainID)
	}
	if id <= 0 {
		return 0, fmt.Errorf("CHAIN_ID must be greater than 0")
	}
	return id, nil
}

// GetEnvIntentManagerAddress returns the IntentManager contract address from environment variables
func GetEnvIntentManagerAddress() (string, error) {
	address := os.Getenv("INTENT_MANAGER_ADDRESS")
	if address == "" {
		return SepoliaIntentManagerAddress, nil
	}
	return address, nil
}

// GetEnvChunkExecutorAddress returns the ChunkExecutor contract address from environment variables
func GetEnvChunkExecutorAddress() (string, error) {
	address := os.Getenv("CHUNK_EXECUTOR_ADDRESS")
	if address == "" {
		return SepoliaChunkExecutorAddress, nil
	}
	return address, nil
}

// GetEnvRefreshInterval returns the cache refresh interval in seconds from environment variables
func GetEnvRefreshInterval() (time.Duration, error) {
	refreshInterval := os.Getenv("REFRESH_INTERVAL")
	if refreshInterval == "" {
		return time.Duration(DefaultRefreshInterval) * time.Second, nil
	}

	interval, err := strconv.Atoi(refreshInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid REFRESH_INTERVAL value: %s, must be an integer", refreshInterval)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("REFRESH_INTERVAL must be greater than 0")
	}
	return time.Duration(interval) * time.Second, nil
}

// GetEnvRefreshConcurrency returns the refresh read window size from environment variables
func GetEnvRefreshConcurrency() (int, error) {
	refreshConcurrency := os.Getenv("REFRESH_CONCURRENCY")
	if refreshConcurrency == "" {
		return DefaultRefreshConcurrency, nil
	}

	concurrency, err := strconv.Atoi(refreshConcurrency)
	if err != nil {
		return 0, fmt.Errorf("invalid REFRESH_CONCURRENCY value: %s, must be an integer", refreshConcurrency)
	}
	if concurrency <= 0 {
		return 0, fmt.Errorf("REFRESH_CONCURRENCY must be greater than 0")
	}
	return concurrency, nil
}

// GetEnvConfirmationTimeout returns the confirmation watch bound in seconds from environment variables
func GetEnvConfirmationTimeout() (time.Duration, error) {
	confirmationTimeout := os.Getenv("CONFIRMATION_TIMEOUT")
	if confirmationTimeout == "" {
		return time.Duration(DefaultConfirmationTimeout) * time.Second, nil
	}

	timeout, err := strconv.Atoi(confirmationTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid CONFIRMATION_TIMEOUT value: %s, must be an integer", confirmationTimeout)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("CONFIRMATION_TIMEOUT must be greater than 0")
	}
	return time.Duration(timeout) * time.Second, nil
}

// GetEnvMetricsPort returns the metrics server port from environment variables
func GetEnvMetricsPort() (string, error) {
	metricsPort := os.Getenv("METRICS_PORT")
	if metricsPort == "" {
		return DefaultMetricsPort, nil
	}

	// Validate port format
	if _, err := strconv.Atoi(metricsPort); err != nil {
		return "", fmt.Errorf("invalid METRICS_PORT value: %s, must be a valid integer", metricsPort)
	}
	return metricsPort, nil
}

// GetEnvCircuitBreakerEnabled returns whether the circuit breaker is enabled from environment variables
func GetEnvCircuitBreakerEnabled() (bool, error) {
	enabled := os.Getenv("CIRCUIT_BREAKER_ENABLED")
	if enabled == "" {
		return DefaultCircuitBreakerEnabled, nil
	}

	value, err := strconv.ParseBool(enabled)
	if err != nil {
		return false, fmt.Errorf("invalid CIRCUIT_BREAKER_ENABLED value: %s, must be true or false", enabled)
	}
	return value, nil
}

// GetEnvCircuitBreakerThreshold returns the circuit breaker failure threshold from environment variables
func GetEnvCircuitBreakerThreshold() (int, error) {
	threshold := os.Getenv("CIRCUIT_BREAKER_THRESHOLD")
	if threshold == "" {
		return DefaultCircuitBreakerThreshold, nil
	}

	value, err := strconv.Atoi(threshold)
	if err != nil {
		return 0, fmt.Errorf("invalid CIRCUIT_BREAKER_THRESHOLD value: %s, must be an integer", threshold)
	}
	if value <= 0 {
		return 0, fmt.Errorf("CIRCUIT_BREAKER_THRESHOLD must be greater than 0")
	}
	return value, nil
}

// GetEnvCircuitBreakerWindow returns the circuit breaker window duration from environment variables
func GetEnvCircuitBreakerWindow() (time.Duration, error) {
	window := os.Getenv("CIRCUIT_BREAKER_WINDOW")
	if window == "" {
		return time.Duration(DefaultCircuitBreakerWindow) * time.Minute, nil
	}

	value, err := strconv.Atoi(window)
	if err != nil {
		return 0, fmt.Errorf("invalid CIRCUIT_BREAKER_WINDOW value: %s, must be an integer", window)
	}
	if value <= 0 {
		return 0, fmt.Errorf("CIRCUIT_BREAKER_WINDOW must be greater than 0")
	}
	return time.Duration(value) * time.Minute, nil
}

// GetEnvCircuitBreakerReset returns the circuit breaker reset timeout from environment variables
func GetEnvCircuitBreakerReset() (time.Duration, error) {
	reset := os.Getenv("CIRCUIT_BREAKER_RESET")
	if reset == "" {
		return time.Duration(DefaultCircuitBreakerReset) * time.Minute, nil
	}

	value, err := strconv.Atoi(reset)
	if err != nil {
		return 0, fmt.Errorf("invalid CIRCUIT_BREAKER_RESET value: %s, must be an integer", reset)
	}
	if value <= 0 {
		return 0, fmt.Errorf("CIRCUIT_BREAKER_RESET must be greater than 0")
	}
	return time.Duration(value) * time.Minute, nil
}

// GetEnvLogLevel returns the log level from environment variables
func GetEnvLogLevel() (logger.Level, error) {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return logger.InfoLevel, nil
	}

	switch level {
	case "debug":
		return logger.DebugLevel, nil
	case "info":
		return logger.InfoLevel, nil
	case "notice":
		return logger.NoticeLevel, nil
	case "error":
		return logger.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL value: %s, must be debug, info, notice or error", level)
	}
}

// GetEnvLogColoring returns whether log coloring is enabled from environment variables
func GetEnvLogColoring() (bool, error) {
	coloring := os.Getenv("LOG_COLORING")
	if coloring == "" {
		return true, nil
	}

	value, err := strconv.ParseBool(coloring)
	if err != nil {
		return false, fmt.Errorf("invalid LOG_COLORING value: %s, must be true or false", coloring)
	}
	return value, nil
}
