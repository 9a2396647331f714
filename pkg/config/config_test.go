package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lip-protocol/lip-coordinator/pkg/logger"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultRPCURL, cfg.RPCURL)
	assert.Equal(t, int64(DefaultChainID), cfg.ChainID)
	assert.Equal(t, SepoliaIntentManagerAddress, cfg.IntentManagerAddress)
	assert.Equal(t, SepoliaChunkExecutorAddress, cfg.ChunkExecutorAddress)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, DefaultRefreshConcurrency, cfg.RefreshConcurrency)
	assert.Equal(t, 300*time.Second, cfg.ConfirmationTimeout)
	assert.Equal(t, DefaultMetricsPort, cfg.MetricsPort)
	assert.True(t, cfg.CircuitBreaker.Enabled)
	assert.Equal(t, logger.InfoLevel, cfg.LoggerConfig.Level)
}

func TestOverrides(t *testing.T) {
	t.Setenv("RPC_URL", "http://localhost:8545")
	t.Setenv("CHAIN_ID", "31337")
	t.Setenv("REFRESH_INTERVAL", "5")
	t.Setenv("REFRESH_CONCURRENCY", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
	assert.Equal(t, int64(31337), cfg.ChainID)
	assert.Equal(t, 5*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 3, cfg.RefreshConcurrency)
	assert.Equal(t, logger.DebugLevel, cfg.LoggerConfig.Level)
}

func TestInvalidValues(t *testing.T) {
	t.Run("chain id", func(t *testing.T) {
		t.Setenv("CHAIN_ID", "not-a-number")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("negative refresh interval", func(t *testing.T) {
		t.Setenv("REFRESH_INTERVAL", "-1")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad contract address", func(t *testing.T) {
		t.Setenv("INTENT_MANAGER_ADDRESS", "0x123")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
