package models

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentRemaining(t *testing.T) {
	intent := Intent{
		TotalLiquidity:    big.NewInt(1000),
		ExecutedLiquidity: big.NewInt(250),
	}
	assert.Equal(t, big.NewInt(750), intent.Remaining())

	// Fully executed intent has nothing remaining
	intent.ExecutedLiquidity = big.NewInt(1000)
	assert.Equal(t, big.NewInt(0), intent.Remaining())

	// Executed above total must clamp to zero rather than go negative
	intent.ExecutedLiquidity = big.NewInt(1200)
	assert.Equal(t, big.NewInt(0), intent.Remaining())

	// Nil fields are treated as zero
	assert.Equal(t, big.NewInt(0), Intent{}.Remaining())
}

func TestIntentProgressRatio(t *testing.T) {
	intent := Intent{
		TotalLiquidity:    big.NewInt(1000),
		ExecutedLiquidity: big.NewInt(0),
	}
	assert.Equal(t, 0.0, intent.ProgressRatio())

	intent.ExecutedLiquidity = big.NewInt(250)
	assert.InDelta(t, 0.25, intent.ProgressRatio(), 1e-9)

	intent.ExecutedLiquidity = big.NewInt(1000)
	assert.Equal(t, 1.0, intent.ProgressRatio())

	// Ratio is capped at 1 even if executed exceeds total
	intent.ExecutedLiquidity = big.NewInt(2000)
	assert.Equal(t, 1.0, intent.ProgressRatio())

	// Zero total never divides
	intent.TotalLiquidity = big.NewInt(0)
	assert.Equal(t, 0.0, intent.ProgressRatio())
}

func TestIntentIsComplete(t *testing.T) {
	intent := Intent{
		TotalLiquidity:    big.NewInt(1000),
		ExecutedLiquidity: big.NewInt(999),
	}
	assert.False(t, intent.IsComplete())

	intent.ExecutedLiquidity = big.NewInt(1000)
	assert.True(t, intent.IsComplete())
}

func TestIntentIsExecutable(t *testing.T) {
	intent := Intent{
		TotalLiquidity:    big.NewInt(1000),
		ExecutedLiquidity: big.NewInt(500),
		Active:            true,
	}
	assert.True(t, intent.IsExecutable())

	// Cancelled intents are never executable
	intent.Active = false
	assert.False(t, intent.IsExecutable())

	// Completed intents are never executable
	intent.Active = true
	intent.ExecutedLiquidity = big.NewInt(1000)
	assert.False(t, intent.IsExecutable())
}

func TestActionStatusTerminal(t *testing.T) {
	assert.False(t, StatusIdle.Terminal())
	assert.False(t, StatusSubmitting.Terminal())
	assert.False(t, StatusPendingConfirmation.Terminal())
	assert.True(t, StatusConfirmed.Terminal())
	assert.True(t, StatusFailed.Terminal())
}
