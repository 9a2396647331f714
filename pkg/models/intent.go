package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// PoolKey identifies a trading pair and fee tier on the pool manager
type PoolKey struct {
	Currency0   common.Address `json:"currency0"`
	Currency1   common.Address `json:"currency1"`
	Fee         uint32         `json:"fee"`
	TickSpacing int32          `json:"tick_spacing"`
	Hooks       common.Address `json:"hooks"`
}

// Intent represents one liquidity-provider commitment to add liquidity gradually.
// All fields except ExecutedLiquidity and Active are immutable after creation.
type Intent struct {
	ID                uint64         `json:"id"`
	Owner             common.Address `json:"owner"`
	Pool              PoolKey        `json:"pool"`
	TickLower         int32          `json:"tick_lower"`
	TickUpper         int32          `json:"tick_upper"`
	TotalLiquidity    *big.Int       `json:"total_liquidity"`
	ExecutedLiquidity *big.Int       `json:"executed_liquidity"`
	MaxChunk          *big.Int       `json:"max_chunk"`
	Active            bool           `json:"active"`
}

// Remaining returns the liquidity still to be executed
func (i Intent) Remaining() *big.Int {
	if i.TotalLiquidity == nil || i.ExecutedLiquidity == nil {
		return big.NewInt(0)
	}
	remaining := new(big.Int).Sub(i.TotalLiquidity, i.ExecutedLiquidity)
	if remaining.Sign() < 0 {
		return big.NewInt(0)
	}
	return remaining
}

// ProgressRatio returns executed/total as a float in [0, 1]
func (i Intent) ProgressRatio() float64 {
	if i.TotalLiquidity == nil || i.TotalLiquidity.Sign() == 0 {
		return 0
	}
	executed := new(big.Float).SetInt(i.ExecutedLiquidity)
	total := new(big.Float).SetInt(i.TotalLiquidity)
	ratio, _ := new(big.Float).Quo(executed, total).Float64()
	if ratio > 1 {
		return 1
	}
	return ratio
}

// IsComplete reports whether the full target liquidity has been executed
func (i Intent) IsComplete() bool {
	if i.TotalLiquidity == nil || i.ExecutedLiquidity == nil {
		return false
	}
	return i.ExecutedLiquidity.Cmp(i.TotalLiquidity) >= 0
}

// IsExecutable reports whether another chunk can still be executed against the intent
func (i Intent) IsExecutable() bool {
	return i.Active && !i.IsComplete()
}
