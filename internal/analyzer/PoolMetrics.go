/*

This file contains the metric calculator: pure functions that derive the displayed figures of a pool.
None of them fail; zero or malformed inputs produce a defined fallback since a fresh pool legitimately reports zeros.

*/

package analyzer

import (
	"math"

	"github.com/elys-network/poolboard/internal/types"
)

const (
	// AmpScale is the factor the raw amp is stored with.
	AmpScale = 10000.0
	// DaysPerYear annualizes a trailing 24h fee total.
	DaysPerYear = 365
)

// AmpDisplay converts the raw amp to its displayed value (10000 -> 1.0).
func AmpDisplay(pool *types.Pool) float64 {
	if pool == nil {
		return 0
	}
	return pool.Amp.Float64() / AmpScale
}

// IsUnamplified reports whether the raw amp equals 10000.
func IsUnamplified(pool *types.Pool) bool {
	return pool != nil && pool.Amp.Float64() == types.UnamplifiedAmp
}

// IsRecommended flags pools without amplification.
func IsRecommended(pool *types.Pool) bool {
	return AmpDisplay(pool) == 1
}

// ReserveShare returns the share (in percent) of each asset computed from the
// virtual-to-real reserve ratios. If either ratio or their sum is not a finite
// positive number the split is unknown and 50/50 is returned with known=false.
func ReserveShare(pool *types.Pool) (share0, share1 float64, known bool) {
	if pool == nil {
		return 50, 50, false
	}
	ratio0 := safeRatio(pool.VReserve0.Float64(), pool.Reserve0.Float64())
	ratio1 := safeRatio(pool.VReserve1.Float64(), pool.Reserve1.Float64())
	sum := ratio0 + ratio1
	if math.IsNaN(ratio0) || math.IsNaN(ratio1) || !isFinitePositive(sum) {
		return 50, 50, false
	}

	share0 = ratio0 * 100 / sum
	return share0, 100 - share0, true
}

// AnnualizedFeeYield is the trailing 24h fee total annualized as a percentage
// of liquidity. It is 0 whenever the liquidity is 0.
func AnnualizedFeeYield(reserveUSD, feeUSD types.Amount) float64 {
	liquidity := reserveUSD.Float64()
	if liquidity == 0 {
		return 0
	}
	return feeUSD.Float64() * DaysPerYear * 100 / liquidity
}

// PoolFeeYield is AnnualizedFeeYield for a pool record; 0 for a missing pool.
func PoolFeeYield(pool *types.Pool) float64 {
	if pool == nil {
		return 0
	}
	return AnnualizedFeeYield(pool.ReserveUSD, pool.FeeUSD)
}

// DerivePoolMetrics computes every derived metric of a pool. The health factor
// is taken from scorer; a nil scorer leaves it at 0.
func DerivePoolMetrics(pool *types.Pool, scorer HealthScorer) types.PoolMetrics {
	share0, share1, known := ReserveShare(pool)
	metrics := types.PoolMetrics{
		AmpDisplay:         AmpDisplay(pool),
		IsRecommended:      IsRecommended(pool),
		Share0:             share0,
		Share1:             share1,
		ShareKnown:         known,
		AnnualizedFeeYield: PoolFeeYield(pool),
	}
	if scorer != nil && pool != nil {
		metrics.HealthFactor = scorer.Score(pool)
	}
	return metrics
}

// safeRatio returns NaN when the ratio is undefined.
func safeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return math.NaN()
	}
	r := numerator / denominator
	if math.IsInf(r, 0) {
		return math.NaN()
	}
	return r
}

func isFinitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
