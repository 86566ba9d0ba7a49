/*

This file contains the health factor used by the default pool ranking.

*/

package analyzer

import (
	"math"

	"github.com/elys-network/poolboard/internal/types"
)

// HealthScorer scores a pool; higher is healthier. Implementations must not
// return NaN or infinities.
type HealthScorer interface {
	Score(pool *types.Pool) float64
}

// HealthScorerFunc adapts a plain function to HealthScorer.
type HealthScorerFunc func(pool *types.Pool) float64

func (f HealthScorerFunc) Score(pool *types.Pool) float64 {
	return f(pool)
}

// ReserveBalanceHealth is the default scorer.
//
// An amplified pool trades on virtual reserves; as one real reserve drains
// relative to its virtual reserve the pool approaches the edge of its price
// range. The score is min(r0/v0, r1/v1) / max(r0/v0, r1/v1), in [0, 1].
// A pool whose real and virtual reserves move together scores 1.
type ReserveBalanceHealth struct{}

func (ReserveBalanceHealth) Score(pool *types.Pool) float64 {
	return HealthFactor(pool)
}

// HealthFactor computes the ReserveBalanceHealth score. Missing, zero or
// malformed reserves score 0.
func HealthFactor(pool *types.Pool) float64 {
	if pool == nil {
		return 0
	}
	fill0 := fillRatio(pool.Reserve0.Float64(), pool.VReserve0.Float64())
	fill1 := fillRatio(pool.Reserve1.Float64(), pool.VReserve1.Float64())
	if fill0 <= 0 || fill1 <= 0 {
		return 0
	}

	h := math.Min(fill0, fill1) / math.Max(fill0, fill1)
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return h
}

// fillRatio is real/virtual. Subgraphs report vReserve=0 for unamplified pools,
// in which case the real reserve is the virtual one.
func fillRatio(real, virtual float64) float64 {
	if real <= 0 {
		return 0
	}
	if virtual <= 0 {
		return 1
	}
	return real / virtual
}
