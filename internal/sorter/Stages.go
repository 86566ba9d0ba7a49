/*

This file contains the comparator stages of the default pool ranking and the per-column sort functions.

The default ranking is an ordered list of stages. Each stage returns -1, 0 or 1 and
a later stage is consulted only when every earlier stage returned 0.

*/

package sorter

import (
	"github.com/elys-network/poolboard/internal/analyzer"
	"github.com/elys-network/poolboard/internal/types"
)

// Candidate is a pool entry being ordered, with the values the comparators need
// computed once up front.
type Candidate struct {
	Address string
	Pool    *types.Pool
	Health  float64
}

// Stage compares two candidates: negative if a ranks before b, positive if after, 0 for a tie.
type Stage func(a, b Candidate) int

// DefaultStages is the ranking used when no column is selected.
var DefaultStages = []Stage{MissingLast, UnamplifiedFirst, HealthDescending}

// MissingLast puts absent pool entries after present ones.
func MissingLast(a, b Candidate) int {
	switch {
	case a.Pool == nil && b.Pool == nil:
		return 0
	case a.Pool == nil:
		return 1
	case b.Pool == nil:
		return -1
	}
	return 0
}

// UnamplifiedFirst puts pools with amp == 10000 before amplified ones.
func UnamplifiedFirst(a, b Candidate) int {
	ua, ub := analyzer.IsUnamplified(a.Pool), analyzer.IsUnamplified(b.Pool)
	switch {
	case ua == ub:
		return 0
	case ua:
		return -1
	default:
		return 1
	}
}

// HealthDescending puts the healthier pool first.
func HealthDescending(a, b Candidate) int {
	switch {
	case a.Health > b.Health:
		return -1
	case a.Health < b.Health:
		return 1
	}
	return 0
}

// Chain runs stages in order and returns the first non-zero result.
func Chain(stages ...Stage) Stage {
	return func(a, b Candidate) int {
		for _, stage := range stages {
			if c := stage(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// fieldValues extracts the compared number of each sortable column.
var fieldValues = map[types.SortField]func(p *types.Pool) float64{
	types.SortLiquidity: func(p *types.Pool) float64 {
		return p.ReserveUSD.Float64()
	},
	types.SortVolume: func(p *types.Pool) float64 {
		return p.VolumeUSD.Float64()
	},
	types.SortFees: func(p *types.Pool) float64 {
		return p.FeeUSD.Float64()
	},
	types.SortAnnualizedYield: func(p *types.Pool) float64 {
		return analyzer.PoolFeeYield(p)
	},
}

// fieldValue returns the value a pool is sorted by for field. It reports false
// for SortNone and unknown fields; a missing pool has value 0.
func fieldValue(field types.SortField, pool *types.Pool) (float64, bool) {
	value, ok := fieldValues[field]
	if !ok {
		return 0, false
	}
	if pool == nil {
		return 0, true
	}
	return value(pool), true
}

// sortFuncs holds the less function of every sortable column. desc selects
// descending order.
var sortFuncs = func() map[types.SortField]func(a, b Candidate, desc bool) bool {
	funcs := make(map[types.SortField]func(a, b Candidate, desc bool) bool, len(fieldValues))
	for field := range fieldValues {
		field := field
		funcs[field] = func(a, b Candidate, desc bool) bool {
			va, _ := fieldValue(field, a.Pool)
			vb, _ := fieldValue(field, b.Pool)
			if desc {
				return va > vb
			}
			return va < vb
		}
	}
	return funcs
}()
