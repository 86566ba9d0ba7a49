/*

This file contains the sort engine: it turns a pool set and a sort state into a total order over pool addresses.

*/

package sorter

import (
	"math"
	"sort"

	"github.com/elys-network/poolboard/internal/analyzer"
	"github.com/elys-network/poolboard/internal/logger"
	"github.com/elys-network/poolboard/internal/types"
)

var sorterLogger = logger.GetForComponent("pool_sorter")

// SortPools returns every address of set ordered according to state.
//
// Addresses are first ordered ascending so the result does not depend on map
// iteration order; every later sort is stable over that base order, so pools
// that compare equal keep their address order. Missing entries always come last.
// The scorer is only consulted for the default ranking; nil means all pools
// share the same health.
func SortPools(set *types.PoolSet, state types.SortState, scorer analyzer.HealthScorer) []string {
	candidates := Candidates(set, state.Field == types.SortNone, scorer)

	if state.Field == types.SortNone {
		compare := Chain(DefaultStages...)
		sort.SliceStable(candidates, func(i, j int) bool {
			return compare(candidates[i], candidates[j]) < 0
		})
	} else if less, ok := sortFuncs[state.Field]; ok {
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if c := MissingLast(a, b); c != 0 {
				return c < 0
			}
			if a.Pool == nil {
				return false
			}
			return less(a, b, state.Descending)
		})
	} else {
		sorterLogger.Warn().
			Int("field", int(state.Field)).
			Msg("Unknown sort field, keeping address order")
	}

	addresses := make([]string, len(candidates))
	for i, c := range candidates {
		addresses[i] = c.Address
	}

	sorterLogger.Debug().
		Int("count", len(addresses)).
		Str("field", state.Field.String()).
		Bool("descending", state.Descending).
		Msg("Sorted pools")

	return addresses
}

// Candidates builds the candidates of set in ascending address order. The
// health factor is computed only when withHealth is set and scorer is non-nil.
func Candidates(set *types.PoolSet, withHealth bool, scorer analyzer.HealthScorer) []Candidate {
	if set.Len() == 0 {
		return []Candidate{}
	}

	addresses := make([]string, 0, set.Len())
	for address := range set.Pools {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	candidates := make([]Candidate, len(addresses))
	for i, address := range addresses {
		pool := set.Pools[address]
		c := Candidate{Address: address, Pool: pool}
		if withHealth && scorer != nil && pool != nil {
			c.Health = scorer.Score(pool)
			if math.IsNaN(c.Health) || math.IsInf(c.Health, 0) {
				sorterLogger.Warn().
					Str("pool", address).
					Float64("health", c.Health).
					Msg("Pool has invalid health factor, ranking it as 0")
				c.Health = 0
			}
		}
		candidates[i] = c
	}
	return candidates
}
