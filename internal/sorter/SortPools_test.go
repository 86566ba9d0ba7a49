package sorter

import (
	"math"
	"testing"

	"github.com/elys-network/poolboard/internal/analyzer"
	"github.com/elys-network/poolboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// healthByID scores pools from a fixed table keyed by pool ID.
func healthByID(scores map[string]float64) analyzer.HealthScorer {
	return analyzer.HealthScorerFunc(func(p *types.Pool) float64 {
		return scores[p.ID]
	})
}

func examplePools() *types.PoolSet {
	return types.NewPoolSet(map[string]*types.Pool{
		"A": {ID: "A", ReserveUSD: "1000", VolumeUSD: "300", FeeUSD: "10", Amp: "10000"},
		"B": {ID: "B", ReserveUSD: "500", VolumeUSD: "900", FeeUSD: "20", Amp: "20000"},
	})
}

func TestSortPools_ExplicitFields(t *testing.T) {
	set := examplePools()

	t.Run("fees descending", func(t *testing.T) {
		got := SortPools(set, types.SortState{Field: types.SortFees, Descending: true}, nil)
		assert.Equal(t, []string{"B", "A"}, got)
	})

	t.Run("fees ascending", func(t *testing.T) {
		got := SortPools(set, types.SortState{Field: types.SortFees, Descending: false}, nil)
		assert.Equal(t, []string{"A", "B"}, got)
	})

	t.Run("liquidity descending", func(t *testing.T) {
		got := SortPools(set, types.SortState{Field: types.SortLiquidity, Descending: true}, nil)
		assert.Equal(t, []string{"A", "B"}, got)
	})

	t.Run("volume descending", func(t *testing.T) {
		got := SortPools(set, types.SortState{Field: types.SortVolume, Descending: true}, nil)
		assert.Equal(t, []string{"B", "A"}, got)
	})

	t.Run("annualized yield descending", func(t *testing.T) {
		// A = 365, B = 1460
		got := SortPools(set, types.SortState{Field: types.SortAnnualizedYield, Descending: true}, nil)
		assert.Equal(t, []string{"B", "A"}, got)
	})
}

func TestSortPools_IdempotentAndReversible(t *testing.T) {
	set := types.NewPoolSet(map[string]*types.Pool{
		"p1": {ID: "p1", ReserveUSD: "10"},
		"p2": {ID: "p2", ReserveUSD: "30"},
		"p3": {ID: "p3", ReserveUSD: "20"},
		"p4": {ID: "p4", ReserveUSD: "40"},
		"p5": {ID: "p5", ReserveUSD: "not-a-number"},
	})

	for _, field := range types.SortFields {
		t.Run(field.String(), func(t *testing.T) {
			state := types.SortState{Field: field, Descending: true}
			first := SortPools(set, state, nil)
			second := SortPools(set, state, nil)
			assert.Equal(t, first, second, "sorting twice must give the same order")
		})
	}

	desc := SortPools(set, types.SortState{Field: types.SortLiquidity, Descending: true}, nil)
	asc := SortPools(set, types.SortState{Field: types.SortLiquidity, Descending: true}.Select(types.SortLiquidity), nil)

	assert.Equal(t, []string{"p4", "p2", "p3", "p1", "p5"}, desc)
	reversed := make([]string, len(desc))
	for i, a := range desc {
		reversed[len(desc)-1-i] = a
	}
	assert.Equal(t, reversed, asc, "toggling direction must reverse strictly unequal values")
}

func TestSortPools_TiesKeepAddressOrder(t *testing.T) {
	set := types.NewPoolSet(map[string]*types.Pool{
		"c": {ID: "c", FeeUSD: "5"},
		"a": {ID: "a", FeeUSD: "5"},
		"b": {ID: "b", FeeUSD: "5"},
	})

	for _, desc := range []bool{true, false} {
		got := SortPools(set, types.SortState{Field: types.SortFees, Descending: desc}, nil)
		assert.Equal(t, []string{"a", "b", "c"}, got)
	}
}

func TestSortPools_DefaultRanking(t *testing.T) {
	set := types.NewPoolSet(map[string]*types.Pool{
		"amp-low":   {ID: "amp-low", Amp: "30000"},
		"amp-high":  {ID: "amp-high", Amp: "15000"},
		"flat-low":  {ID: "flat-low", Amp: "10000"},
		"flat-high": {ID: "flat-high", Amp: "10000"},
		"missing":   nil,
	})
	scorer := healthByID(map[string]float64{
		"amp-low":   0.2,
		"amp-high":  0.99,
		"flat-low":  0.1,
		"flat-high": 0.5,
	})

	got := SortPools(set, types.DefaultSortState(), scorer)
	assert.Equal(t, []string{"flat-high", "flat-low", "amp-high", "amp-low", "missing"}, got)

	t.Run("direction does not affect the default ranking", func(t *testing.T) {
		state := types.SortState{Field: types.SortNone, Descending: false}
		assert.Equal(t, got, SortPools(set, state, scorer))
	})

	t.Run("unamplified pools always precede amplified ones", func(t *testing.T) {
		scorer := healthByID(map[string]float64{"amp-low": 1000, "amp-high": 999})
		order := SortPools(set, types.DefaultSortState(), scorer)
		require.Len(t, order, 5)
		assert.ElementsMatch(t, []string{"flat-high", "flat-low"}, order[:2])
	})

	t.Run("equal health keeps address order", func(t *testing.T) {
		order := SortPools(set, types.DefaultSortState(), nil)
		assert.Equal(t, []string{"flat-high", "flat-low", "amp-high", "amp-low", "missing"}, order)
	})
}

func TestSortPools_MissingEntriesLastForExplicitFields(t *testing.T) {
	set := types.NewPoolSet(map[string]*types.Pool{
		"a":    {ID: "a", ReserveUSD: "1"},
		"gone": nil,
		"z":    {ID: "z", ReserveUSD: "2"},
	})

	assert.Equal(t, []string{"z", "a", "gone"}, SortPools(set, types.SortState{Field: types.SortLiquidity, Descending: true}, nil))
	assert.Equal(t, []string{"a", "z", "gone"}, SortPools(set, types.SortState{Field: types.SortLiquidity, Descending: false}, nil))
}

func TestSortPools_EmptyAndNilSets(t *testing.T) {
	assert.Empty(t, SortPools(nil, types.DefaultSortState(), nil))
	assert.Empty(t, SortPools(types.NewPoolSet(nil), types.SortState{Field: types.SortFees}, nil))
}

func TestSortPools_InvalidHealthRanksAsZero(t *testing.T) {
	set := types.NewPoolSet(map[string]*types.Pool{
		"nan":  {ID: "nan", Amp: "20000"},
		"good": {ID: "good", Amp: "20000"},
	})
	scorer := healthByID(map[string]float64{"nan": math.NaN(), "good": 0.3})

	assert.Equal(t, []string{"good", "nan"}, SortPools(set, types.DefaultSortState(), scorer))
}
