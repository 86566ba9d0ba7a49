package sorter

import (
	"testing"

	"github.com/elys-network/poolboard/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestStages(t *testing.T) {
	flat := Candidate{Address: "flat", Pool: &types.Pool{Amp: "10000"}, Health: 0.1}
	amped := Candidate{Address: "amped", Pool: &types.Pool{Amp: "20000"}, Health: 0.9}
	missing := Candidate{Address: "missing"}

	t.Run("MissingLast", func(t *testing.T) {
		assert.Equal(t, -1, MissingLast(flat, missing))
		assert.Equal(t, 1, MissingLast(missing, flat))
		assert.Equal(t, 0, MissingLast(missing, missing))
		assert.Equal(t, 0, MissingLast(flat, amped))
	})

	t.Run("UnamplifiedFirst", func(t *testing.T) {
		assert.Equal(t, -1, UnamplifiedFirst(flat, amped))
		assert.Equal(t, 1, UnamplifiedFirst(amped, flat))
		assert.Equal(t, 0, UnamplifiedFirst(flat, flat))
	})

	t.Run("HealthDescending", func(t *testing.T) {
		assert.Equal(t, 1, HealthDescending(flat, amped))
		assert.Equal(t, -1, HealthDescending(amped, flat))
		assert.Equal(t, 0, HealthDescending(amped, amped))
	})

	t.Run("Chain stops at the first decisive stage", func(t *testing.T) {
		compare := Chain(DefaultStages...)
		assert.Equal(t, -1, compare(flat, amped), "amp priority wins over health")
		assert.Equal(t, 1, compare(missing, flat))
		assert.Equal(t, 0, Chain()(flat, amped))
	})
}

func TestSortValueByColumn(t *testing.T) {
	pool := &types.Pool{ReserveUSD: "500", VolumeUSD: "7", FeeUSD: "20"}

	v, ok := fieldValue(types.SortAnnualizedYield, pool)
	assert.True(t, ok)
	assert.InDelta(t, 1460, v, 1e-9)

	v, ok = fieldValue(types.SortVolume, pool)
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	_, ok = fieldValue(types.SortNone, pool)
	assert.False(t, ok)

	v, ok = fieldValue(types.SortFees, nil)
	assert.True(t, ok)
	assert.Zero(t, v)
}
