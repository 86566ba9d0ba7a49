package analyzer

import (
	"testing"

	"github.com/elys-network/poolboard/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestHealthFactor(t *testing.T) {
	tests := []struct {
		name string
		pool *types.Pool
		want float64
	}{
		{
			name: "reserves move together",
			pool: &types.Pool{Reserve0: "10", VReserve0: "20", Reserve1: "5", VReserve1: "10"},
			want: 1,
		},
		{
			name: "one side drained",
			pool: &types.Pool{Reserve0: "1", VReserve0: "20", Reserve1: "10", VReserve1: "20"},
			want: 0.1,
		},
		{
			name: "virtual reserves not reported",
			pool: &types.Pool{Reserve0: "10", Reserve1: "5"},
			want: 1,
		},
		{
			name: "empty real reserve",
			pool: &types.Pool{Reserve0: "0", VReserve0: "20", Reserve1: "10", VReserve1: "20"},
			want: 0,
		},
		{
			name: "missing pool",
			pool: nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HealthFactor(tt.pool), 1e-9)
			assert.InDelta(t, tt.want, ReserveBalanceHealth{}.Score(tt.pool), 1e-9)
		})
	}
}
