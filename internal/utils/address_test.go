package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortenAddress(t *testing.T) {
	// EIP-55 checksum of the lowercase input below.
	const lower = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	const checksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	got, ok := ChecksumAddress(lower)
	assert.True(t, ok)
	assert.Equal(t, checksummed, got)

	assert.Equal(t, "0x5aA...Aed", ShortenAddress(lower, 3))
	assert.Equal(t, "0x5aAe...eAed", ShortenAddress(checksummed, 4))

	t.Run("not an address is returned unchanged", func(t *testing.T) {
		assert.Equal(t, "pool-1", ShortenAddress("pool-1", 3))
		_, ok := ChecksumAddress("pool-1")
		assert.False(t, ok)
	})
}

func TestAddLiquidityURL(t *testing.T) {
	assert.Equal(t, "https://dmm.exchange/#/add/t0/t1/p", AddLiquidityURL("https://dmm.exchange/#/", "t0", "t1", "p"))
	assert.Equal(t, "https://dmm.exchange/add/t0/t1/p", AddLiquidityURL("https://dmm.exchange", "t0", "t1", "p"))
	assert.Empty(t, AddLiquidityURL("", "t0", "t1", "p"))
}
