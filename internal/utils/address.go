package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChecksumAddress returns the EIP-55 form of a hex address and whether the input was a valid address.
func ChecksumAddress(address string) (string, bool) {
	if !common.IsHexAddress(address) {
		return address, false
	}
	return common.HexToAddress(address).Hex(), true
}

// ShortenAddress renders a pool address as 0x + chars leading and chars trailing
// hex digits of its checksummed form, e.g. 0xAbC...dEf. Input that is not a hex
// address is returned unchanged.
func ShortenAddress(address string, chars int) string {
	checksummed, ok := ChecksumAddress(address)
	if !ok || chars <= 0 || 2*chars >= len(checksummed)-2 {
		return address
	}
	return checksummed[:chars+2] + "..." + checksummed[len(checksummed)-chars:]
}

// AddLiquidityURL builds the link to the swap app's add-liquidity page of a pool.
// An empty base disables the link.
func AddLiquidityURL(base, token0, token1, pool string) string {
	if strings.TrimSpace(base) == "" {
		return ""
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + "add/" + token0 + "/" + token1 + "/" + pool
}
