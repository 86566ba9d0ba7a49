/*

This is a custom type for the tokens that make up a pool, as reported by the pool subgraph.

*/

package types

type Token struct {
	ID     string `json:"id"`     // e.g., "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
	Symbol string `json:"symbol"` // e.g., "USDC"
}
