/*

This is a custom type for pools which contains all the state needed for listing, ranking and paginating pools.

*/

package types

// UnamplifiedAmp is the raw amp of a pool with no amplification (displayed as 1.0).
const UnamplifiedAmp = 10000

type Pool struct {
	ID         string `json:"id"`         // Pool contract address
	Token0     Token  `json:"token0"`     // First constituent asset
	Token1     Token  `json:"token1"`     // Second constituent asset
	Reserve0   Amount `json:"reserve0"`   // Real reserve of token0
	Reserve1   Amount `json:"reserve1"`   // Real reserve of token1
	VReserve0  Amount `json:"vReserve0"`  // Virtual (amplified) reserve of token0
	VReserve1  Amount `json:"vReserve1"`  // Virtual (amplified) reserve of token1
	ReserveUSD Amount `json:"reserveUSD"` // Liquidity in USD
	VolumeUSD  Amount `json:"volumeUSD"`  // Trailing 24h volume in USD
	FeeUSD     Amount `json:"feeUSD"`     // Trailing 24h fees in USD
	Amp        Amount `json:"amp"`        // Amplification scaled by 10000
}

// PoolSet is the pool mapping handed to a list view, keyed by pool address.
// A nil entry is an absent pool.
//
// The identity of a PoolSet is its pointer: handing a view a different *PoolSet
// starts the listing over, mutating the map of the current one does not.
type PoolSet struct {
	Pools map[string]*Pool
}

// NewPoolSet wraps a pool mapping. A nil map is replaced with an empty one.
func NewPoolSet(pools map[string]*Pool) *PoolSet {
	if pools == nil {
		pools = make(map[string]*Pool)
	}
	return &PoolSet{Pools: pools}
}

// Len returns the number of keys, absent entries included.
func (s *PoolSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Pools)
}

// Get returns the pool stored under address, nil when absent.
func (s *PoolSet) Get(address string) *Pool {
	if s == nil {
		return nil
	}
	return s.Pools[address]
}

// PoolMetrics are the values derived from a single pool record; they are never stored.
type PoolMetrics struct {
	AmpDisplay         float64 `json:"amp_display"`
	IsRecommended      bool    `json:"is_recommended"`
	Share0             float64 `json:"share0"`
	Share1             float64 `json:"share1"`
	ShareKnown         bool    `json:"share_known"`
	AnnualizedFeeYield float64 `json:"annualized_fee_yield"`
	HealthFactor       float64 `json:"health_factor"`
}

// PoolRow is one rendered line of the pool table.
type PoolRow struct {
	Address         string      `json:"address"`
	Pool            *Pool       `json:"pool"`
	Metrics         PoolMetrics `json:"metrics"`
	ShortID         string      `json:"short_id"`
	Share0Text      string      `json:"share0_text"`
	Share1Text      string      `json:"share1_text"`
	LiquidityText   string      `json:"liquidity_text"`
	VolumeText      string      `json:"volume_text"`
	FeesText        string      `json:"fees_text"`
	AmpText         string      `json:"amp_text"`
	YieldText       string      `json:"yield_text"`
	AddLiquidityURL string      `json:"add_liquidity_url,omitempty"`
	OddRow          bool        `json:"odd_row"`
}

// ListSnapshot is everything a renderer needs to draw the table at one point in time.
type ListSnapshot struct {
	Rows           []PoolRow `json:"rows"`
	Total          int       `json:"total"`
	SortField      SortField `json:"sort_field"`
	SortDescending bool      `json:"sort_descending"`
	CurrentPage    int       `json:"current_page"`
	MaxPage        int       `json:"max_page"`
	PageSize       int       `json:"page_size"`
	CanShowMore    bool      `json:"can_show_more"`
	// Loaded is false until the view has been handed a pool set; an empty set is loaded.
	Loaded bool `json:"loaded"`
}
