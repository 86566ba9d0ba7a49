package view

import (
	"github.com/elys-network/poolboard/internal/analyzer"
	"github.com/elys-network/poolboard/internal/logger"
	"github.com/elys-network/poolboard/internal/pagination"
	"github.com/elys-network/poolboard/internal/sorter"
	"github.com/elys-network/poolboard/internal/types"
	"github.com/elys-network/poolboard/internal/utils"
)

var viewLogger = logger.GetForComponent("pool_list_view")

// shortAddressChars is the number of hex digits kept on each side of a shortened pool address.
const shortAddressChars = 3

// Config holds the construction-time settings of a PoolListView.
type Config struct {
	// PageSize is the number of rows each "show more" adds; <= 0 means 10.
	PageSize int
	// SwapBaseURL prefixes the add-liquidity link of every row; empty disables the links.
	SwapBaseURL string
	// Health ranks pools in the default order; nil uses analyzer.ReserveBalanceHealth.
	Health analyzer.HealthScorer
}

// PoolListView is the sortable, "show more" paginated pool table.
//
// It holds only view state: the pool set it was handed, the sort column and
// direction, and the pagination window. Every Snapshot re-derives metrics,
// order and window from that state. A PoolListView is owned by a single
// caller and is not safe for concurrent use.
type PoolListView struct {
	cfg       Config
	pools     *types.PoolSet
	sort      types.SortState
	paginator *pagination.Paginator
}

// New creates an empty view in the default ranking.
func New(cfg Config) *PoolListView {
	if cfg.Health == nil {
		cfg.Health = analyzer.ReserveBalanceHealth{}
	}
	p := pagination.New(cfg.PageSize)
	cfg.PageSize = p.PageSize()

	return &PoolListView{
		cfg:       cfg,
		sort:      types.DefaultSortState(),
		paginator: p,
	}
}

// SetPools hands the view its pool set. A set with a different identity than
// the current one resets the view to page 1; the same set only recomputes the
// page count, so in-place changes keep the reader's place. A nil set means the
// pools are not loaded yet.
func (v *PoolListView) SetPools(set *types.PoolSet) {
	if set != v.pools {
		v.pools = set
		v.paginator.Reset(set.Len())
		viewLogger.Debug().
			Int("pools", set.Len()).
			Int("maxPage", v.paginator.MaxPage()).
			Msg("Pool set changed, pagination reset")
		return
	}
	v.paginator.Resize(set.Len())
}

// Pools returns the pool set currently shown.
func (v *PoolListView) Pools() *types.PoolSet {
	return v.pools
}

// SetPageSize changes the page size; the current page is kept when still valid.
func (v *PoolListView) SetPageSize(pageSize int) {
	v.paginator.SetPageSize(pageSize, v.pools.Len())
	v.cfg.PageSize = v.paginator.PageSize()
}

// SelectSort applies a click on a column header and returns the new sort state.
// Selecting SortNone returns to the default ranking.
func (v *PoolListView) SelectSort(field types.SortField) types.SortState {
	if !field.Valid() {
		viewLogger.Warn().Int("field", int(field)).Msg("Ignoring invalid sort field")
		return v.sort
	}
	v.sort = v.sort.Select(field)
	return v.sort
}

// SortState returns the current sort column and direction.
func (v *PoolListView) SortState() types.SortState {
	return v.sort
}

// ShowMore grows the window by one page. It returns false, changing nothing,
// once the last page is shown.
func (v *PoolListView) ShowMore() bool {
	// The page count follows in-place edits of the set made since the last call.
	v.paginator.Resize(v.pools.Len())
	return v.paginator.Advance()
}

// Snapshot runs the pipeline (metrics, sort, window) over the current state.
func (v *PoolListView) Snapshot() types.ListSnapshot {
	v.paginator.Resize(v.pools.Len())

	ordered := sorter.SortPools(v.pools, v.sort, v.cfg.Health)
	visible := ordered[:v.paginator.Window(len(ordered))]

	rows := make([]types.PoolRow, 0, len(visible))
	for _, address := range visible {
		pool := v.pools.Get(address)
		if pool == nil {
			continue
		}
		rows = append(rows, v.buildRow(address, pool, len(rows)))
	}

	return types.ListSnapshot{
		Rows:           rows,
		Total:          v.pools.Len(),
		SortField:      v.sort.Field,
		SortDescending: v.sort.Descending,
		CurrentPage:    v.paginator.CurrentPage(),
		MaxPage:        v.paginator.MaxPage(),
		PageSize:       v.paginator.PageSize(),
		CanShowMore:    v.paginator.CanAdvance(),
		Loaded:         v.pools != nil,
	}
}

func (v *PoolListView) buildRow(address string, pool *types.Pool, index int) types.PoolRow {
	metrics := analyzer.DerivePoolMetrics(pool, v.cfg.Health)

	row := types.PoolRow{
		Address:         address,
		Pool:            pool,
		Metrics:         metrics,
		ShortID:         utils.ShortenAddress(pool.ID, shortAddressChars),
		Share0Text:      "-",
		Share1Text:      "-",
		LiquidityText:   utils.FormatUSD(pool.ReserveUSD.Float64()),
		VolumeText:      utils.FormatUSD(pool.VolumeUSD.Float64()),
		FeesText:        utils.FormatUSD(pool.FeeUSD.Float64()),
		AmpText:         utils.FormatNumber(metrics.AmpDisplay, false),
		YieldText:       utils.FormatFixed(metrics.AnnualizedFeeYield, 2) + "%",
		AddLiquidityURL: utils.AddLiquidityURL(v.cfg.SwapBaseURL, pool.Token0.ID, pool.Token1.ID, pool.ID),
		OddRow:          (index+1)%2 != 0,
	}
	if metrics.ShareKnown {
		row.Share0Text = utils.ToPrecision(metrics.Share0, 2) + "%"
		row.Share1Text = utils.ToPrecision(metrics.Share1, 2) + "%"
	}
	return row
}
