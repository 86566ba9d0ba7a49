package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/elys-network/poolboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() types.ListSnapshot {
	return types.ListSnapshot{
		Rows: []types.PoolRow{
			{
				Address: "0xaaa",
				Pool: &types.Pool{
					ID:     "0xaaa",
					Token0: types.Token{ID: "0xt0", Symbol: "ETH"},
					Token1: types.Token{ID: "0xt1", Symbol: "USDC"},
				},
				Metrics:         types.PoolMetrics{IsRecommended: true, ShareKnown: true},
				ShortID:         "0xaaa",
				Share0Text:      "25%",
				Share1Text:      "75%",
				LiquidityText:   "$1,000.00",
				VolumeText:      "$300.00",
				FeesText:        "$10.00",
				AmpText:         "1",
				YieldText:       "365.00%",
				AddLiquidityURL: "https://dmm.exchange/#/add/0xt0/0xt1/0xaaa",
				OddRow:          true,
			},
			{
				Address:       "0xbbb",
				Pool:          &types.Pool{ID: "0xbbb", Token0: types.Token{Symbol: "KNC"}, Token1: types.Token{Symbol: "DAI"}},
				ShortID:       "0xbbb",
				Share0Text:    "-",
				Share1Text:    "-",
				LiquidityText: "$500.00",
				VolumeText:    "$900.00",
				FeesText:      "$20.00",
				AmpText:       "2",
				YieldText:     "1460.00%",
			},
		},
		Total:          3,
		SortField:      types.SortFees,
		SortDescending: true,
		CurrentPage:    1,
		MaxPage:        2,
		PageSize:       2,
		CanShowMore:    true,
		Loaded:         true,
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&buf, sampleSnapshot()))
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "Fee (24h) "+ArrowDescending)
	assert.NotContains(t, lines[0], ArrowAscending)
	assert.Contains(t, lines[1], RecommendedMark)
	assert.Contains(t, lines[1], "ETH/USDC 0xaaa")
	assert.Contains(t, lines[1], "25% ETH - 75% USDC")
	assert.NotContains(t, lines[2], RecommendedMark)
	assert.Contains(t, lines[2], "KNC/DAI")
	assert.Contains(t, lines[3], "page 1/2")
	assert.Contains(t, lines[3], "more available")
}

func TestTextRenderer_AscendingArrowAndNoSort(t *testing.T) {
	snap := sampleSnapshot()
	snap.SortField = types.SortLiquidity
	snap.SortDescending = false

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&buf, snap))
	assert.Contains(t, buf.String(), "Liquidity "+ArrowAscending)

	snap.SortField = types.SortNone
	buf.Reset()
	require.NoError(t, NewTextRenderer().Render(&buf, snap))
	assert.NotContains(t, buf.String(), ArrowAscending)
	assert.NotContains(t, buf.String(), ArrowDescending)
}

func TestHTMLRenderer(t *testing.T) {
	r, err := NewHTMLRenderer("/dashboard/")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleSnapshot()))
	out := buf.String()

	assert.Contains(t, out, `action="/dashboard/sort/fees"`)
	assert.Contains(t, out, `action="/dashboard/sort/liquidity"`)
	assert.Contains(t, out, `action="/dashboard/more"`)
	assert.Contains(t, out, "Fee (24h) "+ArrowDescending)
	assert.Contains(t, out, `href="https://dmm.exchange/#/add/0xt0/0xt1/0xaaa"`)
	assert.Contains(t, out, `class="odd"`)
	assert.Contains(t, out, `class="even"`)
	assert.Contains(t, out, "page 1/2")
	assert.NotContains(t, out, "disabled")
}

func TestHTMLRenderer_LastPageDisablesShowMore(t *testing.T) {
	snap := sampleSnapshot()
	snap.CurrentPage = 2
	snap.CanShowMore = false

	r, err := NewHTMLRenderer("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, snap))
	assert.Contains(t, buf.String(), `class="show-more" disabled`)
}

func TestHTMLRenderer_EscapesContent(t *testing.T) {
	snap := sampleSnapshot()
	snap.Rows[1].Pool.Token0.Symbol = "<script>"
	snap.Rows[1].AddLiquidityURL = "javascript:alert(1)"

	r, err := NewHTMLRenderer("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, snap))
	assert.NotContains(t, buf.String(), "<script>")
	assert.NotContains(t, buf.String(), "javascript:")
}

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		format string
		want   interface{}
	}{
		{"", &TextRenderer{}},
		{"text", &TextRenderer{}},
		{"HTML", &HTMLRenderer{}},
	} {
		t.Run(tc.format, func(t *testing.T) {
			r, err := New(tc.format)
			require.NoError(t, err)
			assert.IsType(t, tc.want, r)
		})
	}

	_, err := New("pdf")
	assert.Error(t, err)
}

func TestRenderers_LoadingAndEmpty(t *testing.T) {
	loading := types.ListSnapshot{CurrentPage: 1, MaxPage: 1}
	empty := types.ListSnapshot{CurrentPage: 1, MaxPage: 1, Loaded: true}

	html, err := NewHTMLRenderer("")
	require.NoError(t, err)

	t.Run("text loading", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTextRenderer().Render(&buf, loading))
		assert.Equal(t, "Loading pools...\n", buf.String())
	})

	t.Run("text empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTextRenderer().Render(&buf, empty))
		assert.Contains(t, buf.String(), "No pools")
		assert.Contains(t, buf.String(), "page 1/1")
	})

	t.Run("html loading", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, html.Render(&buf, loading))
		assert.Contains(t, buf.String(), "Loading pools...")
		assert.NotContains(t, buf.String(), "No pools")
	})

	t.Run("html empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, html.Render(&buf, empty))
		assert.Contains(t, buf.String(), "No pools")
		assert.NotContains(t, buf.String(), "Loading pools...")
	})
}

func TestColumnsFollowSortFields(t *testing.T) {
	var sortable []types.SortField
	labels := make([]string, 0, len(columns))
	for _, c := range columns {
		labels = append(labels, c.Label)
		if c.Sortable {
			sortable = append(sortable, c.Field)
		}
	}
	assert.Equal(t, types.SortFields, sortable)
	assert.Equal(t, []string{"Pool", "Ratio", "Liquidity", "Volume", "Fee (24h)", "AMP", "1y F/L"}, labels)
}
