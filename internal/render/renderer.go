/*
This file contains the renderer interface shared by the text and HTML consumers of the pool table.
Renderers only read a ListSnapshot; they never reorder or filter rows.
*/

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/elys-network/poolboard/internal/logger"
	"github.com/elys-network/poolboard/internal/types"
)

var renderLogger = logger.GetForComponent("renderer")

const (
	ArrowAscending  = "▲"
	ArrowDescending = "▼"
	RecommendedMark = "★"
)

// Renderer draws a pool table snapshot.
type Renderer interface {
	Render(w io.Writer, snap types.ListSnapshot) error
}

// New returns the renderer for a format name ("text" or "html").
func New(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text", "txt":
		return NewTextRenderer(), nil
	case "html":
		return NewHTMLRenderer("")
	default:
		return nil, fmt.Errorf("unknown render format %q", format)
	}
}

// column is a header cell; sortable columns carry the field they sort by.
type column struct {
	Label    string
	Field    types.SortField
	Sortable bool
}

// columns is the table header: every sortable field in column order, with AMP
// shown before the yield column.
var columns = func() []column {
	cols := []column{{Label: "Pool"}, {Label: "Ratio"}}
	for _, field := range types.SortFields {
		if field == types.SortAnnualizedYield {
			cols = append(cols, column{Label: "AMP"})
		}
		cols = append(cols, column{Label: field.Label(), Field: field, Sortable: true})
	}
	return cols
}()

// sortArrow returns the arrow shown next to the active sort column, or "".
func sortArrow(c column, snap types.ListSnapshot) string {
	if !c.Sortable || snap.SortField != c.Field {
		return ""
	}
	if snap.SortDescending {
		return ArrowDescending
	}
	return ArrowAscending
}

func pairLabel(row types.PoolRow) string {
	if row.Pool == nil {
		return row.ShortID
	}
	return symbolOr(row.Pool.Token0) + "/" + symbolOr(row.Pool.Token1)
}

func ratioLabel(row types.PoolRow) string {
	if !row.Metrics.ShareKnown || row.Pool == nil {
		return "-"
	}
	return fmt.Sprintf("%s %s - %s %s",
		row.Share0Text, symbolOr(row.Pool.Token0),
		row.Share1Text, symbolOr(row.Pool.Token1))
}

func symbolOr(t types.Token) string {
	if t.Symbol != "" {
		return t.Symbol
	}
	if t.ID != "" {
		return t.ID
	}
	return "?"
}
