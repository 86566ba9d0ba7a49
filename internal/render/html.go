package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/elys-network/poolboard/internal/types"
)

//go:embed templates/pools.html
var templateFiles embed.FS

var poolsTemplate = template.Must(template.ParseFS(templateFiles, "templates/pools.html"))

// HTMLRenderer renders the pool table as a standalone page. Sortable headers
// and the "Show more pools" button are forms posting to ActionPrefix+"/sort/{field}"
// and ActionPrefix+"/more".
type HTMLRenderer struct {
	ActionPrefix string
	tmpl         *template.Template
}

type htmlHeader struct {
	Label  string
	Arrow  string
	Action string
}

type htmlRow struct {
	Address         string
	ShortID         string
	Pair            string
	Ratio           string
	Liquidity       string
	Volume          string
	Fees            string
	Amp             string
	Yield           string
	AddLiquidityURL template.URL
	Recommended     bool
	OddRow          bool
}

type htmlPage struct {
	Headers     []htmlHeader
	Rows        []htmlRow
	Mark        string
	Loaded      bool
	MoreAction  string
	CanShowMore bool
	CurrentPage int
	MaxPage     int
}

func NewHTMLRenderer(actionPrefix string) (*HTMLRenderer, error) {
	tmpl, err := poolsTemplate.Clone()
	if err != nil {
		return nil, fmt.Errorf("failed to clone pool template: %w", err)
	}
	return &HTMLRenderer{
		ActionPrefix: strings.TrimSuffix(actionPrefix, "/"),
		tmpl:         tmpl,
	}, nil
}

func (r *HTMLRenderer) Render(w io.Writer, snap types.ListSnapshot) error {
	page := htmlPage{
		Headers:     make([]htmlHeader, 0, len(columns)),
		Rows:        make([]htmlRow, 0, len(snap.Rows)),
		Mark:        RecommendedMark,
		Loaded:      snap.Loaded,
		MoreAction:  r.ActionPrefix + "/more",
		CanShowMore: snap.CanShowMore,
		CurrentPage: snap.CurrentPage,
		MaxPage:     snap.MaxPage,
	}

	for _, c := range columns {
		h := htmlHeader{Label: c.Label, Arrow: sortArrow(c, snap)}
		if c.Sortable {
			h.Action = r.ActionPrefix + "/sort/" + c.Field.String()
		}
		page.Headers = append(page.Headers, h)
	}

	for _, row := range snap.Rows {
		page.Rows = append(page.Rows, htmlRow{
			Address:         row.Address,
			ShortID:         row.ShortID,
			Pair:            pairLabel(row),
			Ratio:           ratioLabel(row),
			Liquidity:       row.LiquidityText,
			Volume:          row.VolumeText,
			Fees:            row.FeesText,
			Amp:             row.AmpText,
			Yield:           row.YieldText,
			AddLiquidityURL: safeURL(row.AddLiquidityURL),
			Recommended:     row.Metrics.IsRecommended,
			OddRow:          row.OddRow,
		})
	}

	if err := r.tmpl.ExecuteTemplate(w, "pools", page); err != nil {
		return fmt.Errorf("failed to render pool table: %w", err)
	}

	renderLogger.Debug().Int("rows", len(snap.Rows)).Msg("Rendered HTML table")
	return nil
}

// safeURL passes http(s) links through unescaped; anything else is dropped.
func safeURL(link string) template.URL {
	lower := strings.ToLower(link)
	if strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://") {
		return template.URL(link)
	}
	return ""
}
