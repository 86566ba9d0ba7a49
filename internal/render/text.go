package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/elys-network/poolboard/internal/types"
)

// TextRenderer writes the pool table as tab-aligned plain text.
type TextRenderer struct {
	MinWidth int
	Padding  int
}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{MinWidth: 4, Padding: 2}
}

func (r *TextRenderer) Render(w io.Writer, snap types.ListSnapshot) error {
	if !snap.Loaded {
		if _, err := fmt.Fprintln(w, "Loading pools..."); err != nil {
			return fmt.Errorf("failed to write loading state: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, r.MinWidth, 0, r.Padding, ' ', 0)

	header := make([]string, 0, len(columns)+1)
	header = append(header, "")
	for _, c := range columns {
		label := c.Label
		if arrow := sortArrow(c, snap); arrow != "" {
			label += " " + arrow
		}
		header = append(header, label)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("failed to write table header: %w", err)
	}

	for _, row := range snap.Rows {
		mark := ""
		if row.Metrics.IsRecommended {
			mark = RecommendedMark
		}
		cells := []string{
			mark,
			pairLabel(row) + " " + row.ShortID,
			ratioLabel(row),
			row.LiquidityText,
			row.VolumeText,
			row.FeesText,
			row.AmpText,
			row.YieldText,
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("failed to write row %s: %w", row.Address, err)
		}
	}

	if len(snap.Rows) == 0 {
		if _, err := fmt.Fprintln(tw, "\tNo pools"); err != nil {
			return fmt.Errorf("failed to write empty table: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	footer := fmt.Sprintf("page %d/%d (%d of %d pools)", snap.CurrentPage, snap.MaxPage, len(snap.Rows), snap.Total)
	if snap.CanShowMore {
		footer += ", more available"
	}
	if _, err := fmt.Fprintln(w, footer); err != nil {
		return fmt.Errorf("failed to write footer: %w", err)
	}

	renderLogger.Debug().Int("rows", len(snap.Rows)).Msg("Rendered text table")
	return nil
}
