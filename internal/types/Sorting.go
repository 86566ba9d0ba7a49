/*

This file contains the sortable columns of the pool table and the sort state of a view.

*/

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSortField = errors.New("unknown sort field")

type SortField int

const (
	SortNone            SortField = -1
	SortLiquidity       SortField = 0
	SortVolume          SortField = 1
	SortFees            SortField = 2
	SortAnnualizedYield SortField = 3
)

// SortFields lists the explicit (column) sort fields in column order.
var SortFields = []SortField{SortLiquidity, SortVolume, SortFees, SortAnnualizedYield}

func (f SortField) String() string {
	switch f {
	case SortNone:
		return "none"
	case SortLiquidity:
		return "liquidity"
	case SortVolume:
		return "volume"
	case SortFees:
		return "fees"
	case SortAnnualizedYield:
		return "yield"
	default:
		return fmt.Sprintf("SortField(%d)", int(f))
	}
}

// Label is the column header shown for the field.
func (f SortField) Label() string {
	switch f {
	case SortLiquidity:
		return "Liquidity"
	case SortVolume:
		return "Volume"
	case SortFees:
		return "Fee (24h)"
	case SortAnnualizedYield:
		return "1y F/L"
	default:
		return ""
	}
}

// Valid reports whether f is SortNone or one of SortFields.
func (f SortField) Valid() bool {
	return f >= SortNone && f <= SortAnnualizedYield
}

// ParseSortField maps a name to a SortField. Names are case-insensitive.
func ParseSortField(name string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "default":
		return SortNone, nil
	case "liquidity", "liq", "reserveusd":
		return SortLiquidity, nil
	case "volume", "vol", "volumeusd":
		return SortVolume, nil
	case "fees", "fee", "feeusd":
		return SortFees, nil
	case "yield", "apy", "one_year_fl", "oneyearfl", "1y":
		return SortAnnualizedYield, nil
	}
	return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortField, name)
}

func (f SortField) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *SortField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseSortField(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// SortState is the sort column and direction of a view. Descending=true means descending.
type SortState struct {
	Field      SortField `json:"field"`
	Descending bool      `json:"descending"`
}

// DefaultSortState is the state of a fresh view: default ranking, descending.
func DefaultSortState() SortState {
	return SortState{Field: SortNone, Descending: true}
}

// Select applies a click on a column header: re-selecting the current field
// flips the direction, a different field starts descending.
func (s SortState) Select(field SortField) SortState {
	if field == s.Field {
		return SortState{Field: field, Descending: !s.Descending}
	}
	return SortState{Field: field, Descending: true}
}
