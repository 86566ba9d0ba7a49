/*
This file contains the number formatting used by the pool table: abbreviated USD amounts,
significant-digit rounding and fixed-point percentages. Rounding goes through decimal so the
displayed digits match what a user would round by hand rather than binary float artefacts.
*/

package utils

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	// abbreviateAbove is the magnitude above which amounts are shown as 1.23b etc.
	abbreviateAbove = 500_000_000
	// tinyBelow is the smallest amount shown with digits.
	tinyBelow = 0.0001
)

var abbreviations = []struct {
	unit   float64
	suffix string
}{
	{1e12, "t"},
	{1e9, "b"},
	{1e6, "m"},
	{1e3, "k"},
}

// FormatUSD formats a dollar amount for a table cell.
func FormatUSD(v float64) string {
	return FormatNumber(v, true)
}

// FormatNumber formats an amount for a table cell, as a dollar amount when usd is set.
//
//	0            -> $0
//	0 < v < 1e-4 -> < $0.0001
//	v < 0.1      -> $0.0123        (4 decimals)
//	v <= 1000    -> $12.34         (2 decimals)
//	v <= 5e8     -> $123,457       (no decimals)
//	v > 5e8      -> $1.23b         (abbreviated)
//
// Non-finite input is treated as 0.
func FormatNumber(v float64, usd bool) string {
	prefix := ""
	if usd {
		prefix = "$"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return prefix + "0"
	}
	abs := math.Abs(v)
	if abs > abbreviateAbove {
		return prefix + Abbreviate(v)
	}
	if v > 0 && v < tinyBelow {
		if usd {
			return "< $0.0001"
		}
		return "< 0.0001"
	}

	d := decimal.NewFromFloat(v)
	if abs > 1000 {
		return signed(prefix, d.Round(0), 0)
	}
	if !usd {
		return d.Round(4).String()
	}
	if abs < 0.1 {
		return signed(prefix, d, 4)
	}
	return signed(prefix, d, 2)
}

// Abbreviate renders v with a k/m/b/t suffix and at most two decimals, e.g. 1234567 -> 1.23m.
func Abbreviate(v float64) string {
	abs := math.Abs(v)
	for _, a := range abbreviations {
		if abs >= a.unit {
			return decimal.NewFromFloat(v).Div(decimal.NewFromFloat(a.unit)).Round(2).String() + a.suffix
		}
	}
	return decimal.NewFromFloat(v).Round(2).String()
}

// ToPrecision rounds v to p significant digits, e.g. ToPrecision(45.678, 2) = "46",
// ToPrecision(5.4321, 2) = "5.4". Unlike exponent notation, large values keep
// all their integer digits (ToPrecision(1234, 2) = "1200").
func ToPrecision(v float64, p int) string {
	if p < 1 {
		p = 1
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if v == 0 {
		return decimal.Zero.StringFixed(int32(p - 1))
	}

	exp := int(math.Floor(math.Log10(math.Abs(v))))
	places := p - 1 - exp
	rounded := decimal.NewFromFloat(v).Round(int32(places))

	// Rounding up can gain a digit (9.96 -> 10.0); drop one decimal to keep p digits.
	if rounded.Abs().GreaterThanOrEqual(decimal.New(1, int32(exp+1))) && places > 0 {
		places--
		rounded = rounded.Round(int32(places))
	}
	if places < 0 {
		return rounded.StringFixed(0)
	}
	return rounded.StringFixed(int32(places))
}

// FormatFixed renders v with exactly places decimals; non-finite input renders as 0.
func FormatFixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero.StringFixed(places)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// signed formats d with a fixed number of decimals, thousands separators and
// the prefix placed after the sign (-$12.00).
func signed(prefix string, d decimal.Decimal, places int32) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	rounded := d.Round(places)
	out := humanize.BigComma(rounded.Truncate(0).BigInt())
	if places > 0 {
		_, frac, _ := strings.Cut(rounded.StringFixed(places), ".")
		out += "." + frac
	}
	return sign + prefix + out
}
