/*

Amount is the numeric type used for every reserve, USD total and the amp factor of a pool.
Subgraphs serialize these as decimal strings, some feeds send plain JSON numbers, so both are accepted.

*/

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Amount string

// NewAmount formats a float as an Amount.
func NewAmount(v float64) Amount {
	return Amount(strconv.FormatFloat(v, 'f', -1, 64))
}

// Float64 parses the amount. Empty, unparseable, NaN and infinite values are reported as 0.
func (a Amount) Float64() float64 {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// IsZero reports whether the amount parses to 0.
func (a Amount) IsZero() bool {
	return a.Float64() == 0
}

func (a Amount) String() string {
	return string(a)
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or number: %w", err)
	}
	*a = Amount(n.String())
	return nil
}
