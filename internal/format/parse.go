package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parsing errors returned by the inverse functions.
var (
	// ErrPlaceholder is returned when asked to parse the missing-value token.
	ErrPlaceholder = errors.New("value is the missing-data placeholder")

	// ErrNotNumeric is returned when a cell does not contain a parseable number.
	ErrNotNumeric = errors.New("value is not numeric")
)

// ParseCurrency is the inverse of Currency: it strips the dollar symbol and
// grouping separators and recovers the value. Because Currency rounds to
// whole units, the recovered value matches the original to the nearest unit.
//
// Design decision: We parse through shopspring/decimal rather than
// strconv.ParseFloat so the strip-and-divide arithmetic is exact; float
// round-off here would undermine the round-trip checks this function exists
// to serve.
func ParseCurrency(s string) (float64, error) {
	if s == Placeholder {
		return 0, ErrPlaceholder
	}

	t := strings.TrimSpace(s)
	neg := strings.HasPrefix(t, "-")
	t = strings.TrimPrefix(t, "-")
	if !strings.HasPrefix(t, "$") {
		return 0, fmt.Errorf("%w: %q has no currency symbol", ErrNotNumeric, s)
	}
	t = strings.TrimPrefix(t, "$")
	t = strings.ReplaceAll(t, ",", "")

	d, err := decimal.NewFromString(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	if neg {
		d = d.Neg()
	}
	return d.InexactFloat64(), nil
}

// ParsePercentage is the inverse of Percentage: "19.2%" -> 0.192.
// Percentage keeps one fractional digit, so the recovered fraction matches
// the original to the nearest 0.1%.
func ParsePercentage(s string) (float64, error) {
	if s == Placeholder {
		return 0, ErrPlaceholder
	}

	t := strings.TrimSpace(s)
	if !strings.HasSuffix(t, "%") {
		return 0, fmt.Errorf("%w: %q has no percent sign", ErrNotNumeric, s)
	}
	t = strings.TrimSuffix(t, "%")

	d, err := decimal.NewFromString(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return d.Div(decimal.NewFromInt(100)).InexactFloat64(), nil
}
