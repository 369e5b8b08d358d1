package format

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is rendered wherever a metric is missing or not a number.
// Renderers must never receive a raw NaN string from this package.
const Placeholder = "—"

// printer formats grouped numbers for the en-US locale.
// message.Printer is safe for concurrent use, so a single package-level
// instance serves both renderers.
var printer = message.NewPrinter(language.AmericanEnglish)

// finite reports whether v is a real, renderable number.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Currency renders a value as a whole-unit US dollar amount with thousands
// grouping, e.g. 1234.56 -> "$1,235". Negative values place the sign before
// the currency symbol: -1234 -> "-$1,234". Non-finite values render as the
// placeholder.
func Currency(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	s := printer.Sprintf("$%d", int64(math.Round(math.Abs(v))))
	if v < 0 {
		return "-" + s
	}
	return s
}

// Percentage renders a 0-1 decimal fraction as a percentage with exactly one
// fractional digit, e.g. 0.192 -> "19.2%". Non-finite values render as the
// placeholder.
//
// Callers must know their field's unit convention: projection rate series
// arrive already scaled to 0-100 and belong to RawPercentage instead.
func Percentage(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	return fmt.Sprintf("%.1f%%", v*100)
}

// RawPercentage renders an already-scaled 0-100 value as a percentage with
// one fractional digit, e.g. 19.2 -> "19.2%". Non-finite values render as
// the placeholder.
func RawPercentage(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	return fmt.Sprintf("%.1f%%", v)
}

// Int renders an integer with en-US thousands grouping, e.g. 1500 -> "1,500".
func Int(v int) string {
	return printer.Sprintf("%d", v)
}

// Compact renders a number with the fewest digits that represent it exactly,
// e.g. 3 -> "3" and 2.5 -> "2.5". Used for bed and bath counts where a
// fixed fractional digit count would render "3.00". Non-finite values render
// as the placeholder.
func Compact(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Number renders a fixed-point number with the given fractional digit count.
// Non-finite values render as the placeholder.
func Number(v float64, decimals int) string {
	if !finite(v) {
		return Placeholder
	}
	if decimals < 0 {
		decimals = 2
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
