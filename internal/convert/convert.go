// Package convert implements the linear USD-denominated exchange arithmetic
// and the amount-input rules shared by the CLI and the TUI.
package convert

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tokenconv/tokenconv/internal/catalog"
)

// Precision is the number of decimal places conversion results are rounded to.
const Precision = 6

// precisionMultiplier is 10^Precision, used for rounding.
const precisionMultiplier = 1e6

// amountPattern accepts digits with at most one decimal point. An empty
// string also matches; callers treat it as amount 0.
var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// ValidAmount reports whether s is an acceptable amount input.
// "12.34" is valid, "12.34.5" is not.
func ValidAmount(s string) bool {
	return amountPattern.MatchString(s)
}

// ParseAmount parses a validated amount string. Empty or bare "." inputs
// parse as 0.
func ParseAmount(s string) float64 {
	if s == "" || s == "." {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Rate returns the linear exchange rate from → to: from.Price / to.Price.
func Rate(from, to catalog.Token) float64 {
	return from.Price / to.Price
}

// Convert computes amount × from.Price / to.Price rounded to Precision
// decimal places. A zero-price divisor produces a non-finite value, which
// callers render as "0" via Format.
func Convert(amount float64, from, to catalog.Token) float64 {
	v := amount * from.Price / to.Price
	if !isFinite(v) {
		return v
	}
	return math.Round(v*precisionMultiplier) / precisionMultiplier
}

// Format renders a converted amount with Precision decimal places.
// Non-finite values render as "0".
func Format(v float64) string {
	if !isFinite(v) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', Precision, 64)
}

// FormatTrimmed renders a converted amount with trailing zeros removed,
// keeping at least one integer digit. Used where compact display matters.
func FormatTrimmed(v float64) string {
	s := Format(v)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
