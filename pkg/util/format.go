// Package util holds display formatting helpers shared by the CLI report
// and the dashboard API.
package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMarketCap renders a market cap in trillions, billions or millions,
// e.g. 2.5e12 -> "$2.50T". Zero or negative values render as "N/A".
func FormatMarketCap(cap float64) string {
	switch {
	case cap <= 0:
		return "N/A"
	case cap >= 1e12:
		return fmt.Sprintf("$%.2fT", cap/1e12)
	case cap >= 1e9:
		return fmt.Sprintf("$%.2fB", cap/1e9)
	case cap >= 1e6:
		return fmt.Sprintf("$%.2fM", cap/1e6)
	default:
		return fmt.Sprintf("$%.0f", cap)
	}
}

// FormatPercent renders a ratio as a percentage, e.g. 0.235 -> "23.50%".
// NaN renders as "N/A".
func FormatPercent(ratio float64) string {
	if math.IsNaN(ratio) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", ratio*100)
}

// FormatRatio renders a plain ratio with two decimals, "N/A" for NaN or zero.
func FormatRatio(v float64) string {
	if math.IsNaN(v) || v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatPrice renders a price with two decimals and a dollar sign.
func FormatPrice(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", v)
}

// FormatNumber groups an integer with commas, e.g. 48210500 -> "48,210,500".
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
