package ledger

import (
	"math"
	"strconv"
	"strings"
)

// parseAmount turns grid text into a non-negative amount. Decimal comma and
// decimal point are both accepted. Anything that does not parse, as well as
// NaN, infinities, and negative values, comes back as zero.
func parseAmount(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
