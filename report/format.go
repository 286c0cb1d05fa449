package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const ruleWidth = 70

func rule() string {
	return strings.Repeat("=", ruleWidth)
}

// Thousands rounds v to decimals places and groups the integer part with commas.
func Thousands(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)

	intPart, frac, hasFrac := strings.Cut(s, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return humanize.Commaf(v)
	}

	out := humanize.Comma(n)
	if strings.HasPrefix(intPart, "-") && n == 0 {
		out = "-" + out
	}

	if hasFrac {
		out += "." + frac
	}

	return out
}

// Sci formats a volume the way the report prints cubic meters.
func Sci(v float64) string {
	return fmt.Sprintf("%.2e", v)
}
