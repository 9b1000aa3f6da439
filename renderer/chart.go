package renderer

import (
	"fmt"
	"strings"

	"github.com/okatov/salebook"
)

// chartWidth is the length of the longest bar, in cells.
const chartWidth = 40

// barChart draws per-day totals as horizontal bars scaled to the largest
// day. Totals are decimal; scaling through float is fine for a picture.
func barChart(entries []salebook.DailyTotal) string {
	max := 0.0
	for _, e := range entries {
		if v := e.Total.InexactFloat64(); v > max {
			max = v
		}
	}

	var b strings.Builder
	for _, e := range entries {
		v := e.Total.InexactFloat64()
		cells := 0
		if max > 0 && v > 0 {
			cells = int(v / max * chartWidth)
			if cells == 0 {
				cells = 1 // a non-zero day always shows
			}
		}
		fmt.Fprintf(&b, "%s %s %s\n", e.Label(), strings.Repeat("█", cells), e.Total.String())
	}
	return b.String()
}
