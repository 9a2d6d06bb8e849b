// Package analytics derives the profitability result tables from a
// normalized order-line table. Every function is pure: input rows are never
// mutated and repeated runs over the same table yield identical results.
package analytics

import "order-analytics/internal/models"

// firstLineOfOrder reports, per line, whether it is the first line of its
// order in input row order. The flat shipping fee belongs to exactly these
// lines; every aggregator that touches revenue or profit shares this one
// allocation so order-, product- and month-level totals cannot disagree.
func firstLineOfOrder(lines []models.OrderLine) []bool {
	seen := make(map[string]struct{}, len(lines))
	first := make([]bool, len(lines))
	for i, l := range lines {
		if _, ok := seen[l.OrderID]; !ok {
			seen[l.OrderID] = struct{}{}
			first[i] = true
		}
	}
	return first
}
