package analytics

import (
	"sort"

	"order-analytics/internal/models"
)

// AnalyzePurchaseAffinity classifies every order line as a first or repeat
// purchase and counts product occurrences in each context, sorted
// descending by first-purchase count.
//
// Classification is line-level: lines are ordered by (email, date placed)
// with a stable sort, and only the single earliest line of each customer
// counts as a first purchase. This is deliberately not the same policy as
// the order-level, date-based classification in AggregateOrders; the two
// can disagree for same-day multi-order customers and are kept distinct on
// purpose.
func AnalyzePurchaseAffinity(lines []models.OrderLine) []models.ProductAffinity {
	sorted := make([]models.OrderLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Email != sorted[j].Email {
			return sorted[i].Email < sorted[j].Email
		}
		return sorted[i].DatePlaced.Before(sorted[j].DatePlaced)
	})

	type counts struct {
		first  int
		repeat int
	}
	bySKU := make(map[string]*counts)
	skus := make([]string, 0)

	seenEmail := make(map[string]struct{})
	for _, l := range sorted {
		c, ok := bySKU[l.SKU]
		if !ok {
			c = &counts{}
			bySKU[l.SKU] = c
			skus = append(skus, l.SKU)
		}

		if _, ok := seenEmail[l.Email]; !ok {
			seenEmail[l.Email] = struct{}{}
			c.first++
		} else {
			c.repeat++
		}
	}

	affinity := make([]models.ProductAffinity, 0, len(skus))
	for _, sku := range skus {
		c := bySKU[sku]
		affinity = append(affinity, models.ProductAffinity{
			SKU:                 sku,
			FirstPurchaseCount:  c.first,
			RepeatPurchaseCount: c.repeat,
			RepeatToFirstRatio:  models.NewRatio(float64(c.repeat), float64(c.first)),
		})
	}

	sort.SliceStable(affinity, func(i, j int) bool {
		if affinity[i].FirstPurchaseCount != affinity[j].FirstPurchaseCount {
			return affinity[i].FirstPurchaseCount > affinity[j].FirstPurchaseCount
		}
		return affinity[i].SKU < affinity[j].SKU
	})

	return affinity
}
