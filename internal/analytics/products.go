package analytics

import (
	"sort"

	"order-analytics/internal/models"
)

// AggregateProducts collapses order lines into one record per SKU, sorted
// descending by total revenue. The shipping fee is added to the revenue and
// profit of first-of-order lines only, never to every line of a multi-line
// order. Unit price and cost means are unweighted line means. A zero-revenue
// SKU gets an undefined profit margin.
func AggregateProducts(lines []models.OrderLine, shippingFee float64) []models.ProductPerformance {
	type acc struct {
		qty       int
		revenue   float64
		profit    float64
		sumPrice  float64
		sumCost   float64
		lineCount int
	}

	first := firstLineOfOrder(lines)
	bySKU := make(map[string]*acc)
	skus := make([]string, 0)

	for i, l := range lines {
		a, ok := bySKU[l.SKU]
		if !ok {
			a = &acc{}
			bySKU[l.SKU] = a
			skus = append(skus, l.SKU)
		}

		revenue := float64(l.Qty) * l.UnitPrice
		profit := (l.UnitPrice - l.UnitCost) * float64(l.Qty)
		if first[i] {
			revenue += shippingFee
			profit += shippingFee
		}

		a.qty += l.Qty
		a.revenue += revenue
		a.profit += profit
		a.sumPrice += l.UnitPrice
		a.sumCost += l.UnitCost
		a.lineCount++
	}

	products := make([]models.ProductPerformance, 0, len(skus))
	for _, sku := range skus {
		a := bySKU[sku]
		products = append(products, models.ProductPerformance{
			SKU:           sku,
			TotalQty:      a.qty,
			TotalRevenue:  a.revenue,
			TotalProfit:   a.profit,
			MeanUnitPrice: a.sumPrice / float64(a.lineCount),
			MeanUnitCost:  a.sumCost / float64(a.lineCount),
			ProfitMargin:  models.NewRatio(a.profit, a.revenue),
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].TotalRevenue != products[j].TotalRevenue {
			return products[i].TotalRevenue > products[j].TotalRevenue
		}
		return products[i].SKU < products[j].SKU
	})

	return products
}
