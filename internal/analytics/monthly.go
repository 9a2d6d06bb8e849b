package analytics

import (
	"sort"
	"time"

	"order-analytics/internal/models"
)

// AggregateMonthly collapses order lines into one record per calendar month
// of the placed date, sorted ascending. Fee allocation mirrors
// AggregateProducts: first-of-order lines only. CumulativeProfit is the
// running sum of profit in month order, so it is recomputed from scratch
// here and is meaningless for any other ordering.
func AggregateMonthly(lines []models.OrderLine, shippingFee float64) []models.MonthlyProfit {
	first := firstLineOfOrder(lines)
	byMonth := make(map[time.Time]*models.MonthlyProfit)

	for i, l := range lines {
		month := time.Date(l.DatePlaced.Year(), l.DatePlaced.Month(), 1, 0, 0, 0, 0, time.UTC)
		m, ok := byMonth[month]
		if !ok {
			m = &models.MonthlyProfit{Month: month}
			byMonth[month] = m
		}

		revenue := float64(l.Qty) * l.UnitPrice
		profit := (l.UnitPrice - l.UnitCost) * float64(l.Qty)
		if first[i] {
			revenue += shippingFee
			profit += shippingFee
		}

		m.Revenue += revenue
		m.Profit += profit
	}

	months := make([]models.MonthlyProfit, 0, len(byMonth))
	for _, m := range byMonth {
		months = append(months, *m)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month.Before(months[j].Month)
	})

	var running float64
	for i := range months {
		running += months[i].Profit
		months[i].CumulativeProfit = running
	}

	return months
}
