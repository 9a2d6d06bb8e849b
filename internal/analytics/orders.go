package analytics

import (
	"sort"
	"time"

	"order-analytics/internal/models"
)

const monthKeyLayout = "2006-01"

// AggregateOrders collapses order lines into one record per order. Revenue
// includes the flat shipping fee exactly once per order. Orders come back
// sorted ascending by date placed, each classified First-time or Repeat
// against the earliest order date of its customer. An order dated equal to
// that minimum is First-time, so two same-day first orders from one
// customer are both First-time.
func AggregateOrders(lines []models.OrderLine, shippingFee float64) []models.Order {
	index := make(map[string]int, len(lines))
	orders := make([]models.Order, 0, len(lines))

	for _, l := range lines {
		i, ok := index[l.OrderID]
		if !ok {
			// Email and date placed are first-seen per order.
			i = len(orders)
			index[l.OrderID] = i
			orders = append(orders, models.Order{
				OrderID:    l.OrderID,
				Email:      l.Email,
				DatePlaced: l.DatePlaced,
			})
		}
		orders[i].Revenue += float64(l.Qty) * l.UnitPrice
		orders[i].Cost += float64(l.Qty) * l.UnitCost
	}

	for i := range orders {
		orders[i].Revenue += shippingFee
		orders[i].Profit = orders[i].Revenue - orders[i].Cost
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].DatePlaced.Before(orders[j].DatePlaced)
	})

	firstOrderDates := make(map[string]time.Time, len(orders))
	for _, o := range orders {
		if d, ok := firstOrderDates[o.Email]; !ok || o.DatePlaced.Before(d) {
			firstOrderDates[o.Email] = o.DatePlaced
		}
	}

	for i := range orders {
		if orders[i].DatePlaced.After(firstOrderDates[orders[i].Email]) {
			orders[i].CustomerType = models.CustomerRepeat
		} else {
			orders[i].CustomerType = models.CustomerFirstTime
		}
		orders[i].MonthYear = orders[i].DatePlaced.Format(monthKeyLayout)
	}

	return orders
}
