package analytics

import (
	"time"

	"order-analytics/internal/models"
)

func line(orderID, email, date, sku string, qty int, price, cost float64) models.OrderLine {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.OrderLine{
		OrderID:       orderID,
		Email:         email,
		DatePlaced:    d,
		DateCompleted: d,
		SKU:           sku,
		Qty:           qty,
		UnitPrice:     price,
		UnitCost:      cost,
	}
}

// sampleLines is the shared fixture: two customers, four orders, one
// multi-line order, two months.
func sampleLines() []models.OrderLine {
	return []models.OrderLine{
		line("O1", "a@x.com", "2024-01-01", "SKU-A", 1, 100, 40),
		line("O1", "a@x.com", "2024-01-01", "SKU-B", 2, 50, 20),
		line("O2", "b@x.com", "2024-01-15", "SKU-A", 1, 100, 40),
		line("O3", "a@x.com", "2024-02-01", "SKU-B", 3, 50, 20),
		line("O4", "b@x.com", "2024-02-10", "SKU-C", 1, 80, 50),
	}
}

const testFee = 15.0
