package analytics

import (
	"testing"

	"order-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateOrders(t *testing.T) {
	orders := AggregateOrders(sampleLines(), testFee)
	require.Len(t, orders, 4)

	// Sorted ascending by date placed.
	assert.Equal(t, []string{"O1", "O2", "O3", "O4"},
		[]string{orders[0].OrderID, orders[1].OrderID, orders[2].OrderID, orders[3].OrderID})

	o1 := orders[0]
	assert.Equal(t, "a@x.com", o1.Email)
	assert.Equal(t, 215.0, o1.Revenue) // 100 + 2*50 + fee
	assert.Equal(t, 80.0, o1.Cost)
	assert.Equal(t, 135.0, o1.Profit)
	assert.Equal(t, models.CustomerFirstTime, o1.CustomerType)
	assert.Equal(t, "2024-01", o1.MonthYear)

	assert.Equal(t, models.CustomerFirstTime, orders[1].CustomerType)
	assert.Equal(t, models.CustomerRepeat, orders[2].CustomerType)
	assert.Equal(t, models.CustomerRepeat, orders[3].CustomerType)
}

func TestAggregateOrdersFeeOncePerOrder(t *testing.T) {
	// A three-line order carries the fee exactly once.
	lines := []models.OrderLine{
		line("O1", "a@x.com", "2024-01-01", "SKU-A", 1, 10, 5),
		line("O1", "a@x.com", "2024-01-01", "SKU-B", 1, 10, 5),
		line("O1", "a@x.com", "2024-01-01", "SKU-C", 1, 10, 5),
	}

	orders := AggregateOrders(lines, testFee)
	require.Len(t, orders, 1)
	assert.Equal(t, 45.0, orders[0].Revenue)
	assert.Equal(t, 30.0, orders[0].Profit)
}

func TestAggregateOrdersRepeatCustomerExample(t *testing.T) {
	lines := []models.OrderLine{
		line("O1", "A@x.com", "2024-01-01", "X1", 1, 100, 40),
		line("O2", "A@x.com", "2024-02-01", "X1", 1, 100, 40),
	}

	orders := AggregateOrders(lines, testFee)
	require.Len(t, orders, 2)

	assert.Equal(t, 115.0, orders[0].Revenue)
	assert.Equal(t, 75.0, orders[0].Profit)
	assert.Equal(t, models.CustomerFirstTime, orders[0].CustomerType)

	assert.Equal(t, 115.0, orders[1].Revenue)
	assert.Equal(t, 75.0, orders[1].Profit)
	assert.Equal(t, models.CustomerRepeat, orders[1].CustomerType)
}

func TestAggregateOrdersSameDayTie(t *testing.T) {
	// Two orders on the customer's earliest date are both First-time.
	lines := []models.OrderLine{
		line("O1", "a@x.com", "2024-01-01", "SKU-A", 1, 10, 5),
		line("O2", "a@x.com", "2024-01-01", "SKU-B", 1, 10, 5),
	}

	orders := AggregateOrders(lines, testFee)
	require.Len(t, orders, 2)
	assert.Equal(t, models.CustomerFirstTime, orders[0].CustomerType)
	assert.Equal(t, models.CustomerFirstTime, orders[1].CustomerType)
}

func TestAggregateOrdersOneFirstTimePerCustomer(t *testing.T) {
	orders := AggregateOrders(sampleLines(), testFee)

	firstTime := make(map[string]int)
	for _, o := range orders {
		if o.CustomerType == models.CustomerFirstTime {
			firstTime[o.Email]++
		}
	}
	for email, n := range firstTime {
		assert.Equal(t, 1, n, "customer %s", email)
	}
	assert.Len(t, firstTime, 2)
}

func TestAggregateOrdersDoesNotMutateInput(t *testing.T) {
	lines := sampleLines()
	want := sampleLines()

	AggregateOrders(lines, testFee)
	assert.Equal(t, want, lines)
}
