package analytics

import (
	"sort"

	"order-analytics/internal/models"
)

// SummarizeCohorts pivots the order table into month-by-customer-type count
// and revenue matrices. Rows are sorted ascending by month key and both
// customer-type columns are always present, zero-filled when a category
// never occurs.
func SummarizeCohorts(orders []models.Order) ([]models.CohortCountRow, []models.CohortRevenueRow) {
	counts := make(map[string]*models.CohortCountRow)
	revenue := make(map[string]*models.CohortRevenueRow)
	months := make([]string, 0)

	for _, o := range orders {
		c, ok := counts[o.MonthYear]
		if !ok {
			c = &models.CohortCountRow{MonthYear: o.MonthYear}
			counts[o.MonthYear] = c
			revenue[o.MonthYear] = &models.CohortRevenueRow{MonthYear: o.MonthYear}
			months = append(months, o.MonthYear)
		}
		r := revenue[o.MonthYear]

		if o.CustomerType == models.CustomerRepeat {
			c.Repeat++
			r.Repeat += o.Revenue
		} else {
			c.FirstTime++
			r.FirstTime += o.Revenue
		}
	}

	// "2006-01" keys sort chronologically as strings.
	sort.Strings(months)

	countRows := make([]models.CohortCountRow, 0, len(months))
	revenueRows := make([]models.CohortRevenueRow, 0, len(months))
	for _, m := range months {
		countRows = append(countRows, *counts[m])
		revenueRows = append(revenueRows, *revenue[m])
	}
	return countRows, revenueRows
}
