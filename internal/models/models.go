package models

import (
	"encoding/json"
	"time"
)

// Customer types derived from order recency relative to the customer's own
// order history.
const (
	CustomerFirstTime = "First-time"
	CustomerRepeat    = "Repeat"
)

// OrderLine is one row of the normalized input table: one product within
// one order. Multiple lines share an OrderID when an order contains
// multiple products.
type OrderLine struct {
	OrderID       string    `json:"order_id"`
	Email         string    `json:"email"`
	DatePlaced    time.Time `json:"date_placed"`
	DateCompleted time.Time `json:"date_completed"`
	SKU           string    `json:"sku"`
	Qty           int       `json:"qty"`
	UnitPrice     float64   `json:"unit_price"`
	UnitCost      float64   `json:"unit_cost"`
}

// Order is the per-order rollup. Revenue includes the flat shipping fee
// exactly once.
type Order struct {
	OrderID      string    `json:"order_id"`
	Email        string    `json:"email"`
	DatePlaced   time.Time `json:"date_placed"`
	MonthYear    string    `json:"month_year"`
	Revenue      float64   `json:"revenue"`
	Cost         float64   `json:"cost"`
	Profit       float64   `json:"profit"`
	CustomerType string    `json:"customer_type"`
}

// CohortCountRow is one month of the order-count matrix. Both customer-type
// columns are always present, zero-filled when a category is absent.
type CohortCountRow struct {
	MonthYear string `json:"month_year"`
	FirstTime int    `json:"first_time"`
	Repeat    int    `json:"repeat"`
}

// CohortRevenueRow is one month of the revenue matrix.
type CohortRevenueRow struct {
	MonthYear string  `json:"month_year"`
	FirstTime float64 `json:"first_time"`
	Repeat    float64 `json:"repeat"`
}

// ProductPerformance is the per-SKU rollup. Revenue and profit include the
// shipping fee of every order whose first line carried this SKU.
type ProductPerformance struct {
	SKU           string  `json:"sku"`
	TotalQty      int     `json:"total_qty"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalProfit   float64 `json:"total_profit"`
	MeanUnitPrice float64 `json:"mean_unit_price"`
	MeanUnitCost  float64 `json:"mean_unit_cost"`
	ProfitMargin  Ratio   `json:"profit_margin"`
}

// MonthlyProfit is one calendar month of the profitability series. Month is
// the first day of the month. CumulativeProfit is the running sum of Profit
// in ascending month order.
type MonthlyProfit struct {
	Month            time.Time `json:"month"`
	Revenue          float64   `json:"revenue"`
	Profit           float64   `json:"profit"`
	CumulativeProfit float64   `json:"cumulative_profit"`
}

// ProductAffinity counts, per SKU, how often the product appears on a
// customer's chronologically first order line versus later lines.
type ProductAffinity struct {
	SKU                 string `json:"sku"`
	FirstPurchaseCount  int    `json:"first_purchase_count"`
	RepeatPurchaseCount int    `json:"repeat_purchase_count"`
	RepeatToFirstRatio  Ratio  `json:"repeat_to_first_ratio"`
}

// DatasetSummary describes the ingested table so the presentation layer can
// label charts without re-reading the file.
type DatasetSummary struct {
	Rows      int       `json:"rows"`
	Orders    int       `json:"orders"`
	Customers int       `json:"customers"`
	Products  int       `json:"products"`
	FirstDate time.Time `json:"first_date"`
	LastDate  time.Time `json:"last_date"`
}

// Report bundles every result table of one analysis run.
type Report struct {
	RunID         string               `json:"run_id"`
	GeneratedAt   time.Time            `json:"generated_at"`
	ShippingFee   float64              `json:"shipping_fee"`
	Summary       DatasetSummary       `json:"summary"`
	Orders        []Order              `json:"orders"`
	CohortCounts  []CohortCountRow     `json:"cohort_counts"`
	CohortRevenue []CohortRevenueRow   `json:"cohort_revenue"`
	Products      []ProductPerformance `json:"products"`
	Monthly       []MonthlyProfit      `json:"monthly"`
	Affinity      []ProductAffinity    `json:"affinity"`
}

// Ratio is a division result that may be undefined (zero denominator).
// Undefined ratios marshal to JSON null so NaN or Inf never reaches a
// consumer.
type Ratio struct {
	Value float64
	Valid bool
}

// NewRatio divides num by den, returning an undefined Ratio when den is 0.
func NewRatio(num, den float64) Ratio {
	if den == 0 {
		return Ratio{}
	}
	return Ratio{Value: num / den, Valid: true}
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio{}
		return nil
	}
	r.Valid = true
	return json.Unmarshal(data, &r.Value)
}
