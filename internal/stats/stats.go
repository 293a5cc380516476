// Package stats derives dashboard and report figures from raw sale and
// purchase rows already fetched from the store. Every function is pure and
// total over empty input: no data means zero-valued aggregates, never an
// error.
package stats

import (
	"sort"
	"time"
)

// Default cutoffs used by the dashboard when the caller passes a
// non-positive value.
const (
	DefaultTopLimit          = 5
	DefaultLowStockThreshold = 5
)

// SaleRecord is a sale row flattened with the fields of its product that the
// aggregations need. Profit is computed against the product's purchase price
// as it stands now, matching what the dashboard displays.
type SaleRecord struct {
	SaleDate             time.Time
	Quantity             int
	SellingPrice         float64
	TotalPrice           float64
	ProductName          string
	ProductCategory      string
	ProductPurchasePrice float64
}

// PurchaseRecord carries the purchase fields the supplier report needs.
type PurchaseRecord struct {
	Supplier      string
	Quantity      int
	PurchasePrice float64
}

// StockRecord carries the product fields the low-stock report needs.
type StockRecord struct {
	ProductID uint
	Name      string
	Category  string
	Stock     int
}

// Totals is a sales/profit pair for one reporting window.
type Totals struct {
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
}

// DailyPoint is one day of the sales time series.
type DailyPoint struct {
	Date   string  `json:"date"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
}

// ProductRank is one row of the top-products leaderboard.
type ProductRank struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// SupplierTotal aggregates all purchases from one supplier.
type SupplierTotal struct {
	Supplier      string  `json:"supplier"`
	TotalAmount   float64 `json:"total_amount"`
	TotalQuantity int     `json:"total_quantity"`
}

func profit(s SaleRecord) float64 {
	return (s.SellingPrice - s.ProductPurchasePrice) * float64(s.Quantity)
}

// WindowTotals sums revenue and profit over sales whose date falls in
// [start, end). Start is inclusive, end exclusive.
func WindowTotals(sales []SaleRecord, start, end time.Time) Totals {
	var t Totals
	for _, s := range sales {
		if s.SaleDate.Before(start) || !s.SaleDate.Before(end) {
			continue
		}
		t.Sales += s.TotalPrice
		t.Profit += profit(s)
	}
	return t
}

// DailyTotals sums revenue and profit for the calendar day containing now, in
// now's location.
func DailyTotals(sales []SaleRecord, now time.Time) Totals {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return WindowTotals(sales, dayStart, dayStart.AddDate(0, 0, 1))
}

// MonthlyTotals sums revenue and profit from the first day of now's month up
// to now.
func MonthlyTotals(sales []SaleRecord, now time.Time) Totals {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return WindowTotals(sales, monthStart, now)
}

// TimeSeries groups sales over the trailing windowDays days by calendar date,
// in the timezone each sale's timestamp encodes. Only dates that actually had
// a sale appear; gaps are allowed. The result is ordered ascending by date.
func TimeSeries(sales []SaleRecord, windowDays int, now time.Time) []DailyPoint {
	cutoff := now.AddDate(0, 0, -windowDays)

	byDate := make(map[string]*DailyPoint)
	for _, s := range sales {
		if s.SaleDate.Before(cutoff) || s.SaleDate.After(now) {
			continue
		}
		date := s.SaleDate.Format("2006-01-02")
		p, ok := byDate[date]
		if !ok {
			p = &DailyPoint{Date: date}
			byDate[date] = p
		}
		p.Sales += s.TotalPrice
		p.Profit += profit(s)
	}

	points := make([]DailyPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// TopProducts ranks the current month's sales by (product name, category),
// descending by accumulated quantity. Ties keep the order in which the pair
// was first seen in the input, and the result is truncated to limit.
func TopProducts(sales []SaleRecord, limit int, now time.Time) []ProductRank {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type key struct{ name, category string }
	index := make(map[key]int)
	ranks := make([]ProductRank, 0)

	for _, s := range sales {
		if s.SaleDate.Before(monthStart) || s.SaleDate.After(now) {
			continue
		}
		k := key{s.ProductName, s.ProductCategory}
		i, ok := index[k]
		if !ok {
			i = len(ranks)
			index[k] = i
			ranks = append(ranks, ProductRank{Name: s.ProductName, Category: s.ProductCategory})
		}
		ranks[i].TotalQuantity += s.Quantity
		ranks[i].TotalRevenue += s.TotalPrice
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].TotalQuantity > ranks[j].TotalQuantity
	})
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}

// LowStock filters products with stock strictly below threshold and sorts
// them ascending by stock. A product sitting exactly at the threshold is not
// low.
func LowStock(products []StockRecord, threshold int) []StockRecord {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	low := make([]StockRecord, 0)
	for _, p := range products {
		if p.Stock < threshold {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })
	return low
}

// SupplierTotals groups purchases by exact supplier name, accumulating spend
// and quantity. One record per distinct supplier, in first-encounter order;
// callers sort for display.
func SupplierTotals(purchases []PurchaseRecord) []SupplierTotal {
	index := make(map[string]int)
	totals := make([]SupplierTotal, 0)

	for _, p := range purchases {
		i, ok := index[p.Supplier]
		if !ok {
			i = len(totals)
			index[p.Supplier] = i
			totals = append(totals, SupplierTotal{Supplier: p.Supplier})
		}
		totals[i].TotalAmount += float64(p.Quantity) * p.PurchasePrice
		totals[i].TotalQuantity += p.Quantity
	}
	return totals
}

// AverageUnitPrice returns the average price paid per unit for a supplier.
// A zero quantity cannot occur through validated purchases, but a zero
// divisor reports 0 rather than NaN.
func (t SupplierTotal) AverageUnitPrice() float64 {
	if t.TotalQuantity == 0 {
		return 0
	}
	return t.TotalAmount / float64(t.TotalQuantity)
}
