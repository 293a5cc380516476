package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func sale(daysAgo int, qty int, sellingPrice, purchasePrice float64, name, category string) SaleRecord {
	return SaleRecord{
		SaleDate:             base.AddDate(0, 0, -daysAgo),
		Quantity:             qty,
		SellingPrice:         sellingPrice,
		TotalPrice:           sellingPrice * float64(qty),
		ProductName:          name,
		ProductCategory:      category,
		ProductPurchasePrice: purchasePrice,
	}
}

func TestDailyTotalsProfitFormula(t *testing.T) {
	sales := []SaleRecord{
		sale(0, 2, 2200, 1500, "Cotton Saree", "Saree"),
		sale(0, 1, 5000, 3500, "Silk Saree", "Saree"),
		sale(3, 4, 1400, 800, "Denim Jeans", "Jeans"), // outside today's window
	}

	got := DailyTotals(sales, base)

	assert.InDelta(t, 2*2200+5000, got.Sales, 1e-9)
	assert.InDelta(t, (2200-1500)*2+(5000-3500)*1, got.Profit, 1e-9)
}

func TestDailyTotalsEmptyInput(t *testing.T) {
	got := DailyTotals(nil, base)
	assert.Equal(t, Totals{}, got)
}

func TestWindowTotalsBoundaries(t *testing.T) {
	dayStart := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	atStart := SaleRecord{SaleDate: dayStart, Quantity: 1, SellingPrice: 100, TotalPrice: 100}
	atEnd := SaleRecord{SaleDate: dayEnd, Quantity: 1, SellingPrice: 100, TotalPrice: 100}

	got := WindowTotals([]SaleRecord{atStart, atEnd}, dayStart, dayEnd)

	// Start inclusive, end exclusive.
	assert.InDelta(t, 100, got.Sales, 1e-9)
}

func TestMonthlyTotals(t *testing.T) {
	sales := []SaleRecord{
		sale(10, 1, 1400, 800, "Denim Jeans", "Jeans"), // June 5, in month
		sale(20, 1, 1400, 800, "Denim Jeans", "Jeans"), // May 26, out
	}

	got := MonthlyTotals(sales, base)

	assert.InDelta(t, 1400, got.Sales, 1e-9)
	assert.InDelta(t, 600, got.Profit, 1e-9)
}

func TestTimeSeriesSparseDates(t *testing.T) {
	sales := []SaleRecord{
		sale(29, 1, 1000, 600, "A", "X"), // day 1 of the window
		sale(15, 2, 1000, 600, "A", "X"), // day 15
		sale(15, 1, 500, 200, "B", "Y"),  // same day
	}

	points := TimeSeries(sales, 30, base)

	// Two active dates produce exactly two entries, not thirty.
	require.Len(t, points, 2)
	assert.True(t, points[0].Date < points[1].Date)
	assert.InDelta(t, 1000, points[0].Sales, 1e-9)
	assert.InDelta(t, 2*1000+500, points[1].Sales, 1e-9)
	assert.InDelta(t, (1000-600)*2+(500-200)*1, points[1].Profit, 1e-9)
}

func TestTimeSeriesEmptyInput(t *testing.T) {
	points := TimeSeries(nil, 30, base)
	assert.Empty(t, points)
}

func TestTopProductsOrderAndLimit(t *testing.T) {
	sales := []SaleRecord{
		sale(1, 3, 100, 50, "Alpha", "X"),
		sale(1, 5, 100, 50, "Beta", "X"),
		sale(2, 3, 100, 50, "Gamma", "Y"), // ties with Alpha on quantity
		sale(2, 1, 100, 50, "Delta", "Y"),
		sale(3, 2, 100, 50, "Alpha", "X"), // Alpha now 5, ties with Beta
	}

	ranks := TopProducts(sales, 3, base)

	require.Len(t, ranks, 3)
	// Beta and Alpha both sold 5; Alpha was seen first so it stays first.
	assert.Equal(t, "Alpha", ranks[0].Name)
	assert.Equal(t, "Beta", ranks[1].Name)
	assert.Equal(t, "Gamma", ranks[2].Name)
	assert.Equal(t, 5, ranks[0].TotalQuantity)
}

func TestTopProductsExcludesPriorMonths(t *testing.T) {
	sales := []SaleRecord{
		sale(0, 1, 100, 50, "Current", "X"),
		sale(45, 9, 100, 50, "LastMonth", "X"),
	}

	ranks := TopProducts(sales, 0, base)

	require.Len(t, ranks, 1)
	assert.Equal(t, "Current", ranks[0].Name)
}

func TestLowStockStrictBoundary(t *testing.T) {
	products := []StockRecord{
		{ProductID: 1, Name: "At threshold", Stock: 5},
		{ProductID: 2, Name: "Below", Stock: 4},
		{ProductID: 3, Name: "Zero", Stock: 0},
		{ProductID: 4, Name: "Plenty", Stock: 40},
	}

	low := LowStock(products, 5)

	require.Len(t, low, 2)
	assert.Equal(t, "Zero", low[0].Name)
	assert.Equal(t, "Below", low[1].Name)
}

func TestSupplierTotalsConservation(t *testing.T) {
	purchases := []PurchaseRecord{
		{Supplier: "Dhaka Textiles", Quantity: 10, PurchasePrice: 1500},
		{Supplier: "Chittagong Fabrics", Quantity: 4, PurchasePrice: 800},
		{Supplier: "Dhaka Textiles", Quantity: 6, PurchasePrice: 1600},
	}

	totals := SupplierTotals(purchases)

	require.Len(t, totals, 2)
	assert.Equal(t, "Dhaka Textiles", totals[0].Supplier)
	assert.Equal(t, 16, totals[0].TotalQuantity)
	assert.InDelta(t, 10*1500+6*1600, totals[0].TotalAmount, 1e-9)

	inputQty := 0
	for _, p := range purchases {
		inputQty += p.Quantity
	}
	outputQty := 0
	for _, s := range totals {
		outputQty += s.TotalQuantity
	}
	assert.Equal(t, inputQty, outputQty)
}

func TestSupplierTotalsEmptyInput(t *testing.T) {
	assert.Empty(t, SupplierTotals(nil))
}

func TestAverageUnitPriceZeroQuantity(t *testing.T) {
	assert.Zero(t, SupplierTotal{}.AverageUnitPrice())
	assert.InDelta(t, 12.5, SupplierTotal{TotalAmount: 25, TotalQuantity: 2}.AverageUnitPrice(), 1e-9)
}
