package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/model"
	"inventory-service/internal/stats"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// Dashboard window, matching the chart shown on the landing page.
const timeSeriesWindowDays = 30

// DashboardResponse bundles everything the landing page renders in one fetch.
type DashboardResponse struct {
	Today       stats.Totals        `json:"today"`
	Month       stats.Totals        `json:"month"`
	SalesChart  []stats.DailyPoint  `json:"sales_chart"`
	TopProducts []stats.ProductRank `json:"top_products"`
	LowStock    []stats.StockRecord `json:"low_stock"`
}

func toSaleRecords(sales []model.Sale) []stats.SaleRecord {
	records := make([]stats.SaleRecord, 0, len(sales))
	for _, s := range sales {
		records = append(records, stats.SaleRecord{
			SaleDate:             s.SaleDate,
			Quantity:             s.Quantity,
			SellingPrice:         s.SellingPrice,
			TotalPrice:           s.TotalPrice,
			ProductName:          s.Product.Name,
			ProductCategory:      s.Product.Category,
			ProductPurchasePrice: s.Product.PurchasePrice,
		})
	}
	return records
}

func toStockRecords(products []model.Product) []stats.StockRecord {
	records := make([]stats.StockRecord, 0, len(products))
	for _, p := range products {
		records = append(records, stats.StockRecord{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Stock:     p.Stock,
		})
	}
	return records
}

// Dashboard computes the landing-page figures from the raw rows. An empty
// store produces zero-valued aggregates, never an error.
func (h *Handler) Dashboard(c echo.Context) error {
	log := logger.FromContext(c)

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	sales, err := h.store.ListSales(c.Request().Context(), owner)
	if err != nil {
		log.Error("Failed to fetch sales for dashboard", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	products, err := h.store.ListProducts(c.Request().Context(), owner)
	if err != nil {
		log.Error("Failed to fetch products for dashboard", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	now := h.now()
	records := toSaleRecords(sales)

	resp := DashboardResponse{
		Today:       stats.DailyTotals(records, now),
		Month:       stats.MonthlyTotals(records, now),
		SalesChart:  stats.TimeSeries(records, timeSeriesWindowDays, now),
		TopProducts: stats.TopProducts(records, stats.DefaultTopLimit, now),
		LowStock:    stats.LowStock(toStockRecords(products), stats.DefaultLowStockThreshold),
	}

	log.Info("Dashboard computed",
		zap.Int("sales", len(sales)),
		zap.Int("products", len(products)),
		zap.Int("low_stock", len(resp.LowStock)))
	return c.JSON(http.StatusOK, resp)
}
