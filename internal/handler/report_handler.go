package handler

import (
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/model"
	"inventory-service/internal/stats"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// SupplierReportRow is one supplier aggregate with the derived average.
type SupplierReportRow struct {
	Supplier         string  `json:"supplier"`
	TotalAmount      float64 `json:"total_amount"`
	TotalQuantity    int     `json:"total_quantity"`
	AverageUnitPrice float64 `json:"average_unit_price"`
}

func toPurchaseRecords(purchases []model.Purchase) []stats.PurchaseRecord {
	records := make([]stats.PurchaseRecord, 0, len(purchases))
	for _, p := range purchases {
		records = append(records, stats.PurchaseRecord{
			Supplier:      p.Supplier,
			Quantity:      p.Quantity,
			PurchasePrice: p.PurchasePrice,
		})
	}
	return records
}

// SupplierReport aggregates all purchases by supplier, sorted by total spend
// descending for display.
func (h *Handler) SupplierReport(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPurchaseOperation("supplier_report")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	purchases, err := h.store.ListPurchases(c.Request().Context(), owner)
	if err != nil {
		log.Error("Failed to fetch purchases for supplier report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	totals := stats.SupplierTotals(toPurchaseRecords(purchases))
	rows := make([]SupplierReportRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, SupplierReportRow{
			Supplier:         t.Supplier,
			TotalAmount:      t.TotalAmount,
			TotalQuantity:    t.TotalQuantity,
			AverageUnitPrice: t.AverageUnitPrice(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalAmount > rows[j].TotalAmount })

	log.Info("Supplier report computed", zap.Int("suppliers", len(rows)))
	return c.JSON(http.StatusOK, rows)
}
