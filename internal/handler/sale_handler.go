package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/model"
	"inventory-service/internal/store"
	"inventory-service/internal/validate"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// SaleRequest defines the structure for recording a sale
type SaleRequest struct {
	ProductID    uint    `json:"product_id" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	SellingPrice float64 `json:"selling_price"`
}

// ListSales handles retrieving all sales, newest first
func (h *Handler) ListSales(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSaleOperation("list")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	sales, err := h.store.ListSales(c.Request().Context(), owner)
	if err != nil {
		log.Error("Failed to list sales", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Sales retrieved successfully", zap.Int("count", len(sales)))
	return c.JSON(http.StatusOK, sales)
}

// CreateSale records a sale. The stock check against the fetched product is
// advisory; the store's conditional decrement is what actually prevents
// overselling, so a concurrent sale cannot push stock negative.
func (h *Handler) CreateSale(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Recording sale")
	prometheus.RecordSaleOperation("create")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	var req SaleRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	sale := model.Sale{
		OwnerID:      owner,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		SellingPrice: req.SellingPrice,
		SaleDate:     h.now(),
	}

	// Fetch the referenced product for the pre-write checks and the price
	// fallback.
	var currentStock int
	if req.ProductID != 0 {
		product, err := h.store.GetProduct(c.Request().Context(), owner, req.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("Sale references missing product", zap.Uint("product_id", req.ProductID))
				return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
			}
			log.Error("Failed to fetch product for sale", zap.Uint("product_id", req.ProductID), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		currentStock = product.Stock
		if sale.SellingPrice == 0 {
			sale.SellingPrice = product.SellingPrice
		}
	}
	sale.TotalPrice = sale.SellingPrice * float64(sale.Quantity)

	if err := validate.Sale(&sale, currentStock); err != nil {
		log.Warn("Sale rejected by validation",
			zap.Uint("product_id", req.ProductID),
			zap.Int("quantity", req.Quantity),
			zap.String("reason", err.Error()))
		return rejectValidation(c, "sale", err)
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.store.CreateSale(c.Request().Context(), &sale); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			log.Warn("Sale references missing product", zap.Uint("product_id", req.ProductID))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		case errors.Is(err, validate.ErrInsufficientStock):
			// Lost the race against another sale between the advisory check
			// and the decrement.
			log.Warn("Sale rejected by stock guard",
				zap.Uint("product_id", req.ProductID),
				zap.Int("quantity", req.Quantity))
			return rejectValidation(c, "sale", err)
		default:
			log.Error("Failed to record sale",
				zap.Uint("product_id", req.ProductID),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}

	log.Info("Sale recorded successfully",
		zap.Uint("sale_id", sale.ID),
		zap.Uint("product_id", sale.ProductID),
		zap.Int("quantity", sale.Quantity),
		zap.Float64("total_price", sale.TotalPrice))
	return c.JSON(http.StatusCreated, sale)
}
