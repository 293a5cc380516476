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

// PurchaseRequest defines the structure for recording a purchase
type PurchaseRequest struct {
	ProductID     uint    `json:"product_id" validate:"required"`
	Supplier      string  `json:"supplier" validate:"required"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	PurchasePrice float64 `json:"purchase_price"`
}

// ListPurchases handles retrieving all purchases, newest first
func (h *Handler) ListPurchases(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPurchaseOperation("list")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	purchases, err := h.store.ListPurchases(c.Request().Context(), owner)
	if err != nil {
		log.Error("Failed to list purchases", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Purchases retrieved successfully", zap.Int("count", len(purchases)))
	return c.JSON(http.StatusOK, purchases)
}

// CreatePurchase records a restock. The purchase row and the stock increase
// on the referenced product are written in one store transaction.
func (h *Handler) CreatePurchase(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Recording purchase")
	prometheus.RecordPurchaseOperation("create")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	purchase := model.Purchase{
		OwnerID:       owner,
		ProductID:     req.ProductID,
		Supplier:      req.Supplier,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  h.now(),
	}

	if err := validate.Purchase(&purchase); err != nil {
		log.Warn("Purchase rejected by validation",
			zap.Uint("product_id", req.ProductID),
			zap.String("reason", err.Error()))
		return rejectValidation(c, "purchase", err)
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.store.CreatePurchase(c.Request().Context(), &purchase); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Purchase references missing product", zap.Uint("product_id", req.ProductID))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		log.Error("Failed to record purchase",
			zap.Uint("product_id", req.ProductID),
			zap.String("supplier", req.Supplier),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Purchase recorded successfully",
		zap.Uint("purchase_id", purchase.ID),
		zap.Uint("product_id", purchase.ProductID),
		zap.String("supplier", purchase.Supplier),
		zap.Int("quantity", purchase.Quantity))
	return c.JSON(http.StatusCreated, purchase)
}
