package handler

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/model"
	"inventory-service/internal/stats"
	"inventory-service/internal/store"
	"inventory-service/internal/validate"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	Name             string                 `json:"name" validate:"required"`
	Category         string                 `json:"category" validate:"required"`
	Size             string                 `json:"size"`
	PurchasePrice    float64                `json:"purchase_price"`
	SellingPrice     float64                `json:"selling_price"`
	Stock            int                    `json:"stock"`
	CustomAttributes map[string]interface{} `json:"custom_attributes"`
}

// ListProducts handles retrieving all products with optional filtering
func (h *Handler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("list")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	products, err := h.store.ListProducts(c.Request().Context(), owner)
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	// Filter by category if specified
	if category := c.QueryParam("category"); category != "" {
		filtered := make([]model.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
		log.Info("Filtering products by category", zap.String("category", category))
	}

	// Keep only products below the low-stock threshold if requested
	if c.QueryParam("low_stock") == "true" {
		filtered := make([]model.Product, 0, len(products))
		for _, p := range products {
			if p.Stock < stats.DefaultLowStockThreshold {
				filtered = append(filtered, p)
			}
		}
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Stock < filtered[j].Stock })
		products = filtered
		log.Info("Filtering products by low stock", zap.Int("count", len(products)))
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func (h *Handler) GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("get")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid product ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	product, err := h.store.GetProduct(c.Request().Context(), owner, uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Product not found", zap.Uint64("product_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		log.Error("Failed to get product", zap.Uint64("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles creating a new product
func (h *Handler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")
	prometheus.RecordProductOperation("create")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	product := model.Product{
		OwnerID:          owner,
		Name:             req.Name,
		Category:         req.Category,
		Size:             req.Size,
		PurchasePrice:    req.PurchasePrice,
		SellingPrice:     req.SellingPrice,
		Stock:            req.Stock,
		CustomAttributes: req.CustomAttributes,
	}

	if err := validate.Product(&product); err != nil {
		log.Warn("Product rejected by validation",
			zap.String("name", req.Name),
			zap.String("reason", err.Error()))
		return rejectValidation(c, "product", err)
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.store.CreateProduct(c.Request().Context(), &product); err != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	prometheus.UpdateProductStock(strconv.FormatUint(uint64(product.ID), 10), product.Name, product.Category, float64(product.Stock))

	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("category", product.Category))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles updating an existing product
func (h *Handler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("update")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid product ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}
	log.Info("Updating product", zap.Uint64("product_id", id))

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint64("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	product := model.Product{
		ID:               uint(id),
		OwnerID:          owner,
		Name:             req.Name,
		Category:         req.Category,
		Size:             req.Size,
		PurchasePrice:    req.PurchasePrice,
		SellingPrice:     req.SellingPrice,
		Stock:            req.Stock,
		CustomAttributes: req.CustomAttributes,
	}

	if err := validate.Product(&product); err != nil {
		log.Warn("Product update rejected by validation",
			zap.Uint64("product_id", id),
			zap.String("reason", err.Error()))
		return rejectValidation(c, "product", err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	if err := h.store.UpdateProduct(c.Request().Context(), &product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Product not found for update", zap.Uint64("product_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		log.Error("Failed to update product", zap.Uint64("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	prometheus.UpdateProductStock(strconv.FormatUint(id, 10), product.Name, product.Category, float64(product.Stock))

	log.Info("Product updated successfully",
		zap.Uint64("product_id", id),
		zap.String("name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles deleting a product
func (h *Handler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("delete")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid product ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}
	log.Info("Deleting product", zap.Uint64("product_id", id))

	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := h.store.DeleteProduct(c.Request().Context(), owner, uint(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Product not found for deletion", zap.Uint64("product_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		log.Error("Failed to delete product", zap.Uint64("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Product deleted successfully", zap.Uint64("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}
