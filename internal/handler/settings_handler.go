package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/model"
	"inventory-service/internal/store"
	"inventory-service/internal/storecfg"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// StoreConfigRequest defines the structure for saving the store configuration
type StoreConfigRequest struct {
	StoreName        string               `json:"store_name" validate:"required"`
	BusinessType     string               `json:"business_type" validate:"required"`
	Categories       []string             `json:"categories"`
	UsesSizes        bool                 `json:"uses_sizes"`
	SizeOptions      []string             `json:"size_options"`
	CustomAttributes []model.AttributeDef `json:"custom_attributes"`
	CurrencySymbol   string               `json:"currency_symbol"`
}

// GetSettings returns the owner's store configuration, or the defaults when
// nothing has been saved yet.
func (h *Handler) GetSettings(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordConfigOperation("get")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	cfg, err := h.store.GetConfig(c.Request().Context(), owner)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("No saved configuration, returning defaults")
			return c.JSON(http.StatusOK, storecfg.DefaultConfig(owner))
		}
		log.Error("Failed to fetch store configuration", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, cfg)
}

// SaveSettings upserts the owner's single configuration row.
func (h *Handler) SaveSettings(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Saving store configuration")
	prometheus.RecordConfigOperation("save")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	var req StoreConfigRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if _, ok := storecfg.BusinessTypeByID(req.BusinessType); !ok {
		log.Warn("Unknown business type", zap.String("business_type", req.BusinessType))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": storecfg.ErrUnknownBusinessType.Error()})
	}

	cfg := model.StoreConfig{
		OwnerID:          owner,
		StoreName:        req.StoreName,
		BusinessType:     req.BusinessType,
		Categories:       req.Categories,
		UsesSizes:        req.UsesSizes,
		SizeOptions:      req.SizeOptions,
		CustomAttributes: req.CustomAttributes,
		CurrencySymbol:   req.CurrencySymbol,
	}

	defer prometheus.TrackDBOperation("upsert")(time.Now())

	if err := h.store.SaveConfig(c.Request().Context(), &cfg); err != nil {
		log.Error("Failed to save store configuration", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Info("Store configuration saved",
		zap.Uint("config_id", cfg.ID),
		zap.String("store_name", cfg.StoreName),
		zap.String("business_type", cfg.BusinessType))
	return c.JSON(http.StatusOK, cfg)
}

// ListBusinessTypes returns the static template catalog.
func (h *Handler) ListBusinessTypes(c echo.Context) error {
	prometheus.RecordConfigOperation("business_types")
	return c.JSON(http.StatusOK, storecfg.BusinessTypes())
}

// ApplyBusinessTypeRequest selects a template to preview.
type ApplyBusinessTypeRequest struct {
	BusinessType string `json:"business_type" validate:"required"`
}

// ApplyBusinessType returns the effective configuration after replacing the
// template-driven fields with the selected type's defaults. Store name and
// currency symbol pass through untouched; nothing is saved until the owner
// submits the form.
func (h *Handler) ApplyBusinessType(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordConfigOperation("apply_business_type")

	owner, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required"})
	}

	var req ApplyBusinessTypeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	cfg, err := h.store.GetConfig(c.Request().Context(), owner)
	if errors.Is(err, store.ErrNotFound) {
		cfg = storecfg.DefaultConfig(owner)
	} else if err != nil {
		log.Error("Failed to fetch store configuration", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if err := storecfg.ApplyBusinessType(&cfg, req.BusinessType); err != nil {
		log.Warn("Unknown business type", zap.String("business_type", req.BusinessType))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	log.Info("Business type applied",
		zap.String("business_type", req.BusinessType),
		zap.Int("categories", len(cfg.Categories)))
	return c.JSON(http.StatusOK, cfg)
}
