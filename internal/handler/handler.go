// Package handler exposes the inventory application over echo. Handlers
// receive the persistence gateway at construction; validation runs before any
// write, gateway failures surface verbatim and are never retried.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"inventory-service/internal/middleware"
	"inventory-service/internal/store"
	"inventory-service/internal/validate"
	"inventory-service/prometheus"
)

// Handler carries the injected dependencies shared by all routes.
type Handler struct {
	store store.Store
	now   func() time.Time
}

// New builds a Handler over the given store.
func New(st store.Store) *Handler {
	return &Handler{store: st, now: time.Now}
}

// ownerID pulls the authenticated store account from the request context.
func ownerID(c echo.Context) (uint, bool) {
	id, ok := middleware.OwnerIDFromContext(c)
	if !ok {
		prometheus.OwnerContextMissingCounter.Inc()
	}
	return id, ok
}

// validationReason maps a validation sentinel to its metric label.
func validationReason(err error) string {
	switch {
	case errors.Is(err, validate.ErrInvalidName):
		return "invalid_name"
	case errors.Is(err, validate.ErrInvalidCategory):
		return "invalid_category"
	case errors.Is(err, validate.ErrNegativePrice):
		return "negative_price"
	case errors.Is(err, validate.ErrNegativeStock):
		return "negative_stock"
	case errors.Is(err, validate.ErrMissingProduct):
		return "missing_product"
	case errors.Is(err, validate.ErrInvalidSupplier):
		return "invalid_supplier"
	case errors.Is(err, validate.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, validate.ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "other"
	}
}

// rejectValidation answers a pre-write validation failure. Nothing has been
// written when this runs.
func rejectValidation(c echo.Context, entity string, err error) error {
	prometheus.RecordValidationFailure(entity, validationReason(err))
	return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
}
