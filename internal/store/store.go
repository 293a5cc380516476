// Package store is the persistence gateway for products, purchases, sales and
// the per-owner store configuration. Handlers receive a Store handle at
// construction; nothing in this repository reaches for a global database.
package store

import (
	"context"
	"errors"

	"inventory-service/internal/model"
)

// ErrNotFound is returned when a row does not exist or belongs to another
// owner. Any other error is a gateway failure and is surfaced verbatim, never
// retried.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract consumed by the handlers. Every method is
// scoped to one owner; rows are never visible across store accounts.
type Store interface {
	ListProducts(ctx context.Context, ownerID uint) ([]model.Product, error)
	GetProduct(ctx context.Context, ownerID, id uint) (model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, ownerID, id uint) error

	// ListPurchases returns purchases newest first with the referenced
	// product attached.
	ListPurchases(ctx context.Context, ownerID uint) ([]model.Purchase, error)
	// CreatePurchase writes the purchase row and increments the referenced
	// product's stock in a single transaction.
	CreatePurchase(ctx context.Context, p *model.Purchase) error

	// ListSales returns sales newest first with the referenced product
	// attached.
	ListSales(ctx context.Context, ownerID uint) ([]model.Sale, error)
	// CreateSale writes the sale row and decrements the referenced product's
	// stock with a conditional update (decrement only if stock covers the
	// quantity). An uncovered quantity fails with
	// validate.ErrInsufficientStock and writes nothing.
	CreateSale(ctx context.Context, s *model.Sale) error

	GetConfig(ctx context.Context, ownerID uint) (model.StoreConfig, error)
	// SaveConfig upserts the owner's single configuration row, preserving the
	// row ID across edits.
	SaveConfig(ctx context.Context, cfg *model.StoreConfig) error
}
