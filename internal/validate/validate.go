// Package validate holds the pre-write invariant checks for product, purchase
// and sale records. All checks are pure decision functions: no I/O, no side
// effects, and the first violated invariant wins.
package validate

import (
	"errors"
	"strings"

	"inventory-service/internal/model"
)

var (
	ErrInvalidName       = errors.New("product name is required")
	ErrInvalidCategory   = errors.New("product category is required")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrNegativeStock     = errors.New("stock cannot be negative")
	ErrMissingProduct    = errors.New("product reference is required")
	ErrInvalidSupplier   = errors.New("supplier name is required")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInsufficientStock = errors.New("insufficient stock for sale")
)

// Product checks a candidate product record before it is written.
func Product(p *model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(p.Category) == "" {
		return ErrInvalidCategory
	}
	if p.PurchasePrice < 0 || p.SellingPrice < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// Purchase checks a candidate purchase record before it is written.
func Purchase(p *model.Purchase) error {
	if p.ProductID == 0 {
		return ErrMissingProduct
	}
	if strings.TrimSpace(p.Supplier) == "" {
		return ErrInvalidSupplier
	}
	if p.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if p.PurchasePrice < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Sale checks a candidate sale record against the latest known stock of the
// referenced product. The stock check is advisory only: the authoritative
// guard is the conditional decrement performed by the store when the sale is
// written.
func Sale(s *model.Sale, currentStock int) error {
	if s.ProductID == 0 {
		return ErrMissingProduct
	}
	if s.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if s.SellingPrice < 0 {
		return ErrNegativePrice
	}
	if s.Quantity > currentStock {
		return ErrInsufficientStock
	}
	return nil
}
