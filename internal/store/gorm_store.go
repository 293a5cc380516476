package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inventory-service/internal/model"
	"inventory-service/internal/validate"
)

// GormStore is the database-backed Store implementation.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the gateway's tables.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&model.Product{},
		&model.Purchase{},
		&model.Sale{},
		&model.StoreConfig{},
	)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) ListProducts(ctx context.Context, ownerID uint) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&products).Error
	return products, err
}

func (s *GormStore) GetProduct(ctx context.Context, ownerID, id uint) (model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&product).Error
	return product, translate(err)
}

func (s *GormStore) CreateProduct(ctx context.Context, p *model.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *GormStore) UpdateProduct(ctx context.Context, p *model.Product) error {
	res := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND owner_id = ?", p.ID, p.OwnerID).
		Updates(map[string]interface{}{
			"name":              p.Name,
			"category":          p.Category,
			"size":              p.Size,
			"purchase_price":    p.PurchasePrice,
			"selling_price":     p.SellingPrice,
			"stock":             p.Stock,
			"custom_attributes": p.CustomAttributes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return s.db.WithContext(ctx).First(p, p.ID).Error
}

func (s *GormStore) DeleteProduct(ctx context.Context, ownerID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListPurchases(ctx context.Context, ownerID uint) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("owner_id = ?", ownerID).
		Order("purchase_date desc").
		Find(&purchases).Error
	return purchases, err
}

func (s *GormStore) CreatePurchase(ctx context.Context, p *model.Purchase) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Product{}).
			Where("id = ? AND owner_id = ?", p.ProductID, p.OwnerID).
			UpdateColumn("stock", gorm.Expr("stock + ?", p.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(p).Error
	})
}

func (s *GormStore) ListSales(ctx context.Context, ownerID uint) ([]model.Sale, error) {
	var sales []model.Sale
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("owner_id = ?", ownerID).
		Order("sale_date desc").
		Find(&sales).Error
	return sales, err
}

func (s *GormStore) CreateSale(ctx context.Context, sale *model.Sale) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Conditional decrement: the WHERE clause is the stock guard, so two
		// concurrent sales cannot race the quantity below zero.
		res := tx.Model(&model.Product{}).
			Where("id = ? AND owner_id = ? AND stock >= ?", sale.ProductID, sale.OwnerID, sale.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", sale.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Product{}).
				Where("id = ? AND owner_id = ?", sale.ProductID, sale.OwnerID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNotFound
			}
			return validate.ErrInsufficientStock
		}
		return tx.Create(sale).Error
	})
}

func (s *GormStore) GetConfig(ctx context.Context, ownerID uint) (model.StoreConfig, error) {
	var cfg model.StoreConfig
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&cfg).Error
	return cfg, translate(err)
}

func (s *GormStore) SaveConfig(ctx context.Context, cfg *model.StoreConfig) error {
	// Look up the existing row first so the configuration keeps its identity
	// across edits instead of relying on a database-level upsert.
	var existing model.StoreConfig
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", cfg.OwnerID).
		First(&existing).Error
	switch {
	case err == nil:
		cfg.ID = existing.ID
		cfg.CreatedAt = existing.CreatedAt
		return s.db.WithContext(ctx).Save(cfg).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		cfg.ID = 0
		return s.db.WithContext(ctx).Create(cfg).Error
	default:
		return err
	}
}
