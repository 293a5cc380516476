package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"inventory-service/internal/model"
	"inventory-service/internal/validate"
)

// MemStore is the fixture-set Store implementation: an in-memory table set
// selected explicitly at startup (DATA_SOURCE=fixture) and used as-is for the
// whole session. It is also the substitute gateway in handler tests.
type MemStore struct {
	mu        sync.Mutex
	products  map[uint]model.Product
	purchases map[uint]model.Purchase
	sales     map[uint]model.Sale
	configs   map[uint]model.StoreConfig // keyed by owner
	nextID    uint
}

// NewMemStore returns an empty fixture store.
func NewMemStore() *MemStore {
	return &MemStore{
		products:  make(map[uint]model.Product),
		purchases: make(map[uint]model.Purchase),
		sales:     make(map[uint]model.Sale),
		configs:   make(map[uint]model.StoreConfig),
	}
}

// Seed loads a small demo inventory for the given owner.
func (s *MemStore) Seed(ownerID uint) {
	now := time.Now()
	fixtures := []model.Product{
		{OwnerID: ownerID, Name: "Cotton Saree", Category: "Saree", PurchasePrice: 1500, SellingPrice: 2200, Stock: 5},
		{OwnerID: ownerID, Name: "Silk Saree", Category: "Saree", PurchasePrice: 3500, SellingPrice: 5000, Stock: 3},
		{OwnerID: ownerID, Name: "Denim Jeans", Category: "Jeans", Size: "L", PurchasePrice: 800, SellingPrice: 1400, Stock: 12},
	}
	for i := range fixtures {
		fixtures[i].CreatedAt = now
		fixtures[i].UpdatedAt = now
		_ = s.CreateProduct(context.Background(), &fixtures[i])
	}
}

func (s *MemStore) allocID() uint {
	s.nextID++
	return s.nextID
}

func (s *MemStore) ListProducts(_ context.Context, ownerID uint) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := make([]model.Product, 0)
	for _, p := range s.products {
		if p.OwnerID == ownerID {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	return products, nil
}

func (s *MemStore) GetProduct(_ context.Context, ownerID, id uint) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok || p.OwnerID != ownerID {
		return model.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *MemStore) CreateProduct(_ context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.allocID()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products[p.ID] = *p
	return nil
}

func (s *MemStore) UpdateProduct(_ context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.products[p.ID]
	if !ok || existing.OwnerID != p.OwnerID {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	s.products[p.ID] = *p
	return nil
}

func (s *MemStore) DeleteProduct(_ context.Context, ownerID, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok || p.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *MemStore) ListPurchases(_ context.Context, ownerID uint) ([]model.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	purchases := make([]model.Purchase, 0)
	for _, p := range s.purchases {
		if p.OwnerID == ownerID {
			p.Product = s.products[p.ProductID]
			purchases = append(purchases, p)
		}
	}
	sort.Slice(purchases, func(i, j int) bool {
		return purchases[i].PurchaseDate.After(purchases[j].PurchaseDate)
	})
	return purchases, nil
}

func (s *MemStore) CreatePurchase(_ context.Context, p *model.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[p.ProductID]
	if !ok || product.OwnerID != p.OwnerID {
		return ErrNotFound
	}
	product.Stock += p.Quantity
	product.UpdatedAt = time.Now()
	s.products[p.ProductID] = product

	p.ID = s.allocID()
	if p.PurchaseDate.IsZero() {
		p.PurchaseDate = time.Now()
	}
	s.purchases[p.ID] = *p
	return nil
}

func (s *MemStore) ListSales(_ context.Context, ownerID uint) ([]model.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sales := make([]model.Sale, 0)
	for _, sl := range s.sales {
		if sl.OwnerID == ownerID {
			sl.Product = s.products[sl.ProductID]
			sales = append(sales, sl)
		}
	}
	sort.Slice(sales, func(i, j int) bool {
		return sales[i].SaleDate.After(sales[j].SaleDate)
	})
	return sales, nil
}

func (s *MemStore) CreateSale(_ context.Context, sale *model.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[sale.ProductID]
	if !ok || product.OwnerID != sale.OwnerID {
		return ErrNotFound
	}
	// Same guard as the conditional decrement in the database-backed store.
	if product.Stock < sale.Quantity {
		return validate.ErrInsufficientStock
	}
	product.Stock -= sale.Quantity
	product.UpdatedAt = time.Now()
	s.products[sale.ProductID] = product

	sale.ID = s.allocID()
	if sale.SaleDate.IsZero() {
		sale.SaleDate = time.Now()
	}
	s.sales[sale.ID] = *sale
	return nil
}

func (s *MemStore) GetConfig(_ context.Context, ownerID uint) (model.StoreConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[ownerID]
	if !ok {
		return model.StoreConfig{}, ErrNotFound
	}
	return cfg, nil
}

func (s *MemStore) SaveConfig(_ context.Context, cfg *model.StoreConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if existing, ok := s.configs[cfg.OwnerID]; ok {
		cfg.ID = existing.ID
		cfg.CreatedAt = existing.CreatedAt
	} else {
		cfg.ID = s.allocID()
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now
	s.configs[cfg.OwnerID] = *cfg
	return nil
}
