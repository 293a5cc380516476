package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inventory-service/internal/model"
	"inventory-service/internal/validate"
)

func setupGormStore(t *testing.T) *GormStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "inventory_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	s := NewGormStore(db)
	if err := s.Migrate(); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return s
}

func createTestProduct(t *testing.T, s *GormStore, ownerID uint, stock int) model.Product {
	t.Helper()
	p := model.Product{
		OwnerID:       ownerID,
		Name:          "Cotton Saree",
		Category:      "Saree",
		PurchasePrice: 1500,
		SellingPrice:  2200,
		Stock:         stock,
	}
	require.NoError(t, s.CreateProduct(context.Background(), &p))
	return p
}

func TestProductRoundTrip(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	p := model.Product{
		OwnerID:          1,
		Name:             "Cotton Saree",
		Category:         "Saree",
		PurchasePrice:    1500,
		SellingPrice:     2200,
		Stock:            5,
		CustomAttributes: model.AttributeMap{"Color": "Red"},
	}
	require.NoError(t, validate.Product(&p))
	require.NoError(t, s.CreateProduct(ctx, &p))

	assert.NotZero(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := s.GetProduct(ctx, 1, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cotton Saree", got.Name)
	assert.Equal(t, "Saree", got.Category)
	assert.InDelta(t, 1500, got.PurchasePrice, 1e-9)
	assert.InDelta(t, 2200, got.SellingPrice, 1e-9)
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, "Red", got.CustomAttributes["Color"])
}

func TestProductOwnerScoping(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	p := createTestProduct(t, s, 1, 5)

	_, err := s.GetProduct(ctx, 2, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.DeleteProduct(ctx, 2, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	other := p
	other.OwnerID = 2
	other.Name = "Hijacked"
	assert.ErrorIs(t, s.UpdateProduct(ctx, &other), ErrNotFound)
}

func TestCreatePurchaseIncrementsStock(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	p := createTestProduct(t, s, 1, 5)

	purchase := model.Purchase{
		OwnerID:       1,
		ProductID:     p.ID,
		Supplier:      "Dhaka Textiles",
		Quantity:      10,
		PurchasePrice: 1500,
	}
	require.NoError(t, s.CreatePurchase(ctx, &purchase))
	assert.NotZero(t, purchase.ID)

	got, err := s.GetProduct(ctx, 1, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Stock)

	purchases, err := s.ListPurchases(ctx, 1)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "Cotton Saree", purchases[0].Product.Name)
}

func TestCreatePurchaseMissingProduct(t *testing.T) {
	s := setupGormStore(t)

	purchase := model.Purchase{OwnerID: 1, ProductID: 999, Supplier: "Dhaka Textiles", Quantity: 1}
	assert.ErrorIs(t, s.CreatePurchase(context.Background(), &purchase), ErrNotFound)
}

func TestCreateSaleDecrementsStock(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	p := createTestProduct(t, s, 1, 5)

	sale := model.Sale{
		OwnerID:      1,
		ProductID:    p.ID,
		Quantity:     2,
		SellingPrice: 2200,
		TotalPrice:   4400,
	}
	require.NoError(t, s.CreateSale(ctx, &sale))

	got, err := s.GetProduct(ctx, 1, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)

	sales, err := s.ListSales(ctx, 1)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.InDelta(t, 4400, sales[0].TotalPrice, 1e-9)
	assert.InDelta(t, 1500, sales[0].Product.PurchasePrice, 1e-9)
}

func TestCreateSaleInsufficientStockWritesNothing(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	p := createTestProduct(t, s, 1, 5)

	sale := model.Sale{OwnerID: 1, ProductID: p.ID, Quantity: 6, SellingPrice: 2200, TotalPrice: 13200}
	assert.ErrorIs(t, s.CreateSale(ctx, &sale), validate.ErrInsufficientStock)

	got, err := s.GetProduct(ctx, 1, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)

	sales, err := s.ListSales(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestCreateSaleExactStockAllowed(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	p := createTestProduct(t, s, 1, 5)

	sale := model.Sale{OwnerID: 1, ProductID: p.ID, Quantity: 5, SellingPrice: 2200, TotalPrice: 11000}
	require.NoError(t, s.CreateSale(ctx, &sale))

	got, err := s.GetProduct(ctx, 1, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Stock)
}

func TestCreateSaleMissingProduct(t *testing.T) {
	s := setupGormStore(t)

	sale := model.Sale{OwnerID: 1, ProductID: 999, Quantity: 1, SellingPrice: 10, TotalPrice: 10}
	assert.ErrorIs(t, s.CreateSale(context.Background(), &sale), ErrNotFound)
}

func TestSaveConfigUpsertKeepsIdentity(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	_, err := s.GetConfig(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	cfg := model.StoreConfig{
		OwnerID:        1,
		StoreName:      "Mita Fashion",
		BusinessType:   "clothing",
		Categories:     model.StringList{"Saree", "Shirt"},
		UsesSizes:      true,
		SizeOptions:    model.StringList{"M", "L"},
		CurrencySymbol: "৳",
	}
	require.NoError(t, s.SaveConfig(ctx, &cfg))
	firstID := cfg.ID
	require.NotZero(t, firstID)

	updated := model.StoreConfig{
		OwnerID:        1,
		StoreName:      "Mita Fashion",
		BusinessType:   "food",
		Categories:     model.StringList{"Snacks"},
		CurrencySymbol: "৳",
	}
	require.NoError(t, s.SaveConfig(ctx, &updated))
	assert.Equal(t, firstID, updated.ID)

	got, err := s.GetConfig(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, firstID, got.ID)
	assert.Equal(t, "food", got.BusinessType)
	assert.Equal(t, model.StringList{"Snacks"}, got.Categories)

	// A second owner gets their own row.
	other := model.StoreConfig{OwnerID: 2, StoreName: "Other", BusinessType: "general"}
	require.NoError(t, s.SaveConfig(ctx, &other))
	assert.NotEqual(t, firstID, other.ID)
}
