package storecfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-service/internal/model"
)

func TestBusinessTypeCatalog(t *testing.T) {
	types := BusinessTypes()
	require.NotEmpty(t, types)

	bt, ok := BusinessTypeByID("clothing")
	require.True(t, ok)
	assert.True(t, bt.UsesSizes)
	assert.Contains(t, bt.DefaultCategories, "Shirt")

	_, ok = BusinessTypeByID("shipyard")
	assert.False(t, ok)
}

func TestApplyBusinessTypeFullReplace(t *testing.T) {
	cfg := model.StoreConfig{
		OwnerID:        1,
		StoreName:      "Mita Fashion",
		CurrencySymbol: "৳",
	}
	require.NoError(t, ApplyBusinessType(&cfg, "clothing"))

	// Customize, then switch to food: the four template fields are fully
	// replaced, the owner's name and currency survive.
	cfg.Categories = append(cfg.Categories, "Panjabi")
	require.NoError(t, ApplyBusinessType(&cfg, "food"))

	food, _ := BusinessTypeByID("food")
	assert.Equal(t, "food", cfg.BusinessType)
	assert.Equal(t, model.StringList(food.DefaultCategories), cfg.Categories)
	assert.False(t, cfg.UsesSizes)
	assert.Empty(t, cfg.SizeOptions)
	assert.Equal(t, model.AttributeDefs(food.SuggestedAttributes), cfg.CustomAttributes)

	assert.Equal(t, "Mita Fashion", cfg.StoreName)
	assert.Equal(t, "৳", cfg.CurrencySymbol)
}

func TestApplyBusinessTypeUnknown(t *testing.T) {
	cfg := DefaultConfig(1)
	assert.ErrorIs(t, ApplyBusinessType(&cfg, "shipyard"), ErrUnknownBusinessType)
}

func TestApplyBusinessTypeDoesNotAliasTemplate(t *testing.T) {
	var a, b model.StoreConfig
	require.NoError(t, ApplyBusinessType(&a, "clothing"))
	require.NoError(t, ApplyBusinessType(&b, "clothing"))

	a.Categories[0] = "Mutated"
	assert.NotEqual(t, "Mutated", b.Categories[0])

	fresh, _ := BusinessTypeByID("clothing")
	assert.NotEqual(t, "Mutated", fresh.DefaultCategories[0])
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(7)
	assert.Equal(t, uint(7), cfg.OwnerID)
	assert.Equal(t, "general", cfg.BusinessType)
	assert.NotEmpty(t, cfg.StoreName)
}
