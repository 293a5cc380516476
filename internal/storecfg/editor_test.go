package storecfg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-service/internal/model"
)

func editingEditor(t *testing.T) *Editor {
	t.Helper()
	e := NewEditor()
	e.Load(DefaultConfig(1))
	require.Equal(t, StateEditing, e.State())
	return e
}

func TestEditorStartsLoading(t *testing.T) {
	e := NewEditor()
	assert.Equal(t, StateLoading, e.State())
	assert.Error(t, e.SetStoreName("Mita Fashion"))
}

func TestEditorListEdits(t *testing.T) {
	e := editingEditor(t)

	require.NoError(t, e.AddCategory("Saree"))
	assert.ErrorIs(t, e.AddCategory("Saree"), ErrDuplicateEntry)
	require.NoError(t, e.RemoveCategory("Saree"))
	assert.ErrorIs(t, e.RemoveCategory("Saree"), ErrEntryNotFound)

	require.NoError(t, e.AddSizeOption("XL"))
	assert.ErrorIs(t, e.AddSizeOption("XL"), ErrDuplicateEntry)

	require.NoError(t, e.AddAttribute(model.AttributeDef{Name: "Color", Type: model.AttributeText}))
	assert.ErrorIs(t, e.AddAttribute(model.AttributeDef{Name: "Color", Type: model.AttributeSelect}), ErrDuplicateEntry)
	require.NoError(t, e.RemoveAttribute("Color"))
	assert.ErrorIs(t, e.RemoveAttribute("Color"), ErrEntryNotFound)
}

func TestEditorSubmitSuccess(t *testing.T) {
	e := editingEditor(t)
	require.NoError(t, e.SetStoreName("Mita Fashion"))

	err := e.Submit(func(cfg model.StoreConfig) (model.StoreConfig, error) {
		cfg.ID = 42
		return cfg, nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateSaved, e.State())
	assert.Equal(t, uint(42), e.Config().ID)
	assert.NoError(t, e.Err())

	// Any field change re-enters Editing.
	require.NoError(t, e.SetCurrencySymbol("$"))
	assert.Equal(t, StateEditing, e.State())
}

func TestEditorSubmitFailureRetainsError(t *testing.T) {
	e := editingEditor(t)

	saveErr := errors.New("gateway unavailable")
	err := e.Submit(func(model.StoreConfig) (model.StoreConfig, error) {
		return model.StoreConfig{}, saveErr
	})
	assert.ErrorIs(t, err, saveErr)
	assert.Equal(t, StateFailed, e.State())
	assert.ErrorIs(t, e.Err(), saveErr)

	// Editing again clears the state but the retry path goes through Submit.
	require.NoError(t, e.SetStoreName("Retry Store"))
	assert.Equal(t, StateEditing, e.State())

	err = e.Submit(func(cfg model.StoreConfig) (model.StoreConfig, error) {
		return cfg, nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateSaved, e.State())
	assert.NoError(t, e.Err())
}

func TestEditorSubmitRequiresEditing(t *testing.T) {
	e := NewEditor()
	err := e.Submit(func(cfg model.StoreConfig) (model.StoreConfig, error) {
		return cfg, nil
	})
	assert.Error(t, err)
}

func TestEditorBusinessTypeSwitch(t *testing.T) {
	e := editingEditor(t)
	require.NoError(t, e.SelectBusinessType("clothing"))
	require.NoError(t, e.SelectBusinessType("food"))

	cfg := e.Config()
	assert.Equal(t, "food", cfg.BusinessType)
	assert.False(t, cfg.UsesSizes)
}
