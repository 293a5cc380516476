// Package storecfg resolves the effective store configuration used to drive
// the product forms: business-type templates, list edits on the in-progress
// configuration, and the settings-form lifecycle.
package storecfg

import (
	"errors"

	"inventory-service/internal/model"
)

var (
	ErrUnknownBusinessType = errors.New("unknown business type")
	ErrDuplicateEntry      = errors.New("entry already exists")
	ErrEntryNotFound       = errors.New("entry not found")
)

// DefaultConfig is the configuration a store starts from before the owner has
// saved anything.
func DefaultConfig(ownerID uint) model.StoreConfig {
	return model.StoreConfig{
		OwnerID:          ownerID,
		StoreName:        "Universal Store",
		BusinessType:     "general",
		Categories:       model.StringList{"General"},
		SizeOptions:      model.StringList{},
		CustomAttributes: model.AttributeDefs{},
		CurrencySymbol:   "৳",
	}
}

// ApplyBusinessType overwrites the template-driven fields of cfg with the
// defaults of the given business type: categories, size usage, size options
// and custom attributes are fully replaced, discarding prior customization.
// StoreName and CurrencySymbol are never touched.
func ApplyBusinessType(cfg *model.StoreConfig, businessTypeID string) error {
	bt, ok := BusinessTypeByID(businessTypeID)
	if !ok {
		return ErrUnknownBusinessType
	}
	cfg.BusinessType = bt.ID
	cfg.Categories = append(model.StringList{}, bt.DefaultCategories...)
	cfg.UsesSizes = bt.UsesSizes
	cfg.SizeOptions = append(model.StringList{}, bt.DefaultSizeOptions...)
	cfg.CustomAttributes = append(model.AttributeDefs{}, bt.SuggestedAttributes...)
	return nil
}

// addEntry appends value to list unless an exact-string duplicate exists.
func addEntry(list model.StringList, value string) (model.StringList, error) {
	for _, v := range list {
		if v == value {
			return list, ErrDuplicateEntry
		}
	}
	return append(list, value), nil
}

// removeEntry removes the first exact match of value from list.
func removeEntry(list model.StringList, value string) (model.StringList, error) {
	for i, v := range list {
		if v == value {
			return append(list[:i:i], list[i+1:]...), nil
		}
	}
	return list, ErrEntryNotFound
}
