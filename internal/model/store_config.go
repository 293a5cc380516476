package model

import (
	"time"
)

// AttributeType enumerates the input kinds a custom attribute can take.
const (
	AttributeText   = "text"
	AttributeNumber = "number"
	AttributeSelect = "select"
)

// AttributeDef describes a user-defined extra field attached to products
// through the store configuration.
type AttributeDef struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// StoreConfig is the per-owner store configuration. Exactly one row exists
// per owner; saving goes through a lookup-then-update upsert so the row ID is
// stable across edits.
type StoreConfig struct {
	ID               uint          `json:"id" gorm:"primarykey"`
	OwnerID          uint          `json:"owner_id" gorm:"uniqueIndex;not null"`
	StoreName        string        `json:"store_name" gorm:"type:varchar(255);not null"`
	BusinessType     string        `json:"business_type" gorm:"type:varchar(50);not null"`
	Categories       StringList    `json:"categories" gorm:"type:text"`
	UsesSizes        bool          `json:"uses_sizes"`
	SizeOptions      StringList    `json:"size_options" gorm:"type:text"`
	CustomAttributes AttributeDefs `json:"custom_attributes" gorm:"type:text"`
	CurrencySymbol   string        `json:"currency_symbol" gorm:"type:varchar(10)"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
