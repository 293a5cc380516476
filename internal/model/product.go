package model

import (
	"time"
)

// Product represents a single catalog item held in stock by a store.
type Product struct {
	ID               uint         `json:"id" gorm:"primarykey"`
	OwnerID          uint         `json:"owner_id" gorm:"index;not null;comment:'Store account this product belongs to'"`
	Name             string       `json:"name" gorm:"type:varchar(255);not null"`
	Category         string       `json:"category" gorm:"type:varchar(100);not null"`
	Size             string       `json:"size,omitempty" gorm:"type:varchar(50)"`
	PurchasePrice    float64      `json:"purchase_price" gorm:"not null"`
	SellingPrice     float64      `json:"selling_price" gorm:"not null"`
	Stock            int          `json:"stock" gorm:"default:0"`
	CustomAttributes AttributeMap `json:"custom_attributes,omitempty" gorm:"type:text"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
