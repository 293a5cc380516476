package model

import (
	"time"
)

// Sale records a sold quantity of a product. Rows are immutable once created;
// the referenced product's stock is decremented by Quantity with a conditional
// update so stock can never go below zero.
type Sale struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	OwnerID      uint      `json:"owner_id" gorm:"index;not null"`
	ProductID    uint      `json:"product_id" gorm:"index;not null"`
	Product      Product   `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	SellingPrice float64   `json:"selling_price" gorm:"not null"`
	TotalPrice   float64   `json:"total_price" gorm:"not null"`
	SaleDate     time.Time `json:"sale_date" gorm:"index;autoCreateTime"`
}
