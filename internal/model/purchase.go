package model

import (
	"time"
)

// Purchase records a restock from a supplier. Rows are immutable once created;
// the referenced product's stock is increased by Quantity as part of the same
// store transaction.
type Purchase struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	OwnerID       uint      `json:"owner_id" gorm:"index;not null"`
	ProductID     uint      `json:"product_id" gorm:"index;not null"`
	Product       Product   `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`
	Supplier      string    `json:"supplier" gorm:"type:varchar(255);not null"`
	Quantity      int       `json:"quantity" gorm:"not null"`
	PurchasePrice float64   `json:"purchase_price" gorm:"not null"`
	PurchaseDate  time.Time `json:"purchase_date" gorm:"index;autoCreateTime"`
}
