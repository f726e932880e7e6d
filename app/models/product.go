package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products. Names are unique.
type Category struct {
	ID   uint   `gorm:"primaryKey"                    json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

// Product is a catalogue entry. CategoryID must name an existing category
// when the product is created.
type Product struct {
	ID          uint            `gorm:"primaryKey"                  json:"id"`
	Name        string          `gorm:"size:255;not null;index"     json:"name"`
	CategoryID  uint            `gorm:"not null;index"              json:"category_id"`
	Category    Category        `gorm:"foreignKey:CategoryID"       json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description *string         `gorm:"type:text"                   json:"description"`
	SKU         *string         `gorm:"size:100;uniqueIndex"        json:"sku"`
	CreatedAt   time.Time       `gorm:"index"                       json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
