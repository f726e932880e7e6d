package models

import "time"

// Inventory is the stock counter of one product. Quantity may go negative.
type Inventory struct {
	ID          uint      `gorm:"primaryKey"                 json:"id"`
	ProductID   uint      `gorm:"not null;uniqueIndex"       json:"product_id"`
	Product     Product   `gorm:"foreignKey:ProductID"       json:"product"`
	Quantity    int       `gorm:"not null;default:0"         json:"quantity"`
	LastUpdated time.Time `gorm:"autoUpdateTime;index"       json:"last_updated"`
}

func (Inventory) TableName() string { return "inventory" }
