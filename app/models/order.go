package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order groups the sales created together by one checkout.
type Order struct {
	ID            uint            `gorm:"primaryKey"                  json:"id"`
	CustomerName  *string         `gorm:"size:255"                    json:"customer_name"`
	CustomerEmail *string         `gorm:"size:255"                    json:"customer_email"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CreatedAt     time.Time       `gorm:"index"                       json:"created_at"`
	Sales         []Sale          `gorm:"foreignKey:OrderID"          json:"sales"`
}

// Sale is one sold line. UnitPrice is the product price at sale time and
// never changes afterwards.
type Sale struct {
	ID        uint            `gorm:"primaryKey"                  json:"id"`
	ProductID uint            `gorm:"not null;index"              json:"product_id"`
	Product   Product         `gorm:"foreignKey:ProductID"        json:"product"`
	Quantity  int             `gorm:"not null"                    json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Date      time.Time       `gorm:"not null;index"              json:"date"`
	OrderID   *uint           `gorm:"index"                       json:"order_id"`
}

// LineTotal is Quantity × UnitPrice.
func (s Sale) LineTotal() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
