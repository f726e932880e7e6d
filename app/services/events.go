package services

import "github.com/shashiranjanraj/shopadmin/app/models"

// Event names fired after a successful commit.
const (
	EventSaleRecorded     = "sale.recorded"
	EventOrderCreated     = "order.created"
	EventInventoryUpdated = "inventory.updated"
)

// StockLevel is the quantity of a product right after a change.
type StockLevel struct {
	ProductID uint
	Quantity  int
}

// SaleRecorded is the payload of EventSaleRecorded. Stock is empty when the
// product has no inventory row.
type SaleRecorded struct {
	Sale  models.Sale
	Stock []StockLevel
}

// OrderCreated is the payload of EventOrderCreated.
type OrderCreated struct {
	Order models.Order
	Stock []StockLevel
}
