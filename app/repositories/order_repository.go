package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/models"
)

// OrderRepository handles order reads.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func withLines(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Sales", func(db *gorm.DB) *gorm.DB { return db.Order("sales.id") }).
		Preload("Sales.Product.Category")
}

// All returns every order in id order with its sales nested.
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Scopes(withLines).Order("id").Find(&orders).Error
	return orders, err
}

// Find returns one order with its sales. Absent rows yield
// gorm.ErrRecordNotFound.
func (r *OrderRepository) Find(ctx context.Context, id uint) (models.Order, error) {
	var o models.Order
	err := r.db.WithContext(ctx).Scopes(withLines).First(&o, id).Error
	return o, err
}
