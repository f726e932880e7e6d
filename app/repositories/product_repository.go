package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/pkg/orm"
)

// ProductFilter narrows ListProducts. Zero values mean "no filter".
type ProductFilter struct {
	Name          string
	SKU           string
	CategoryName  string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	InStock       *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	SortBy        ProductSort
	SortOrder     string
}

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns products matching f with their category preloaded.
// Supplying InStock excludes products without an inventory row.
func (r *ProductRepository) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{}).Preload("Category")

	if f.CategoryName != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id")
	}
	if f.InStock != nil {
		q = q.Joins("JOIN inventory ON inventory.product_id = products.id")
		if *f.InStock {
			q = q.Where("inventory.quantity > 0")
		} else {
			q = q.Where("inventory.quantity <= 0")
		}
	}

	var products []models.Product
	err := q.Scopes(
		orm.Contains("products.name", f.Name),
		orm.Equals("products.sku", f.SKU),
		orm.Contains("categories.name", f.CategoryName),
		orm.Range("products.price", f.MinPrice, f.MaxPrice),
		orm.Range("products.created_at", f.CreatedAfter, f.CreatedBefore),
		orm.OrderBy(f.SortBy.column(), Descending(f.SortOrder)),
		orm.OrderBy("products.id", false),
	).Find(&products).Error
	return products, err
}

// Find returns one product with its category. Absent rows yield
// gorm.ErrRecordNotFound.
func (r *ProductRepository) Find(ctx context.Context, id uint) (models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&p, id).Error
	return p, err
}
