package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/pkg/orm"
)

// InventoryFilter narrows ListInventory. Zero values mean "no filter".
type InventoryFilter struct {
	ProductName  string
	CategoryName string
	SKU          string
	MinQty       *int
	MaxQty       *int
	SortBy       InventorySort
	SortOrder    string
}

// InventoryRepository handles database operations for Inventory.
type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// List returns inventory rows matching f, each with product and category.
func (r *InventoryRepository) List(ctx context.Context, f InventoryFilter) ([]models.Inventory, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Inventory{}).
		Preload("Product.Category").
		Joins("JOIN products ON products.id = inventory.product_id")

	if f.CategoryName != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id")
	}

	var rows []models.Inventory
	err := q.Scopes(
		orm.Contains("products.name", f.ProductName),
		orm.Contains("categories.name", f.CategoryName),
		orm.Equals("products.sku", f.SKU),
		orm.Range("inventory.quantity", f.MinQty, f.MaxQty),
		orm.OrderBy(f.SortBy.column(), Descending(f.SortOrder)),
		orm.OrderBy("inventory.id", false),
	).Find(&rows).Error
	return rows, err
}

// LowStock returns rows with quantity <= threshold, lowest stock first.
func (r *InventoryRepository) LowStock(ctx context.Context, threshold int) ([]models.Inventory, error) {
	var rows []models.Inventory
	err := r.db.WithContext(ctx).
		Preload("Product.Category").
		Where("quantity <= ?", threshold).
		Order("quantity").
		Order("id").
		Find(&rows).Error
	return rows, err
}

// FindByProduct returns the inventory row of productID. Absent rows yield
// gorm.ErrRecordNotFound.
func (r *InventoryRepository) FindByProduct(ctx context.Context, productID uint) (models.Inventory, error) {
	var inv models.Inventory
	err := r.db.WithContext(ctx).
		Preload("Product.Category").
		Where("product_id = ?", productID).
		First(&inv).Error
	return inv, err
}
