package migrations

import (
	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20250101000000_create_categories_table", &CreateCategoriesTable{})
	migration.Register("20250101000001_create_products_table", &CreateProductsTable{})
	migration.Register("20250101000002_create_inventory_table", &CreateInventoryTable{})
}

// -------- categories --------

type CreateCategoriesTable struct{}

func (m *CreateCategoriesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{})
}

func (m *CreateCategoriesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Category{})
}

// -------- products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Product{})
}

// -------- inventory --------

type CreateInventoryTable struct{}

func (m *CreateInventoryTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Inventory{})
}

func (m *CreateInventoryTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Inventory{})
}
