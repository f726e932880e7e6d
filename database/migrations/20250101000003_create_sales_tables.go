package migrations

import (
	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20250101000003_create_orders_table", &CreateOrdersTable{})
	migration.Register("20250101000004_create_sales_table", &CreateSalesTable{})
}

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Order{})
}

type CreateSalesTable struct{}

func (m *CreateSalesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Sale{})
}

func (m *CreateSalesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Sale{})
}
