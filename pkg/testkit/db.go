// Package testkit holds helpers shared by package tests: a migrated
// in-memory database, row fixtures, and HTTP request/envelope helpers.
package testkit

import (
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/models"
	_ "github.com/shashiranjanraj/shopadmin/database/migrations"
	"github.com/shashiranjanraj/shopadmin/pkg/database"
	"github.com/shashiranjanraj/shopadmin/pkg/migration"
	"github.com/shashiranjanraj/shopadmin/pkg/orm"
)

// DB returns a fresh in-memory SQLite database with every migration applied.
// The pool holds a single connection so the memory database lives for the
// whole test; code under test must run transactional work on the tx handle.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", "file::memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, orm.Instrument(db))
	require.NoError(t, migration.New(db).WithOutput(io.Discard).Run())
	return db
}

// Category inserts a category.
func Category(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	c := models.Category{Name: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

// Product inserts a product priced at price (a decimal string). An empty
// sku stores NULL.
func Product(t *testing.T, db *gorm.DB, category models.Category, name, price, sku string) models.Product {
	t.Helper()
	p := models.Product{
		Name:       name,
		CategoryID: category.ID,
		Price:      decimal.RequireFromString(price),
	}
	if sku != "" {
		p.SKU = &sku
	}
	require.NoError(t, db.Omit("Category").Create(&p).Error)
	p.Category = category
	return p
}

// Stock inserts an inventory row.
func Stock(t *testing.T, db *gorm.DB, product models.Product, qty int) models.Inventory {
	t.Helper()
	inv := models.Inventory{ProductID: product.ID, Quantity: qty}
	require.NoError(t, db.Omit("Product").Create(&inv).Error)
	return inv
}

// Quantity reads the current stock of productID.
func Quantity(t *testing.T, db *gorm.DB, productID uint) int {
	t.Helper()
	var inv models.Inventory
	require.NoError(t, db.Where("product_id = ?", productID).First(&inv).Error)
	return inv.Quantity
}

// Count returns the number of rows in model's table.
func Count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
