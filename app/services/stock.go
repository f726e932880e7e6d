package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/pkg/logger"
)

// findProduct loads a product and its category on tx.
func findProduct(tx *gorm.DB, id uint) (models.Product, error) {
	var p models.Product
	if err := tx.Preload("Category").First(&p, id).Error; err != nil {
		return models.Product{}, notFound(ErrProductNotFound, id, err)
	}
	return p, nil
}

// decrementStock subtracts qty from the product's inventory in one UPDATE, so
// concurrent sales never overwrite each other. A product without an
// inventory row is left alone and nil is returned.
func decrementStock(ctx context.Context, tx *gorm.DB, productID uint, qty int) (*StockLevel, error) {
	res := tx.Model(&models.Inventory{}).
		Where("product_id = ?", productID).
		Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity - ?", qty),
			"last_updated": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("decrement stock of product %d: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		logger.WithCtx(ctx).Debug("stock: no inventory row, quantity unchanged", "product_id", productID)
		return nil, nil
	}

	var inv models.Inventory
	if err := tx.Select("quantity").Where("product_id = ?", productID).Take(&inv).Error; err != nil {
		return nil, fmt.Errorf("read stock of product %d: %w", productID, err)
	}
	return &StockLevel{ProductID: productID, Quantity: inv.Quantity}, nil
}
