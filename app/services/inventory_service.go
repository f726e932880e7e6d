package services

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/pkg/event"
)

// InventoryInput sets the absolute stock of a product.
type InventoryInput struct {
	ProductID uint
	Quantity  int
}

// InventoryService owns stock counters.
type InventoryService struct {
	db        *gorm.DB
	inventory *repositories.InventoryRepository
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db, inventory: repositories.NewInventoryRepository(db)}
}

func (s *InventoryService) List(ctx context.Context, f repositories.InventoryFilter) ([]models.Inventory, error) {
	return s.inventory.List(ctx, f)
}

func (s *InventoryService) LowStock(ctx context.Context, threshold int) ([]models.Inventory, error) {
	return s.inventory.LowStock(ctx, threshold)
}

// Upsert overwrites the product's quantity, creating the row if needed.
func (s *InventoryService) Upsert(ctx context.Context, in InventoryInput) (models.Inventory, error) {
	var inv models.Inventory

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := findProduct(tx, in.ProductID)
		if err != nil {
			return err
		}

		row := models.Inventory{
			ProductID:   product.ID,
			Quantity:    in.Quantity,
			LastUpdated: time.Now().UTC(),
		}
		err = tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"quantity", "last_updated"}),
			}).
			Create(&row).Error
		if err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", product.ID).Take(&inv).Error; err != nil {
			return err
		}
		inv.Product = product
		return nil
	})
	if err != nil {
		return models.Inventory{}, err
	}

	event.Fire(ctx, EventInventoryUpdated, StockLevel{ProductID: inv.ProductID, Quantity: inv.Quantity})
	return inv, nil
}
