package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/pkg/event"
)

// SaleInput records one standalone sale. OrderID is stored as given, without
// checking that the order exists. A nil Date means now.
type SaleInput struct {
	ProductID uint
	Quantity  int
	OrderID   *uint
	Date      *time.Time
}

// SalesService records and lists sales.
type SalesService struct {
	db    *gorm.DB
	sales *repositories.SaleRepository
}

func NewSalesService(db *gorm.DB) *SalesService {
	return &SalesService{db: db, sales: repositories.NewSaleRepository(db)}
}

// RecordSale snapshots the product price, inserts the sale and decrements
// stock in one transaction.
func (s *SalesService) RecordSale(ctx context.Context, in SaleInput) (models.Sale, error) {
	var (
		sale  models.Sale
		level *StockLevel
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := findProduct(tx, in.ProductID)
		if err != nil {
			return err
		}

		date := time.Now().UTC()
		if in.Date != nil {
			date = in.Date.UTC()
		}

		sale = models.Sale{
			ProductID: product.ID,
			Quantity:  in.Quantity,
			UnitPrice: product.Price,
			Date:      date,
			OrderID:   in.OrderID,
		}
		if err := tx.Omit(clause.Associations).Create(&sale).Error; err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}

		level, err = decrementStock(ctx, tx, product.ID, in.Quantity)
		if err != nil {
			return err
		}
		sale.Product = product
		return nil
	})
	if err != nil {
		return models.Sale{}, err
	}

	payload := SaleRecorded{Sale: sale}
	if level != nil {
		payload.Stock = []StockLevel{*level}
	}
	event.Fire(ctx, EventSaleRecorded, payload)
	return sale, nil
}

func (s *SalesService) List(ctx context.Context, f repositories.SaleFilter) ([]models.Sale, error) {
	return s.sales.List(ctx, f)
}
