package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/pkg/event"
)

// OrderLine is one (product, quantity) pair of an order.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

// OrderInput is a validated order-create payload.
type OrderInput struct {
	CustomerName  *string
	CustomerEmail *string
	Lines         []OrderLine
}

// OrderService creates and reads orders.
type OrderService struct {
	db     *gorm.DB
	orders *repositories.OrderRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db, orders: repositories.NewOrderRepository(db)}
}

// CreateOrder prices every line at the current product price, decrements
// stock, and writes the order with its sales. Any missing product rolls the
// whole order back.
func (s *OrderService) CreateOrder(ctx context.Context, in OrderInput) (models.Order, error) {
	var (
		order  models.Order
		levels []StockLevel
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		total := decimal.Zero
		sales := make([]models.Sale, 0, len(in.Lines))

		for _, line := range in.Lines {
			product, err := findProduct(tx, line.ProductID)
			if err != nil {
				return err
			}

			sale := models.Sale{
				ProductID: product.ID,
				Product:   product,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				Date:      now,
			}
			total = total.Add(sale.LineTotal())
			sales = append(sales, sale)

			level, err := decrementStock(ctx, tx, product.ID, line.Quantity)
			if err != nil {
				return err
			}
			if level != nil {
				levels = append(levels, *level)
			}
		}

		order = models.Order{
			CustomerName:  in.CustomerName,
			CustomerEmail: in.CustomerEmail,
			TotalAmount:   total.Round(2),
		}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i := range sales {
			sales[i].OrderID = &order.ID
		}
		if len(sales) > 0 {
			if err := tx.Omit(clause.Associations).Create(&sales).Error; err != nil {
				return fmt.Errorf("insert order lines: %w", err)
			}
		}
		order.Sales = sales
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	event.Fire(ctx, EventOrderCreated, OrderCreated{Order: order, Stock: levels})
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.All(ctx)
}

// FindOrder returns ErrOrderNotFound (as *NotFoundError) for a missing id.
func (s *OrderService) FindOrder(ctx context.Context, id uint) (models.Order, error) {
	o, err := s.orders.Find(ctx, id)
	if err != nil {
		return models.Order{}, notFound(ErrOrderNotFound, id, err)
	}
	return o, nil
}
