package seeders

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/pkg/logger"
)

func init() {
	Register("demo", SeedDemo)
}

type demoProduct struct {
	name, category, price, description, sku string
	stock                                   int
}

var demoProducts = []demoProduct{
	{"Smart Watch Series 5", "Electronics", "199.99", "Fitness tracking, heart rate monitor, GPS", "ELEC-001", 150},
	{"Bluetooth Earbuds X1", "Electronics", "89.99", "Noise cancelling, 20-hour battery life", "ELEC-002", 80},
	{"Men's Running Sneakers", "Fashion", "129.50", "Comfortable athletic shoes with shock absorption", "FASH-001", 200},
}

// SeedDemo loads three categories, three stocked products and two orders
// through the service layer. It does nothing when categories already exist.
func SeedDemo(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&models.Category{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		logger.WithCtx(ctx).Info("seed: categories present, skipping demo data")
		return nil
	}

	catalog := services.NewCatalogService(db)
	inventory := services.NewInventoryService(db)
	orders := services.NewOrderService(db)

	categories := map[string]uint{}
	for _, name := range []string{"Electronics", "Fashion", "Health"} {
		c, err := catalog.CreateCategory(ctx, name)
		if err != nil {
			return err
		}
		categories[name] = c.ID
	}

	ids := make([]uint, len(demoProducts))
	for i, d := range demoProducts {
		description, sku := d.description, d.sku
		p, err := catalog.CreateProduct(ctx, services.ProductInput{
			Name:        d.name,
			CategoryID:  categories[d.category],
			Price:       decimal.RequireFromString(d.price),
			Description: &description,
			SKU:         &sku,
		})
		if err != nil {
			return err
		}
		ids[i] = p.ID

		if _, err := inventory.Upsert(ctx, services.InventoryInput{ProductID: p.ID, Quantity: d.stock}); err != nil {
			return err
		}
	}

	for _, o := range []struct {
		name, email string
		lines       [][2]int // product index, quantity
	}{
		{"John Doe", "john@example.com", [][2]int{{0, 1}, {1, 2}}},
		{"Sara Smith", "sara@example.com", [][2]int{{2, 3}}},
	} {
		name, email := o.name, o.email
		in := services.OrderInput{CustomerName: &name, CustomerEmail: &email}
		for _, l := range o.lines {
			in.Lines = append(in.Lines, services.OrderLine{ProductID: ids[l[0]], Quantity: l[1]})
		}
		if _, err := orders.CreateOrder(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
