// Package resources shapes models for the HTTP and GraphQL surfaces. Nested
// relations point one way only: products carry their category, inventory
// and sales carry their product, orders carry their sales.
package resources

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/pkg/resource"
)

// Money renders d as a JSON number with two decimals.
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func Category(c models.Category) resource.Map {
	return resource.Map{
		"id":   c.ID,
		"name": c.Name,
	}
}

func Product(p models.Product) resource.Map {
	return resource.Map{
		"id":          p.ID,
		"name":        p.Name,
		"category_id": p.CategoryID,
		"category":    resource.Item(Category, p.Category),
		"price":       Money(p.Price),
		"description": p.Description,
		"sku":         p.SKU,
		"created_at":  timestamp(p.CreatedAt),
	}
}

func Inventory(i models.Inventory) resource.Map {
	return resource.Map{
		"id":           i.ID,
		"product_id":   i.ProductID,
		"product":      resource.Item(Product, i.Product),
		"quantity":     i.Quantity,
		"last_updated": timestamp(i.LastUpdated),
	}
}

func Sale(s models.Sale) resource.Map {
	return resource.Map{
		"id":         s.ID,
		"product_id": s.ProductID,
		"product":    resource.Item(Product, s.Product),
		"quantity":   s.Quantity,
		"unit_price": Money(s.UnitPrice),
		"date":       timestamp(s.Date),
		"order_id":   s.OrderID,
	}
}

func Order(o models.Order) resource.Map {
	return resource.Map{
		"id":             o.ID,
		"customer_name":  o.CustomerName,
		"customer_email": o.CustomerEmail,
		"total_amount":   Money(o.TotalAmount),
		"created_at":     timestamp(o.CreatedAt),
		"sales":          resource.Collection(Sale, o.Sales),
	}
}

func RevenueBucket(b repositories.RevenueBucket) resource.Map {
	return resource.Map{
		"period":  b.Period,
		"revenue": Money(b.Revenue),
	}
}

// RevenueGroup names the label key after the grouping, so a category
// comparison yields {"category": ..., "revenue": ...}.
func RevenueGroup(g repositories.Grouping) resource.Transformer[repositories.RevenueGroup] {
	key := string(g)
	return func(r repositories.RevenueGroup) resource.Map {
		return resource.Map{
			key:       r.Label,
			"revenue": Money(r.Revenue),
		}
	}
}
