package routes

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/controllers"
	appgraphql "github.com/shashiranjanraj/shopadmin/app/graphql"
	"github.com/shashiranjanraj/shopadmin/pkg/ctx"
	"github.com/shashiranjanraj/shopadmin/pkg/graphql"
	"github.com/shashiranjanraj/shopadmin/pkg/router"
)

func RegisterAPI(r *router.Router, db *gorm.DB) error {
	home := controllers.NewHomeController(db)
	categories := controllers.NewCategoryController(db)
	products := controllers.NewProductController(db)
	inventory := controllers.NewInventoryController(db)
	sales := controllers.NewSaleController(db)
	orders := controllers.NewOrderController(db)

	r.Get("/", "home", ctx.Wrap(home.Index))
	r.Get("/healthz", "health", ctx.Wrap(home.Health))

	cat := r.Group("/categories")
	cat.Get("/", "categories.index", ctx.Wrap(categories.Index))
	cat.Post("/", "categories.store", ctx.Wrap(categories.Store))

	prod := r.Group("/products")
	prod.Get("/", "products.index", ctx.Wrap(products.Index))
	prod.Post("/", "products.store", ctx.Wrap(products.Store))
	prod.Get("/{id}", "products.show", ctx.Wrap(products.Show))

	inv := r.Group("/inventory")
	inv.Get("/", "inventory.index", ctx.Wrap(inventory.Index))
	inv.Post("/", "inventory.upsert", ctx.Wrap(inventory.Upsert))
	inv.Get("/low-stock", "inventory.low_stock", ctx.Wrap(inventory.LowStock))

	sale := r.Group("/sales")
	sale.Get("/", "sales.index", ctx.Wrap(sales.Index))
	sale.Post("/", "sales.store", ctx.Wrap(sales.Store))
	sale.Get("/revenue-summary", "sales.revenue_summary", ctx.Wrap(sales.RevenueSummary))
	sale.Get("/compare", "sales.compare", ctx.Wrap(sales.Compare))

	ord := r.Group("/orders")
	ord.Get("/", "orders.index", ctx.Wrap(orders.Index))
	ord.Post("/", "orders.store", ctx.Wrap(orders.Store))
	ord.Get("/{id}", "orders.show", ctx.Wrap(orders.Show))

	schema, err := graphql.NewSchema(appgraphql.Query(db))
	if err != nil {
		return fmt.Errorf("routes: graphql schema: %w", err)
	}
	r.Post("/graphql", "graphql", graphql.Handler(schema))
	return nil
}
