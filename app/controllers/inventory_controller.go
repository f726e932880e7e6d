package controllers

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/app/requests"
	"github.com/shashiranjanraj/shopadmin/app/resources"
	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/config"
	"github.com/shashiranjanraj/shopadmin/pkg/ctx"
	"github.com/shashiranjanraj/shopadmin/pkg/resource"
)

type InventoryController struct {
	service *services.InventoryService
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{service: services.NewInventoryService(db)}
}

// Index GET /inventory
func (ctl *InventoryController) Index(c *ctx.Context) {
	q := c.QueryReader()
	filter := repositories.InventoryFilter{
		ProductName:  q.String("product_name"),
		CategoryName: q.String("category_name"),
		SKU:          q.String("sku"),
		MinQty:       q.Int("min_qty"),
		MaxQty:       q.Int("max_qty"),
		SortBy:       repositories.ParseInventorySort(q.String("sort_by")),
		SortOrder:    q.String("sort_order"),
	}
	if queryFailed(c, q.Errors()) {
		return
	}

	rows, err := ctl.service.List(c.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resource.Collection(resources.Inventory, rows))
}

// LowStock GET /inventory/low-stock
func (ctl *InventoryController) LowStock(c *ctx.Context) {
	q := c.QueryReader()
	threshold := config.LowStockThreshold()
	if t := q.Int("threshold"); t != nil {
		threshold = *t
	}
	if queryFailed(c, q.Errors()) {
		return
	}

	rows, err := ctl.service.LowStock(c.Context(), threshold)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resource.Collection(resources.Inventory, rows))
}

// Upsert POST /inventory
func (ctl *InventoryController) Upsert(c *ctx.Context) {
	var input requests.InventoryRequest
	if !c.BindJSON(&input) {
		return
	}

	row, err := ctl.service.Upsert(c.Context(), input.Input())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resources.Inventory(row))
}
