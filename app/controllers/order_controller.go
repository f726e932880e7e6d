package controllers

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/requests"
	"github.com/shashiranjanraj/shopadmin/app/resources"
	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/pkg/ctx"
	"github.com/shashiranjanraj/shopadmin/pkg/resource"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{service: services.NewOrderService(db)}
}

// Index GET /orders
func (ctl *OrderController) Index(c *ctx.Context) {
	orders, err := ctl.service.ListOrders(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resource.Collection(resources.Order, orders))
}

// Show GET /orders/{id}
func (ctl *OrderController) Show(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	order, err := ctl.service.FindOrder(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resources.Order(order))
}

// Store POST /orders
func (ctl *OrderController) Store(c *ctx.Context) {
	var input requests.OrderRequest
	if !c.BindJSON(&input) {
		return
	}

	order, err := ctl.service.CreateOrder(c.Context(), input.Input())
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(resources.Order(order))
}
