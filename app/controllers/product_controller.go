package controllers

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/app/requests"
	"github.com/shashiranjanraj/shopadmin/app/resources"
	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/pkg/ctx"
	"github.com/shashiranjanraj/shopadmin/pkg/resource"
)

type ProductController struct {
	service *services.CatalogService
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{service: services.NewCatalogService(db)}
}

// Index GET /products
func (ctl *ProductController) Index(c *ctx.Context) {
	q := c.QueryReader()
	filter := repositories.ProductFilter{
		Name:          q.String("name"),
		SKU:           q.String("sku"),
		CategoryName:  q.String("category_name"),
		MinPrice:      q.Decimal("min_price"),
		MaxPrice:      q.Decimal("max_price"),
		InStock:       q.Bool("in_stock"),
		CreatedAfter:  q.Time("created_after"),
		CreatedBefore: q.Time("created_before"),
		SortBy:        repositories.ParseProductSort(q.String("sort_by")),
		SortOrder:     q.String("sort_order"),
	}
	if queryFailed(c, q.Errors()) {
		return
	}

	products, err := ctl.service.ListProducts(c.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resource.Collection(resources.Product, products))
}

// Show GET /products/{id}
func (ctl *ProductController) Show(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	product, err := ctl.service.FindProduct(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resources.Product(product))
}

// Store POST /products
func (ctl *ProductController) Store(c *ctx.Context) {
	var input requests.ProductRequest
	if !c.BindJSON(&input) {
		return
	}

	product, err := ctl.service.CreateProduct(c.Context(), input.Input())
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(resources.Product(product))
}
