package controllers

import (
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/requests"
	"github.com/shashiranjanraj/shopadmin/app/resources"
	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/pkg/ctx"
	"github.com/shashiranjanraj/shopadmin/pkg/resource"
)

type CategoryController struct {
	service *services.CatalogService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{service: services.NewCatalogService(db)}
}

// Index GET /categories
func (ctl *CategoryController) Index(c *ctx.Context) {
	categories, err := ctl.service.ListCategories(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resource.Collection(resources.Category, categories))
}

// Store POST /categories
func (ctl *CategoryController) Store(c *ctx.Context) {
	var input requests.CategoryRequest
	if !c.BindJSON(&input) {
		return
	}

	category, err := ctl.service.CreateCategory(c.Context(), strings.TrimSpace(input.Name))
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(resources.Category(category))
}
