package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
)

// ProductInput is a validated product-create payload.
type ProductInput struct {
	Name        string
	CategoryID  uint
	Price       decimal.Decimal
	Description *string
	SKU         *string
}

// CatalogService owns categories and products.
type CatalogService struct {
	db         *gorm.DB
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{
		db:         db,
		products:   repositories.NewProductRepository(db),
		categories: repositories.NewCategoryRepository(db),
	}
}

// CreateCategory inserts a category. A taken name yields ErrDuplicate.
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	c := models.Category{Name: name}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return models.Category{}, translate(err, fmt.Sprintf("category %q", name))
	}
	return c, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.All(ctx)
}

// CreateProduct inserts a product after checking its category exists.
func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	var p models.Product

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, in.CategoryID).Error; err != nil {
			return notFound(ErrCategoryNotFound, in.CategoryID, err)
		}

		p = models.Product{
			Name:        in.Name,
			CategoryID:  category.ID,
			Price:       in.Price.Round(2),
			Description: in.Description,
			SKU:         in.SKU,
		}
		if err := tx.Omit(clause.Associations).Create(&p).Error; err != nil {
			return translate(err, "product sku")
		}
		p.Category = category
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, f repositories.ProductFilter) ([]models.Product, error) {
	return s.products.List(ctx, f)
}

// FindProduct returns ErrProductNotFound (as *NotFoundError) for a missing id.
func (s *CatalogService) FindProduct(ctx context.Context, id uint) (models.Product, error) {
	p, err := s.products.Find(ctx, id)
	if err != nil {
		return models.Product{}, notFound(ErrProductNotFound, id, err)
	}
	return p, nil
}
