// Package graphql exposes the read side of the shop as a GraphQL query type.
package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/config"
	"github.com/shashiranjanraj/shopadmin/pkg/bind"
)

func field[T any](typ graphql.Output, get func(T) interface{}) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			src, ok := p.Source.(T)
			if !ok {
				return nil, nil
			}
			return get(src), nil
		},
	}
}

func optional(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id":   field(graphql.NewNonNull(graphql.Int), func(c models.Category) interface{} { return int(c.ID) }),
		"name": field(graphql.NewNonNull(graphql.String), func(c models.Category) interface{} { return c.Name }),
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          field(graphql.NewNonNull(graphql.Int), func(p models.Product) interface{} { return int(p.ID) }),
		"name":        field(graphql.NewNonNull(graphql.String), func(p models.Product) interface{} { return p.Name }),
		"sku":         field(graphql.String, func(p models.Product) interface{} { return optional(p.SKU) }),
		"description": field(graphql.String, func(p models.Product) interface{} { return optional(p.Description) }),
		"price":       field(graphql.NewNonNull(graphql.Float), func(p models.Product) interface{} { return p.Price.InexactFloat64() }),
		"createdAt":   field(graphql.String, func(p models.Product) interface{} { return p.CreatedAt.UTC().Format(time.RFC3339) }),
		"category":    field(categoryType, func(p models.Product) interface{} { return p.Category }),
	},
})

var inventoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Inventory",
	Fields: graphql.Fields{
		"id":          field(graphql.NewNonNull(graphql.Int), func(i models.Inventory) interface{} { return int(i.ID) }),
		"quantity":    field(graphql.NewNonNull(graphql.Int), func(i models.Inventory) interface{} { return i.Quantity }),
		"lastUpdated": field(graphql.String, func(i models.Inventory) interface{} { return i.LastUpdated.UTC().Format(time.RFC3339) }),
		"product":     field(productType, func(i models.Inventory) interface{} { return i.Product }),
	},
})

var revenueBucketType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RevenueBucket",
	Fields: graphql.Fields{
		"period":  field(graphql.NewNonNull(graphql.String), func(b repositories.RevenueBucket) interface{} { return b.Period }),
		"revenue": field(graphql.NewNonNull(graphql.Float), func(b repositories.RevenueBucket) interface{} { return b.Revenue.InexactFloat64() }),
	},
})

var revenueGroupType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RevenueGroup",
	Fields: graphql.Fields{
		"label":   field(graphql.NewNonNull(graphql.String), func(g repositories.RevenueGroup) interface{} { return g.Label }),
		"revenue": field(graphql.NewNonNull(graphql.Float), func(g repositories.RevenueGroup) interface{} { return g.Revenue.InexactFloat64() }),
	},
})

// Query builds the root query type over db.
func Query(db *gorm.DB) *graphql.Object {
	catalog := services.NewCatalogService(db)
	inventory := services.NewInventoryService(db)
	reports := services.NewReportService(db)

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"name":         {Type: graphql.String},
					"sku":          {Type: graphql.String},
					"categoryName": {Type: graphql.String},
					"sortBy":       {Type: graphql.String},
					"sortOrder":    {Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.ListProducts(p.Context, repositories.ProductFilter{
						Name:         stringArg(p, "name"),
						SKU:          stringArg(p, "sku"),
						CategoryName: stringArg(p, "categoryName"),
						SortBy:       repositories.ParseProductSort(stringArg(p, "sortBy")),
						SortOrder:    stringArg(p, "sortOrder"),
					})
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					if id <= 0 {
						return nil, &services.NotFoundError{Kind: services.ErrProductNotFound}
					}
					return catalog.FindProduct(p.Context, uint(id))
				},
			},
			"lowStock": &graphql.Field{
				Type: graphql.NewList(inventoryType),
				Args: graphql.FieldConfigArgument{
					"threshold": {Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					threshold := config.LowStockThreshold()
					if t, ok := p.Args["threshold"].(int); ok {
						threshold = t
					}
					return inventory.LowStock(p.Context, threshold)
				},
			},
			"revenueSummary": &graphql.Field{
				Type: graphql.NewList(revenueBucketType),
				Args: graphql.FieldConfigArgument{
					"rangeType": {Type: graphql.String, DefaultValue: "daily"},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return reports.RevenueSummary(p.Context, stringArg(p, "rangeType"))
				},
			},
			"revenueByGroup": &graphql.Field{
				Type: graphql.NewList(revenueGroupType),
				Args: graphql.FieldConfigArgument{
					"groupBy":   {Type: graphql.String, DefaultValue: "category"},
					"startDate": {Type: graphql.NewNonNull(graphql.String)},
					"endDate":   {Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					start, err := bind.ParseTime(stringArg(p, "startDate"))
					if err != nil {
						return nil, err
					}
					end, err := bind.ParseTime(stringArg(p, "endDate"))
					if err != nil {
						return nil, err
					}
					return reports.RevenueComparison(p.Context, stringArg(p, "groupBy"), start, end)
				},
			},
		},
	})
}

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}
