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

type SaleController struct {
	sales   *services.SalesService
	reports *services.ReportService
}

func NewSaleController(db *gorm.DB) *SaleController {
	return &SaleController{
		sales:   services.NewSalesService(db),
		reports: services.NewReportService(db),
	}
}

// Index GET /sales
func (ctl *SaleController) Index(c *ctx.Context) {
	q := c.QueryReader()
	filter := repositories.SaleFilter{
		ProductName:  q.String("product_name"),
		CategoryName: q.String("category_name"),
		StartDate:    q.Time("start_date"),
		EndDate:      q.Time("end_date"),
	}
	if queryFailed(c, q.Errors()) {
		return
	}

	sales, err := ctl.sales.List(c.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resource.Collection(resources.Sale, sales))
}

// Store POST /sales
func (ctl *SaleController) Store(c *ctx.Context) {
	var input requests.SaleRequest
	if !c.BindJSON(&input) {
		return
	}
	in, errs := input.Input()
	if queryFailed(c, errs) {
		return
	}

	sale, err := ctl.sales.RecordSale(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(resources.Sale(sale))
}

// RevenueSummary GET /sales/revenue-summary?range_type=daily
func (ctl *SaleController) RevenueSummary(c *ctx.Context) {
	buckets, err := ctl.reports.RevenueSummary(c.Context(), c.DefaultQuery("range_type", "daily"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resource.Collection(resources.RevenueBucket, buckets))
}

// Compare GET /sales/compare?group_by=category&start_date=...&end_date=...
func (ctl *SaleController) Compare(c *ctx.Context) {
	q := c.QueryReader()
	q.Require("start_date", "end_date")
	start, end := q.Time("start_date"), q.Time("end_date")
	if queryFailed(c, q.Errors()) {
		return
	}

	groupBy := c.DefaultQuery("group_by", string(repositories.ByCategory))
	rows, err := ctl.reports.RevenueComparison(c.Context(), groupBy, *start, *end)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resource.Collection(resources.RevenueGroup(repositories.Grouping(groupBy)), rows))
}
