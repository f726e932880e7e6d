package repositories

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/pkg/orm"
)

// SaleFilter narrows ListSales. Both dates are inclusive.
type SaleFilter struct {
	ProductName  string
	CategoryName string
	StartDate    *time.Time
	EndDate      *time.Time
}

// RevenueBucket is the revenue of one time period.
type RevenueBucket struct {
	Period  string          `json:"period"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenueGroup is the revenue of one category or product.
type RevenueGroup struct {
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SaleRepository handles sale reads and revenue reports.
type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// List returns matching sales in id order, each with product and category.
func (r *SaleRepository) List(ctx context.Context, f SaleFilter) ([]models.Sale, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Preload("Product.Category").
		Joins("JOIN products ON products.id = sales.product_id")

	if f.CategoryName != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id")
	}

	var sales []models.Sale
	err := q.Scopes(
		orm.Contains("products.name", f.ProductName),
		orm.Contains("categories.name", f.CategoryName),
		orm.Range("sales.date", f.StartDate, f.EndDate),
		orm.OrderBy("sales.id", false),
	).Find(&sales).Error
	return sales, err
}

// RevenueSummary sums quantity × unit_price per period across all sales,
// ordered by period. Periods are computed in UTC.
func (r *SaleRepository) RevenueSummary(ctx context.Context, g Granularity) ([]RevenueBucket, error) {
	if _, err := ParseGranularity(string(g)); err != nil {
		return nil, err
	}

	var rows []models.Sale
	err := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Select("date", "quantity", "unit_price").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("revenue summary: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, s := range rows {
		key := bucketKey(g, s.Date)
		totals[key] = totals[key].Add(s.LineTotal())
	}

	out := make([]RevenueBucket, 0, len(totals))
	for period, revenue := range totals {
		out = append(out, RevenueBucket{Period: period, Revenue: revenue.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out, nil
}

func bucketKey(g Granularity, t time.Time) string {
	t = t.UTC()
	switch g {
	case Weekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return t.Format("2006-01")
	case Yearly:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}

// RevenueComparison sums quantity × unit_price per category or product name
// for sales with start <= date <= end, ordered by label.
func (r *SaleRepository) RevenueComparison(ctx context.Context, g Grouping, start, end time.Time) ([]RevenueGroup, error) {
	if _, err := ParseGrouping(string(g)); err != nil {
		return nil, err
	}

	label := g.column()
	q := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Select(label + " AS label, SUM(sales.quantity * sales.unit_price) AS revenue").
		Joins("JOIN products ON products.id = sales.product_id")
	if g == ByCategory {
		q = q.Joins("JOIN categories ON categories.id = products.category_id")
	}

	var out []RevenueGroup
	err := q.Where("sales.date >= ? AND sales.date <= ?", start, end).
		Group(label).
		Order(label).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("revenue comparison: %w", err)
	}

	for i := range out {
		out[i].Revenue = out[i].Revenue.Round(2)
	}
	if out == nil {
		out = []RevenueGroup{}
	}
	return out, nil
}
