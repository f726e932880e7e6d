package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/pkg/testkit"
)

type catalogue struct {
	db                    *gorm.DB
	electronics, fashion  models.Category
	watch, earbuds, shoes models.Product
	cable                 models.Product // no inventory row
}

func ptr[T any](v T) *T { return &v }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func seedCatalogue(t *testing.T) catalogue {
	t.Helper()
	db := testkit.DB(t)
	c := catalogue{db: db}

	c.electronics = testkit.Category(t, db, "Electronics")
	c.fashion = testkit.Category(t, db, "Fashion")

	c.watch = testkit.Product(t, db, c.electronics, "Smart Watch Series 5", "199.99", "ELEC-001")
	c.earbuds = testkit.Product(t, db, c.electronics, "Bluetooth Earbuds X1", "89.99", "ELEC-002")
	c.shoes = testkit.Product(t, db, c.fashion, "Men's Running Sneakers", "129.50", "FASH-001")
	c.cable = testkit.Product(t, db, c.electronics, "USB-C Cable", "9.99", "")

	for i, p := range []models.Product{c.watch, c.earbuds, c.shoes, c.cable} {
		require.NoError(t, db.Model(&models.Product{}).Where("id = ?", p.ID).
			UpdateColumn("created_at", day(2024, time.January, i+1)).Error)
	}

	testkit.Stock(t, db, c.watch, 150)
	testkit.Stock(t, db, c.earbuds, 0)
	testkit.Stock(t, db, c.shoes, -2)
	return c
}

func productNames(ps []models.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestListProductsDefaultSortIsNewestFirst(t *testing.T) {
	c := seedCatalogue(t)
	repo := repositories.NewProductRepository(c.db)

	got, err := repo.List(context.Background(), repositories.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"USB-C Cable", "Men's Running Sneakers", "Bluetooth Earbuds X1", "Smart Watch Series 5"}, productNames(got))
	assert.Equal(t, "Electronics", got[0].Category.Name)
}

func TestListProductsFilters(t *testing.T) {
	c := seedCatalogue(t)
	repo := repositories.NewProductRepository(c.db)
	ctx := context.Background()

	cases := []struct {
		name   string
		filter repositories.ProductFilter
		want   []string
	}{
		{"name substring ignores case", repositories.ProductFilter{Name: "WATCH"}, []string{"Smart Watch Series 5"}},
		{"exact sku", repositories.ProductFilter{SKU: "ELEC-002"}, []string{"Bluetooth Earbuds X1"}},
		{"sku is not a substring match", repositories.ProductFilter{SKU: "ELEC"}, []string{}},
		{"category substring", repositories.ProductFilter{CategoryName: "fash"}, []string{"Men's Running Sneakers"}},
		{
			"price bounds are inclusive",
			repositories.ProductFilter{
				MinPrice: ptr(decimal.RequireFromString("89.99")),
				MaxPrice: ptr(decimal.RequireFromString("129.50")),
				SortBy:   repositories.ProductSortPrice, SortOrder: "asc",
			},
			[]string{"Bluetooth Earbuds X1", "Men's Running Sneakers"},
		},
		{"in stock", repositories.ProductFilter{InStock: ptr(true)}, []string{"Smart Watch Series 5"}},
		{
			"out of stock excludes products without inventory",
			repositories.ProductFilter{InStock: ptr(false), SortBy: repositories.ProductSortName, SortOrder: "asc"},
			[]string{"Bluetooth Earbuds X1", "Men's Running Sneakers"},
		},
		{
			"created range is inclusive",
			repositories.ProductFilter{
				CreatedAfter:  ptr(day(2024, time.January, 2)),
				CreatedBefore: ptr(day(2024, time.January, 3)),
				SortBy:        repositories.ProductSortCreatedAt, SortOrder: "asc",
			},
			[]string{"Bluetooth Earbuds X1", "Men's Running Sneakers"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, productNames(got))
		})
	}
}

func TestListProductsSortFallbacks(t *testing.T) {
	c := seedCatalogue(t)
	repo := repositories.NewProductRepository(c.db)
	ctx := context.Background()

	unknownKey, err := repo.List(ctx, repositories.ProductFilter{SortBy: repositories.ParseProductSort("drop table")})
	require.NoError(t, err)
	byDefault, err := repo.List(ctx, repositories.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, productNames(byDefault), productNames(unknownKey))

	oddDirection, err := repo.List(ctx, repositories.ProductFilter{SortBy: repositories.ProductSortPrice, SortOrder: "sideways"})
	require.NoError(t, err)
	assert.Equal(t, "USB-C Cable", oddDirection[0].Name)
	assert.Equal(t, "Smart Watch Series 5", oddDirection[3].Name)
}

func TestFindProduct(t *testing.T) {
	c := seedCatalogue(t)
	repo := repositories.NewProductRepository(c.db)

	p, err := repo.Find(context.Background(), c.shoes.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fashion", p.Category.Name)
	assert.True(t, decimal.RequireFromString("129.5").Equal(p.Price))

	_, err = repo.Find(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListInventory(t *testing.T) {
	c := seedCatalogue(t)
	repo := repositories.NewInventoryRepository(c.db)
	ctx := context.Background()

	rows, err := repo.List(ctx, repositories.InventoryFilter{SortBy: repositories.InventorySortProductName, SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Bluetooth Earbuds X1", rows[0].Product.Name)
	assert.Equal(t, "Electronics", rows[0].Product.Category.Name)

	rows, err = repo.List(ctx, repositories.InventoryFilter{MinQty: ptr(-2), MaxQty: ptr(0), SortBy: repositories.InventorySortQuantity, SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, -2, rows[0].Quantity)
	assert.Equal(t, 0, rows[1].Quantity)

	rows, err = repo.List(ctx, repositories.InventoryFilter{CategoryName: "ELECTRO", ProductName: "watch"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 150, rows[0].Quantity)

	rows, err = repo.List(ctx, repositories.InventoryFilter{SKU: "FASH-001"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, c.shoes.ID, rows[0].ProductID)
}

func TestLowStock(t *testing.T) {
	db := testkit.DB(t)
	cat := testkit.Category(t, db, "Health")
	for i, qty := range []int{10, 3, 5} {
		p := testkit.Product(t, db, cat, []string{"A", "B", "C"}[i], "1.00", "")
		testkit.Stock(t, db, p, qty)
	}

	rows, err := repositories.NewInventoryRepository(db).LowStock(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].Quantity)
	assert.Equal(t, 5, rows[1].Quantity)
	assert.Equal(t, "Health", rows[0].Product.Category.Name)
}

func recordSales(t *testing.T, c catalogue) {
	t.Helper()
	sales := []models.Sale{
		{ProductID: c.watch.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("199.99"), Date: time.Date(2024, 2, 12, 9, 0, 0, 0, time.UTC)},
		{ProductID: c.earbuds.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("89.99"), Date: time.Date(2024, 2, 12, 18, 30, 0, 0, time.UTC)},
		{ProductID: c.shoes.ID, Quantity: 3, UnitPrice: decimal.RequireFromString("129.50"), Date: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{ProductID: c.watch.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("150.00"), Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, c.db.Omit("Product").Create(&sales).Error)
}

func TestListSales(t *testing.T) {
	c := seedCatalogue(t)
	recordSales(t, c)
	repo := repositories.NewSaleRepository(c.db)
	ctx := context.Background()

	all, err := repo.List(ctx, repositories.SaleFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Smart Watch Series 5", all[0].Product.Name)
	assert.Equal(t, "Electronics", all[0].Product.Category.Name)

	byCategory, err := repo.List(ctx, repositories.SaleFilter{CategoryName: "fashion"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, 3, byCategory[0].Quantity)

	inclusive, err := repo.List(ctx, repositories.SaleFilter{
		StartDate: ptr(time.Date(2024, 2, 12, 18, 30, 0, 0, time.UTC)),
		EndDate:   ptr(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	assert.Len(t, inclusive, 2)

	byProduct, err := repo.List(ctx, repositories.SaleFilter{ProductName: "WATCH"})
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)
}

func TestRevenueSummary(t *testing.T) {
	c := seedCatalogue(t)
	recordSales(t, c)
	repo := repositories.NewSaleRepository(c.db)
	ctx := context.Background()

	cases := map[repositories.Granularity][]repositories.RevenueBucket{
		repositories.Daily: {
			{Period: "2024-02-12", Revenue: decimal.RequireFromString("379.97")},
			{Period: "2024-03-01", Revenue: decimal.RequireFromString("388.50")},
			{Period: "2025-01-01", Revenue: decimal.RequireFromString("150.00")},
		},
		repositories.Weekly: {
			{Period: "2024-W07", Revenue: decimal.RequireFromString("379.97")},
			{Period: "2024-W09", Revenue: decimal.RequireFromString("388.50")},
			{Period: "2025-W01", Revenue: decimal.RequireFromString("150.00")},
		},
		repositories.Monthly: {
			{Period: "2024-02", Revenue: decimal.RequireFromString("379.97")},
			{Period: "2024-03", Revenue: decimal.RequireFromString("388.50")},
			{Period: "2025-01", Revenue: decimal.RequireFromString("150.00")},
		},
		repositories.Yearly: {
			{Period: "2024", Revenue: decimal.RequireFromString("768.47")},
			{Period: "2025", Revenue: decimal.RequireFromString("150.00")},
		},
	}

	for g, want := range cases {
		t.Run(string(g), func(t *testing.T) {
			got, err := repo.RevenueSummary(ctx, g)
			require.NoError(t, err)
			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i].Period, got[i].Period)
				assert.True(t, want[i].Revenue.Equal(got[i].Revenue), "%s: want %s got %s", want[i].Period, want[i].Revenue, got[i].Revenue)
			}
		})
	}

	_, err := repo.RevenueSummary(ctx, repositories.Granularity("hourly"))
	assert.ErrorIs(t, err, repositories.ErrInvalidGranularity)
}

func TestRevenueSummaryEmpty(t *testing.T) {
	got, err := repositories.NewSaleRepository(testkit.DB(t)).RevenueSummary(context.Background(), repositories.Daily)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRevenueComparison(t *testing.T) {
	c := seedCatalogue(t)
	recordSales(t, c)
	repo := repositories.NewSaleRepository(c.db)
	ctx := context.Background()
	start, end := day(2024, time.February, 12), time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	byCategory, err := repo.RevenueComparison(ctx, repositories.ByCategory, start, end)
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	assert.Equal(t, "Electronics", byCategory[0].Label)
	assert.True(t, decimal.RequireFromString("379.97").Equal(byCategory[0].Revenue), byCategory[0].Revenue.String())
	assert.Equal(t, "Fashion", byCategory[1].Label)
	assert.True(t, decimal.RequireFromString("388.5").Equal(byCategory[1].Revenue), byCategory[1].Revenue.String())

	byProduct, err := repo.RevenueComparison(ctx, repositories.ByProduct, start, end)
	require.NoError(t, err)
	require.Len(t, byProduct, 3)
	assert.Equal(t, "Bluetooth Earbuds X1", byProduct[0].Label)

	empty, err := repo.RevenueComparison(ctx, repositories.ByProduct, day(2030, 1, 1), day(2030, 12, 31))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = repo.RevenueComparison(ctx, repositories.Grouping("region"), start, end)
	assert.ErrorIs(t, err, repositories.ErrInvalidGrouping)
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, repositories.ProductSortCreatedAt, repositories.ParseProductSort(""))
	assert.Equal(t, repositories.ProductSortPrice, repositories.ParseProductSort("price"))
	assert.Equal(t, repositories.InventorySortLastUpdated, repositories.ParseInventorySort("nope"))
	assert.True(t, repositories.Descending(""))
	assert.True(t, repositories.Descending("desc"))
	assert.False(t, repositories.Descending("asc"))
	assert.False(t, repositories.Descending("DESC"))

	_, err := repositories.ParseGranularity("WEEKLY")
	assert.ErrorIs(t, err, repositories.ErrInvalidGranularity)
	g, err := repositories.ParseGrouping("product")
	require.NoError(t, err)
	assert.Equal(t, repositories.ByProduct, g)
}

func TestOrders(t *testing.T) {
	c := seedCatalogue(t)
	order := models.Order{TotalAmount: decimal.RequireFromString("379.97")}
	require.NoError(t, c.db.Create(&order).Error)
	sales := []models.Sale{
		{ProductID: c.watch.ID, Quantity: 1, UnitPrice: c.watch.Price, Date: day(2024, 2, 12), OrderID: &order.ID},
		{ProductID: c.earbuds.ID, Quantity: 2, UnitPrice: c.earbuds.Price, Date: day(2024, 2, 12), OrderID: &order.ID},
	}
	require.NoError(t, c.db.Omit("Product").Create(&sales).Error)

	repo := repositories.NewOrderRepository(c.db)
	got, err := repo.Find(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, got.Sales, 2)
	assert.Equal(t, "Smart Watch Series 5", got.Sales[0].Product.Name)
	assert.Equal(t, "Electronics", got.Sales[1].Product.Category.Name)

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.Find(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategories(t *testing.T) {
	c := seedCatalogue(t)
	repo := repositories.NewCategoryRepository(c.db)

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Electronics", all[0].Name)

	ok, err := repo.Exists(context.Background(), c.fashion.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Exists(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, ok)
}
