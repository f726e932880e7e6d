package routes_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/routes"
	"github.com/shashiranjanraj/shopadmin/pkg/router"
	"github.com/shashiranjanraj/shopadmin/pkg/testkit"
)

type api struct {
	t  *testing.T
	db *gorm.DB
	h  http.Handler
}

func newAPI(t *testing.T) *api {
	t.Helper()
	db := testkit.DB(t)
	r := router.New()
	require.NoError(t, routes.RegisterAPI(r, db))
	return &api{t: t, db: db, h: r.Handler()}
}

func (a *api) call(method, target string, body interface{}) (int, testkit.Envelope) {
	a.t.Helper()
	rec := testkit.Do(a.t, a.h, method, target, body)
	return rec.Code, testkit.Decode(a.t, rec)
}

func (a *api) create(target string, body interface{}) json.RawMessage {
	a.t.Helper()
	code, env := a.call(http.MethodPost, target, body)
	require.Equal(a.t, http.StatusCreated, code, "%s: %s %v", target, env.Message, env.Errors)
	return env.Data
}

type productOut struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	SKU      *string         `json:"sku"`
	Category struct {
		Name string `json:"name"`
	} `json:"category"`
}

type orderOut struct {
	ID          uint            `json:"id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Sales       []struct {
		Quantity  int             `json:"quantity"`
		UnitPrice decimal.Decimal `json:"unit_price"`
		OrderID   uint            `json:"order_id"`
		Product   productOut      `json:"product"`
	} `json:"sales"`
}

// stocked creates Electronics with a watch (150 in stock) and earbuds (80).
func (a *api) stocked() (watch, earbuds productOut) {
	a.t.Helper()
	var cat struct{ ID uint }
	require.NoError(a.t, json.Unmarshal(a.create("/categories", map[string]string{"name": "Electronics"}), &cat))

	require.NoError(a.t, json.Unmarshal(a.create("/products", map[string]interface{}{
		"name": "Smart Watch Series 5", "category_id": cat.ID, "price": 199.99, "sku": "ELEC-001",
	}), &watch))
	require.NoError(a.t, json.Unmarshal(a.create("/products", map[string]interface{}{
		"name": "Bluetooth Earbuds X1", "category_id": cat.ID, "price": "89.99", "sku": "ELEC-002",
	}), &earbuds))

	for _, s := range []struct {
		id  uint
		qty int
	}{{watch.ID, 150}, {earbuds.ID, 80}} {
		code, env := a.call(http.MethodPost, "/inventory", map[string]interface{}{"product_id": s.id, "quantity": s.qty})
		require.Equal(a.t, http.StatusOK, code, env.Message)
	}
	return watch, earbuds
}

func TestHome(t *testing.T) {
	a := newAPI(t)

	code, env := a.call(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"E-commerce Admin API is live"}`, string(env.Data))

	code, _ = a.call(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestCategories(t *testing.T) {
	a := newAPI(t)
	a.create("/categories", map[string]string{"name": "Fashion"})

	code, env := a.call(http.MethodPost, "/categories", map[string]string{"name": "Fashion"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, env.Message, "already exists")

	code, env = a.call(http.MethodPost, "/categories", map[string]string{})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "name")

	code, env = a.call(http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"id":1,"name":"Fashion"}]`, string(env.Data))
}

func TestCreateProduct(t *testing.T) {
	a := newAPI(t)
	watch, _ := a.stocked()
	assert.Equal(t, "Electronics", watch.Category.Name)
	assert.True(t, decimal.RequireFromString("199.99").Equal(watch.Price))

	code, env := a.call(http.MethodPost, "/products", map[string]interface{}{"name": "Orphan", "category_id": 99, "price": 1})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Category not found", env.Message)

	code, env = a.call(http.MethodPost, "/products", map[string]interface{}{"name": "No price", "category_id": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "price")

	code, env = a.call(http.MethodPost, "/products", map[string]interface{}{
		"name": "Copy", "category_id": 1, "price": 5, "sku": "ELEC-001",
	})
	assert.Equal(t, http.StatusConflict, code, env.Message)

	code, env = a.call(http.MethodPost, "/products", `{"name": "broken"`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = a.call(http.MethodPost, "/products", map[string]interface{}{"name": "x", "category_id": "one", "price": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "category_id")
}

func TestShowProduct(t *testing.T) {
	a := newAPI(t)
	watch, _ := a.stocked()

	var got productOut
	testkit.Data(t, testkit.Do(t, a.h, http.MethodGet, "/products/1", nil), http.StatusOK, &got)
	assert.Equal(t, watch.ID, got.ID)
	assert.Equal(t, "ELEC-001", *got.SKU)

	code, env := a.call(http.MethodGet, "/products/999", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Product 999 not found", env.Message)

	code, _ = a.call(http.MethodGet, "/products/abc", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestListProducts(t *testing.T) {
	a := newAPI(t)
	a.stocked()

	var got []productOut
	testkit.Data(t, testkit.Do(t, a.h, http.MethodGet, "/products?sort_by=price&sort_order=asc", nil), http.StatusOK, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "Bluetooth Earbuds X1", got[0].Name)

	testkit.Data(t, testkit.Do(t, a.h, http.MethodGet, "/products?sort_by=bogus&min_price=100&in_stock=true", nil), http.StatusOK, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Smart Watch Series 5", got[0].Name)

	testkit.Data(t, testkit.Do(t, a.h, http.MethodGet, "/products?name=nothing-like-this", nil), http.StatusOK, &got)
	assert.Empty(t, got)

	code, env := a.call(http.MethodGet, "/products?min_price=cheap&in_stock=maybe&created_after=yesterday", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "min_price")
	assert.Contains(t, env.Errors, "in_stock")
	assert.Contains(t, env.Errors, "created_after")
}

func TestInventory(t *testing.T) {
	a := newAPI(t)
	_, earbuds := a.stocked()

	code, env := a.call(http.MethodPost, "/inventory", map[string]interface{}{"product_id": earbuds.ID, "quantity": 3})
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"quantity":3`)

	code, env = a.call(http.MethodPost, "/inventory", map[string]interface{}{"product_id": 999, "quantity": 3})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Product 999 not found", env.Message)

	var low []struct {
		ProductID uint       `json:"product_id"`
		Product   productOut `json:"product"`
	}
	testkit.Data(t, testkit.Do(t, a.h, http.MethodGet, "/inventory/low-stock", nil), http.StatusOK, &low)
	require.Len(t, low, 1)
	assert.Equal(t, "Bluetooth Earbuds X1", low[0].Product.Name)
	assert.Equal(t, "Electronics", low[0].Product.Category.Name)

	testkit.Data(t, testkit.Do(t, a.h, http.MethodGet, "/inventory/low-stock?threshold=200", nil), http.StatusOK, &low)
	assert.Len(t, low, 2)

	code, _ = a.call(http.MethodGet, "/inventory/low-stock?threshold=few", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	testkit.Data(t, testkit.Do(t, a.h, http.MethodGet, "/inventory?min_qty=10&sort_by=quantity", nil), http.StatusOK, &low)
	require.Len(t, low, 1)
	assert.Equal(t, "Smart Watch Series 5", low[0].Product.Name)
}

func TestCreateOrder(t *testing.T) {
	a := newAPI(t)
	watch, earbuds := a.stocked()

	var order orderOut
	require.NoError(t, json.Unmarshal(a.create("/orders", map[string]interface{}{
		"customer_name":  "John Doe",
		"customer_email": "john@example.com",
		"sales":          []map[string]interface{}{{"product_id": watch.ID, "quantity": 2}},
	}), &order))

	assert.True(t, decimal.RequireFromString("399.98").Equal(order.TotalAmount), order.TotalAmount.String())
	require.Len(t, order.Sales, 1)
	assert.Equal(t, order.ID, order.Sales[0].OrderID)
	assert.Equal(t, "Smart Watch Series 5", order.Sales[0].Product.Name)
	assert.Equal(t, 148, testkit.Quantity(t, a.db, watch.ID))

	require.NoError(t, json.Unmarshal(a.create("/orders", map[string]interface{}{
		"items": []map[string]interface{}{{"product_id": earbuds.ID, "quantity": 1}},
	}), &order))
	assert.True(t, decimal.RequireFromString("89.99").Equal(order.TotalAmount))

	var shown orderOut
	testkit.Data(t, testkit.Do(t, a.h, http.MethodGet, "/orders/1", nil), http.StatusOK, &shown)
	assert.Len(t, shown.Sales, 1)

	var all []orderOut
	testkit.Data(t, testkit.Do(t, a.h, http.MethodGet, "/orders", nil), http.StatusOK, &all)
	assert.Len(t, all, 2)

	code, env := a.call(http.MethodGet, "/orders/77", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Order 77 not found", env.Message)
}

func TestCreateOrderRejectsBadInput(t *testing.T) {
	a := newAPI(t)
	watch, _ := a.stocked()

	code, env := a.call(http.MethodPost, "/orders", map[string]interface{}{"sales": []interface{}{}})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "sales")

	code, env = a.call(http.MethodPost, "/orders", map[string]interface{}{
		"customer_email": "not-an-email",
		"sales":          []map[string]interface{}{{"product_id": watch.ID, "quantity": 0}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "customer_email")
	assert.Contains(t, env.Errors, "sales[0].quantity")

	code, env = a.call(http.MethodPost, "/orders", map[string]interface{}{
		"sales": []map[string]interface{}{{"product_id": watch.ID, "quantity": 5}, {"product_id": 999, "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Product 999 not found", env.Message)
	assert.Equal(t, 150, testkit.Quantity(t, a.db, watch.ID))
	assert.EqualValues(t, 0, testkit.Count(t, a.db, &models.Order{}))
}

func TestSales(t *testing.T) {
	a := newAPI(t)
	watch, earbuds := a.stocked()

	a.create("/sales", map[string]interface{}{"product_id": watch.ID, "quantity": 1, "date": "2024-02-12T09:00:00Z"})
	a.create("/sales", map[string]interface{}{"product_id": earbuds.ID, "quantity": 2, "date": "2024-02-13"})
	assert.Equal(t, 78, testkit.Quantity(t, a.db, earbuds.ID))

	code, env := a.call(http.MethodPost, "/sales", map[string]interface{}{"product_id": watch.ID, "quantity": 1, "date": "soon"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "date")

	code, _ = a.call(http.MethodPost, "/sales", map[string]interface{}{"product_id": 999, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, code)

	var sales []struct {
		Quantity int        `json:"quantity"`
		Product  productOut `json:"product"`
	}
	testkit.Data(t, testkit.Do(t, a.h, http.MethodGet, "/sales?end_date=2024-02-12T23:59:59Z", nil), http.StatusOK, &sales)
	require.Len(t, sales, 1)
	assert.Equal(t, "Smart Watch Series 5", sales[0].Product.Name)

	testkit.Data(t, testkit.Do(t, a.h, http.MethodGet, "/sales?product_name=earbuds", nil), http.StatusOK, &sales)
	require.Len(t, sales, 1)
	assert.Equal(t, 2, sales[0].Quantity)
}

func TestRevenueReports(t *testing.T) {
	a := newAPI(t)
	watch, earbuds := a.stocked()
	a.create("/sales", map[string]interface{}{"product_id": watch.ID, "quantity": 1, "date": "2024-02-12T09:00:00Z"})
	a.create("/sales", map[string]interface{}{"product_id": earbuds.ID, "quantity": 2, "date": "2024-02-12T18:30:00Z"})

	code, env := a.call(http.MethodGet, "/sales/revenue-summary", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"period":"2024-02-12","revenue":379.97}]`, string(env.Data))

	code, env = a.call(http.MethodGet, "/sales/revenue-summary?range_type=weekly", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"period":"2024-W07","revenue":379.97}]`, string(env.Data))

	code, _ = a.call(http.MethodGet, "/sales/revenue-summary?range_type=hourly", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = a.call(http.MethodGet, "/sales/compare", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "start_date")
	assert.Contains(t, env.Errors, "end_date")

	code, env = a.call(http.MethodGet, "/sales/compare?start_date=2024-01-01&end_date=2024-12-31", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"category":"Electronics","revenue":379.97}]`, string(env.Data))

	code, env = a.call(http.MethodGet, "/sales/compare?group_by=product&start_date=2024-01-01&end_date=2024-12-31", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"product":"Bluetooth Earbuds X1","revenue":179.98},{"product":"Smart Watch Series 5","revenue":199.99}]`, string(env.Data))

	code, _ = a.call(http.MethodGet, "/sales/compare?group_by=region&start_date=2024-01-01&end_date=2024-12-31", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGraphQL(t *testing.T) {
	a := newAPI(t)
	_, earbuds := a.stocked()
	code, _ := a.call(http.MethodPost, "/inventory", map[string]interface{}{"product_id": earbuds.ID, "quantity": 2})
	require.Equal(t, http.StatusOK, code)

	rec := testkit.Do(t, a.h, http.MethodPost, "/graphql", map[string]interface{}{
		"query": `query Q($t: Int) {
			products(sortBy: "name", sortOrder: "asc") { name price category { name } }
			lowStock(threshold: $t) { quantity product { sku } }
			revenueSummary(rangeType: "monthly") { period revenue }
		}`,
		"variables": map[string]interface{}{"t": 5},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{
		"products":[
			{"name":"Bluetooth Earbuds X1","price":89.99,"category":{"name":"Electronics"}},
			{"name":"Smart Watch Series 5","price":199.99,"category":{"name":"Electronics"}}
		],
		"lowStock":[{"quantity":2,"product":{"sku":"ELEC-002"}}],
		"revenueSummary":[]
	}}`, rec.Body.String())

	rec = testkit.Do(t, a.h, http.MethodPost, "/graphql", map[string]interface{}{
		"query": `{ revenueSummary(rangeType: "hourly") { period } }`,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid range_type")
}

func TestRouteNames(t *testing.T) {
	r := router.New()
	require.NoError(t, routes.RegisterAPI(r, testkit.DB(t)))

	url, err := r.URL("orders.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/orders/7", url)

	for _, name := range []string{
		"home", "health", "categories.index", "categories.store", "products.index", "products.store",
		"products.show", "inventory.index", "inventory.upsert", "inventory.low_stock", "sales.index",
		"sales.store", "sales.revenue_summary", "sales.compare", "orders.index", "orders.store",
		"orders.show", "graphql",
	} {
		_, ok := r.Path(name)
		assert.True(t, ok, name)
	}
}
