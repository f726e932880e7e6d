package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopadmin/pkg/router"
)

func noop(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

func TestGroupJoinsPrefixes(t *testing.T) {
	r := router.New()
	sales := r.Group("/sales")
	sales.Get("/revenue-summary", "sales.revenue_summary", noop)

	path, ok := r.Path("sales.revenue_summary")
	require.True(t, ok)
	assert.Equal(t, "/sales/revenue-summary", path)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sales/revenue-summary", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestURLSubstitutesParams(t *testing.T) {
	r := router.New()
	r.Get("/orders/{id}", "orders.show", noop)

	url, err := r.URL("orders.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/orders/7", url)

	_, err = r.URL("orders.show", nil)
	assert.Error(t, err)

	_, err = r.URL("missing", nil)
	assert.Error(t, err)
}

func TestGroupMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	g := r.Group("/api", mw("group")).Group("/v1", mw("inner"))
	g.Post("/orders", "orders.store", noop, mw("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil))

	assert.Equal(t, []string{"group", "inner", "route"}, order)
}

func TestRoutesListsEverything(t *testing.T) {
	r := router.New()
	r.Get("/", "home", noop)
	r.Post("/orders", "orders.store", noop)

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, router.RouteInfo{Method: http.MethodPost, Path: "/orders", Name: "orders.store"}, routes[1])
}
