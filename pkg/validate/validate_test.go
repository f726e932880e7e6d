package validate_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/shopadmin/pkg/validate"
)

type line struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity"   validate:"required,gt=0"`
}

type orderInput struct {
	CustomerName  string `json:"customer_name"  validate:"omitempty,max=255"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	Sales         []line `json:"sales"          validate:"required,min=1,dive"`
}

type productInput struct {
	Name  string           `json:"name"  validate:"required,max=255"`
	Price *decimal.Decimal `json:"price" validate:"required,gte=0"`
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestValidOrder(t *testing.T) {
	errs := validate.Struct(orderInput{
		CustomerEmail: "john@example.com",
		Sales:         []line{{ProductID: 1, Quantity: 2}},
	})
	assert.False(t, validate.HasErrors(errs), "%v", errs)
}

func TestNestedLineErrorsUseJSONPaths(t *testing.T) {
	errs := validate.Struct(orderInput{
		Sales: []line{{ProductID: 1, Quantity: 1}, {ProductID: 0, Quantity: -1}},
	})

	assert.Contains(t, errs, "sales[1].product_id")
	assert.Contains(t, errs, "sales[1].quantity")
	assert.NotContains(t, errs, "sales[0].quantity")
}

func TestEmptyLinesRejected(t *testing.T) {
	errs := validate.Struct(orderInput{Sales: []line{}})
	assert.Contains(t, errs, "sales")
}

func TestEmailRule(t *testing.T) {
	errs := validate.Struct(orderInput{
		CustomerEmail: "not-an-email",
		Sales:         []line{{ProductID: 1, Quantity: 1}},
	})
	assert.Equal(t, "The customer_email must be a valid email address.", errs["customer_email"])
}

func TestDecimalBounds(t *testing.T) {
	assert.Empty(t, validate.Struct(productInput{Name: "Watch", Price: price("0")}))
	assert.Empty(t, validate.Struct(productInput{Name: "Watch", Price: price("199.99")}))

	errs := validate.Struct(productInput{Name: "Watch", Price: price("-0.01")})
	assert.Contains(t, errs, "price")

	errs = validate.Struct(productInput{Name: "Watch"})
	assert.Equal(t, "The price field is required.", errs["price"])
}
