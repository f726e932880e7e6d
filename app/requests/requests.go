// Package requests holds the JSON bodies accepted by the write endpoints and
// converts them into service inputs.
package requests

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/pkg/bind"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type ProductRequest struct {
	Name        string           `json:"name"        validate:"required,max=255"`
	CategoryID  uint             `json:"category_id" validate:"required"`
	Price       *decimal.Decimal `json:"price"       validate:"required,gte=0"`
	Description *string          `json:"description"`
	SKU         *string          `json:"sku"         validate:"omitempty,max=100"`
}

func (r ProductRequest) Input() services.ProductInput {
	in := services.ProductInput{
		Name:        strings.TrimSpace(r.Name),
		CategoryID:  r.CategoryID,
		Description: r.Description,
		SKU:         r.SKU,
	}
	if r.Price != nil {
		in.Price = *r.Price
	}
	return in
}

type InventoryRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  *int `json:"quantity"   validate:"required"`
}

func (r InventoryRequest) Input() services.InventoryInput {
	return services.InventoryInput{ProductID: r.ProductID, Quantity: *r.Quantity}
}

type SaleRequest struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity"   validate:"required,gt=0"`
	OrderID   *uint   `json:"order_id"`
	Date      *string `json:"date"`
}

// Input converts the request. A malformed date is reported as a field error.
func (r SaleRequest) Input() (services.SaleInput, map[string]string) {
	in := services.SaleInput{ProductID: r.ProductID, Quantity: r.Quantity, OrderID: r.OrderID}
	if r.Date != nil && strings.TrimSpace(*r.Date) != "" {
		t, err := bind.ParseTime(strings.TrimSpace(*r.Date))
		if err != nil {
			return in, map[string]string{"date": "The date is not a valid date."}
		}
		in.Date = &t
	}
	return in, nil
}

type OrderLineRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity"   validate:"required,gt=0"`
}

// OrderRequest takes its lines from "sales", or from "items" when "sales"
// is absent.
type OrderRequest struct {
	CustomerName  *string            `json:"customer_name"  validate:"omitempty,max=255"`
	CustomerEmail *string            `json:"customer_email" validate:"omitempty,email"`
	Sales         []OrderLineRequest `json:"sales"          validate:"required,min=1,dive"`
}

func (r *OrderRequest) UnmarshalJSON(b []byte) error {
	type plain OrderRequest
	var aux struct {
		plain
		Items []OrderLineRequest `json:"items"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = OrderRequest(aux.plain)
	if len(r.Sales) == 0 && len(aux.Items) > 0 {
		r.Sales = aux.Items
	}
	return nil
}

func (r OrderRequest) Input() services.OrderInput {
	lines := make([]services.OrderLine, len(r.Sales))
	for i, l := range r.Sales {
		lines[i] = services.OrderLine{ProductID: l.ProductID, Quantity: l.Quantity}
	}
	return services.OrderInput{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Lines:         lines,
	}
}
