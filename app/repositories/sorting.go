package repositories

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGranularity = errors.New("invalid range_type")
	ErrInvalidGrouping    = errors.New("invalid group_by")
)

// ProductSort is the closed set of product sort keys.
type ProductSort string

const (
	ProductSortName      ProductSort = "name"
	ProductSortPrice     ProductSort = "price"
	ProductSortCreatedAt ProductSort = "created_at"
)

// ParseProductSort maps user text to a sort key. Unknown or empty text
// falls back to created_at.
func ParseProductSort(s string) ProductSort {
	switch ProductSort(s) {
	case ProductSortName, ProductSortPrice, ProductSortCreatedAt:
		return ProductSort(s)
	}
	return ProductSortCreatedAt
}

func (s ProductSort) column() string {
	switch s {
	case ProductSortName:
		return "products.name"
	case ProductSortPrice:
		return "products.price"
	default:
		return "products.created_at"
	}
}

// InventorySort is the closed set of inventory sort keys.
type InventorySort string

const (
	InventorySortQuantity    InventorySort = "quantity"
	InventorySortLastUpdated InventorySort = "last_updated"
	InventorySortProductName InventorySort = "product_name"
)

// ParseInventorySort maps user text to a sort key. Unknown or empty text
// falls back to last_updated.
func ParseInventorySort(s string) InventorySort {
	switch InventorySort(s) {
	case InventorySortQuantity, InventorySortLastUpdated, InventorySortProductName:
		return InventorySort(s)
	}
	return InventorySortLastUpdated
}

func (s InventorySort) column() string {
	switch s {
	case InventorySortQuantity:
		return "inventory.quantity"
	case InventorySortProductName:
		return "products.name"
	default:
		return "inventory.last_updated"
	}
}

// Descending reports whether order selects a descending sort. An absent
// order means descending; "desc" means descending; anything else ascends.
func Descending(order string) bool {
	return order == "" || order == "desc"
}

// Granularity is the time bucket of a revenue summary.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// ParseGranularity rejects anything outside the four bucket sizes.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case Daily, Weekly, Monthly, Yearly:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("%w: %q (want daily, weekly, monthly or yearly)", ErrInvalidGranularity, s)
}

// Grouping is the dimension of a revenue comparison.
type Grouping string

const (
	ByCategory Grouping = "category"
	ByProduct  Grouping = "product"
)

// ParseGrouping rejects anything but category or product.
func ParseGrouping(s string) (Grouping, error) {
	switch Grouping(s) {
	case ByCategory, ByProduct:
		return Grouping(s), nil
	}
	return "", fmt.Errorf("%w: %q (want category or product)", ErrInvalidGrouping, s)
}

func (g Grouping) column() string {
	if g == ByProduct {
		return "products.name"
	}
	return "categories.name"
}
