// Package catalog holds the in-memory item catalog and the small
// arithmetic and product lookups served next to it.
package catalog

import (
	"context"
	"errors"
)

// ErrItemNotFound is returned when no item matches an ID
var ErrItemNotFound = errors.New("item not found")

// ErrDivisionByZero is returned by Divide when the divisor is zero
var ErrDivisionByZero = errors.New("divisor must not be zero")

// Item is a catalog entry. IDs are not unique in the seed data.
type Item struct {
	ID       int
	Name     string
	Price    float64
	Category *string
}

// Filter narrows an item listing. Nil bounds are open.
type Filter struct {
	MinPrice       *float64
	MaxPrice       *int
	Category       *string
	SkipValidating bool
}

// ProductDetails is the optional detail block of a product
type ProductDetails struct {
	Description string
	Specs       []string
	Reviews     []string
}

// Product is a generated product description
type Product struct {
	ID           int
	Name         string
	Price        int
	UserSpecific *string
	Details      *ProductDetails
}

// Service defines the catalog operations
type Service interface {
	// List returns all items, or those whose name equals name when it is set
	List(ctx context.Context, name *string) []Item
	// GetByID returns the first item with the given ID or ErrItemNotFound
	GetByID(ctx context.Context, itemID int) (*Item, error)
	// Search applies the optional name and price equality filters in turn
	Search(ctx context.Context, name *string, price *float64) []Item
	// Filter applies inclusive price bounds and an exact category match
	Filter(ctx context.Context, filter Filter) []Item
	// TotalPrice returns price*(1+tax) rounded to two decimals
	TotalPrice(price, tax float64) float64
	// Divide returns a/b or ErrDivisionByZero
	Divide(a, b int) (float64, error)
	// Product builds the product description for productID
	Product(ctx context.Context, productID int, userID *string, includeDetails bool) *Product
}
