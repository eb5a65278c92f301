package app

import (
	"context"
	"fmt"
	"math"

	"github.com/MGTheTrain/bookshelf/internal/domain/catalog"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"
)

// SeedItems is the fixed content of the in-memory catalog
func SeedItems() []catalog.Item {
	return []catalog.Item{
		{ID: 1, Name: "apple", Price: 3.5},
		{ID: 1, Name: "apple", Price: 4},
		{ID: 2, Name: "banana", Price: 2.0},
		{ID: 3, Name: "orange", Price: 4.2},
	}
}

// catalogService serves a read-only item slice
type catalogService struct {
	items  []catalog.Item
	logger logger.Logger
}

// NewCatalogService creates a catalog over items. The slice is copied.
func NewCatalogService(items []catalog.Item, logger logger.Logger) (catalog.Service, error) {
	owned := make([]catalog.Item, len(items))
	copy(owned, items)
	return &catalogService{items: owned, logger: logger}, nil
}

// List filters by name unless name is absent or blank.
func (s *catalogService) List(_ context.Context, name *string) []catalog.Item {
	return s.where(func(item catalog.Item) bool {
		return name == nil || *name == "" || item.Name == *name
	})
}

func (s *catalogService) GetByID(_ context.Context, itemID int) (*catalog.Item, error) {
	for _, item := range s.items {
		if item.ID == itemID {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("item %d: %w", itemID, catalog.ErrItemNotFound)
}

func (s *catalogService) Search(_ context.Context, name *string, price *float64) []catalog.Item {
	return s.where(func(item catalog.Item) bool {
		if name != nil && item.Name != *name {
			return false
		}
		if price != nil && item.Price != *price {
			return false
		}
		return true
	})
}

// Filter keeps items inside [MinPrice, MaxPrice]. Items without a category
// never match a category filter.
func (s *catalogService) Filter(_ context.Context, filter catalog.Filter) []catalog.Item {
	return s.where(func(item catalog.Item) bool {
		if filter.MinPrice != nil && item.Price < *filter.MinPrice {
			return false
		}
		if filter.MaxPrice != nil && item.Price > float64(*filter.MaxPrice) {
			return false
		}
		if filter.Category != nil && (item.Category == nil || *item.Category != *filter.Category) {
			return false
		}
		return true
	})
}

func (s *catalogService) TotalPrice(price, tax float64) float64 {
	return math.Round(price*(1+tax)*100) / 100
}

func (s *catalogService) Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, catalog.ErrDivisionByZero
	}
	return float64(a) / float64(b), nil
}

func (s *catalogService) Product(_ context.Context, productID int, userID *string, includeDetails bool) *catalog.Product {
	product := &catalog.Product{
		ID:    productID,
		Name:  fmt.Sprintf("Product %d", productID),
		Price: productID * 10,
	}
	if userID != nil && *userID != "" {
		custom := fmt.Sprintf("Custom data for user %s", *userID)
		product.UserSpecific = &custom
	}
	if includeDetails {
		product.Details = &catalog.ProductDetails{
			Description: fmt.Sprintf("Detailed info for product %d", productID),
			Specs:       []string{"Spec1", "Spec2", "Spec3"},
			Reviews:     []string{"Good", "Excellent", "Average"},
		}
	}
	return product
}

func (s *catalogService) where(keep func(catalog.Item) bool) []catalog.Item {
	result := make([]catalog.Item, 0, len(s.items))
	for _, item := range s.items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}
