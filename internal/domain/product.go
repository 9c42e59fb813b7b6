package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryAll     Category = "all"
	CategoryTops    Category = "tops"
	CategoryBottoms Category = "bottoms"
	CategoryDresses Category = "dresses"
	CategoryJackets Category = "jackets"
	CategoryJewelry Category = "jewelry"
	CategoryShoes   Category = "shoes"
)

var productCategories = []Category{
	CategoryTops,
	CategoryBottoms,
	CategoryDresses,
	CategoryJackets,
	CategoryJewelry,
	CategoryShoes,
}

// Categories returns the filtering vocabulary, wildcard first.
func Categories() []Category {
	return append([]Category{CategoryAll}, productCategories...)
}

// ParseCategory normalizes s to a lowercase category code.
// The wildcard "all" is accepted.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == CategoryAll || c.IsProduct() {
		return c, nil
	}
	return "", fmt.Errorf("category[%s] is not valid", s)
}

// IsProduct reports whether c can be assigned to a product (the wildcard cannot).
func (c Category) IsProduct() bool {
	return slices.Contains(productCategories, c)
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	RentPrice   decimal.Decimal `json:"rentPrice"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Sizes       []string        `json:"sizes,omitempty"`
	Colors      []string        `json:"colors,omitempty"`
	InStock     bool            `json:"inStock"`
	IsFeatured  bool            `json:"isFeatured"`
}

func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("id is empty")
	}
	if !p.Category.IsProduct() {
		return fmt.Errorf("product[%s]: category[%s] is not valid", p.ID, p.Category)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product[%s]: price is negative", p.ID)
	}
	if p.RentPrice.IsNegative() {
		return fmt.Errorf("product[%s]: rent price is negative", p.ID)
	}
	return nil
}

func (p Product) HasSizes() bool {
	return len(p.Sizes) > 0
}

func (p Product) OffersSize(size string) bool {
	return slices.Contains(p.Sizes, size)
}

func (p Product) OffersColor(color string) bool {
	return slices.Contains(p.Colors, color)
}

// UnitPrice is the per-item price for a purchase, or the per-day price for a rental.
func (p Product) UnitPrice(isRental bool) decimal.Decimal {
	if isRental {
		return p.RentPrice
	}
	return p.Price
}
