package catalog

import (
	"slices"
	"strings"

	"github.com/rentwear/storefront/internal/domain"
	"golang.org/x/text/cases"
)

// Search keeps products whose name, description or category contains query,
// ignoring case. An empty query returns products unchanged.
func Search(query string, products []domain.Product) []domain.Product {
	if query == "" {
		return products
	}

	// a Caser is stateful, one per call
	fold := cases.Fold()
	needle := fold.String(query)

	return filter(products, func(p domain.Product) bool {
		return strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.Description), needle) ||
			strings.Contains(fold.String(string(p.Category)), needle)
	})
}

// FilterBySizes keeps products offering at least one of sizes.
// Products without size options never match a non-empty size list.
func FilterBySizes(sizes []string, products []domain.Product) []domain.Product {
	if len(sizes) == 0 {
		return products
	}

	return filter(products, func(p domain.Product) bool {
		return slices.ContainsFunc(p.Sizes, func(size string) bool {
			return slices.Contains(sizes, size)
		})
	})
}
