// Package catalog serves read-only queries over the fixed product set.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rentwear/storefront/internal/domain"
)

// Store is immutable after New and safe for concurrent use.
type Store struct {
	products []domain.Product
	byID     map[string]int
}

func New(products []domain.Product) (*Store, error) {
	s := &Store{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("p.Validate: %w", err)
		}
		if _, ok := s.byID[p.ID]; ok {
			return nil, fmt.Errorf("product[%s] is duplicated", p.ID)
		}

		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, cloneProduct(p))
	}

	return s, nil
}

func (s *Store) GetByID(id string) (domain.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return cloneProduct(s.products[i]), true
}

func (s *Store) GetAll() []domain.Product {
	return cloneProducts(s.products)
}

// GetByCategory returns every product when category is empty or "all",
// otherwise the products in that category. Unknown categories match nothing.
func (s *Store) GetByCategory(category string) []domain.Product {
	c := domain.Category(strings.ToLower(strings.TrimSpace(category)))
	if c == "" || c == domain.CategoryAll {
		return s.GetAll()
	}

	return filter(s.products, func(p domain.Product) bool {
		return p.Category == c
	})
}

func (s *Store) GetFeatured() []domain.Product {
	return filter(s.products, func(p domain.Product) bool {
		return p.IsFeatured
	})
}

func (s *Store) Len() int {
	return len(s.products)
}

// Query composes the shop listing filters. Zero fields are no-ops.
type Query struct {
	Category string
	Search   string
	Sizes    []string
}

// Find applies category, then search, then size filters.
func (s *Store) Find(q Query) []domain.Product {
	products := s.GetByCategory(q.Category)
	products = Search(q.Search, products)
	return FilterBySizes(q.Sizes, products)
}

func filter(products []domain.Product, keep func(domain.Product) bool) []domain.Product {
	result := make([]domain.Product, 0)
	for _, p := range products {
		if keep(p) {
			result = append(result, cloneProduct(p))
		}
	}
	return result
}

func cloneProduct(p domain.Product) domain.Product {
	p.Sizes = slices.Clone(p.Sizes)
	p.Colors = slices.Clone(p.Colors)
	return p
}

func cloneProducts(products []domain.Product) []domain.Product {
	result := make([]domain.Product, len(products))
	for i, p := range products {
		result[i] = cloneProduct(p)
	}
	return result
}
