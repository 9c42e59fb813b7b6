package port

import (
	"context"

	"github.com/rentwear/storefront/internal/domain"
)

// ProductRepository is a durable source the catalog is loaded from once at startup.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SeedProducts(ctx context.Context, products []domain.Product) (int, error)
}
