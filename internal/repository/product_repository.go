package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rentwear/storefront/internal/domain"
	"github.com/rentwear/storefront/internal/port"
	"github.com/shopspring/decimal"
)

const listProducts = `
SELECT id, name, category, price, rent_price, image, description, sizes, colors, in_stock, is_featured
FROM products
ORDER BY position, id`

const upsertProduct = `
INSERT INTO products (id, position, name, category, price, rent_price, image, description, sizes, colors, in_stock, is_featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (id) DO UPDATE SET
    position = EXCLUDED.position,
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    price = EXCLUDED.price,
    rent_price = EXCLUDED.rent_price,
    image = EXCLUDED.image,
    description = EXCLUDED.description,
    sizes = EXCLUDED.sizes,
    colors = EXCLUDED.colors,
    in_stock = EXCLUDED.in_stock,
    is_featured = EXCLUDED.is_featured`

type productRepository struct {
	q    querier
	pool *pgxpool.Pool
}

func NewProducts(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    pool,
		pool: pool,
	}
}

func NewProductsWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    tx,
		pool: nil, // use provided transaction instead
	}
}

type productRow struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Price       decimal.Decimal `db:"price"`
	RentPrice   decimal.Decimal `db:"rent_price"`
	Image       string          `db:"image"`
	Description string          `db:"description"`
	Sizes       []string        `db:"sizes"`
	Colors      []string        `db:"colors"`
	InStock     bool            `db:"in_stock"`
	IsFeatured  bool            `db:"is_featured"`
}

// ListProducts returns products in catalog declaration order.
func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.Query(ctx, listProducts)
	if err != nil {
		return nil, fmt.Errorf("q.Query: %w", err)
	}

	dbRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[productRow])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}

	products, err := mapProductRowsToDomain(dbRows)
	if err != nil {
		return nil, fmt.Errorf("mapProductRowsToDomain: %w", err)
	}

	return products, nil
}

// SeedProducts upserts products in one transaction, keeping their order.
func (r *productRepository) SeedProducts(ctx context.Context, products []domain.Product) (int, error) {
	return withTx(ctx, r.pool, r.q, func(q querier) (int, error) {
		for i, p := range products {
			if err := p.Validate(); err != nil {
				return 0, fmt.Errorf("p.Validate: %w", err)
			}

			_, err := q.Exec(ctx, upsertProduct,
				p.ID, i, p.Name, string(p.Category), p.Price, p.RentPrice,
				p.Image, p.Description, p.Sizes, p.Colors, p.InStock, p.IsFeatured)
			if err != nil {
				return 0, fmt.Errorf("q.Exec[%s]: %w", p.ID, err)
			}
		}

		return len(products), nil
	})
}

func mapProductRowToDomain(row productRow) (domain.Product, error) {
	category, err := domain.ParseCategory(row.Category)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ParseCategory: %w", err)
	}

	p := domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Category:    category,
		Price:       row.Price,
		RentPrice:   row.RentPrice,
		Image:       row.Image,
		Description: row.Description,
		Sizes:       row.Sizes,
		Colors:      row.Colors,
		InStock:     row.InStock,
		IsFeatured:  row.IsFeatured,
	}
	if err := p.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("p.Validate: %w", err)
	}

	return p, nil
}

func mapProductRowsToDomain(rows []productRow) ([]domain.Product, error) {
	var products []domain.Product

	for _, row := range rows {
		p, err := mapProductRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductRowToDomain: %w", err)
		}

		products = append(products, p)
	}

	return products, nil
}
