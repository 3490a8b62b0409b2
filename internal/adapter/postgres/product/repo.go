// Package product implements the Product catalog repository using PostgreSQL.
package product

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres"
	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

var productColumns = []string{
	"id", "name", "description", "category", "image_path",
	"price_cents", "currency", "active", "created_at", "updated_at",
}

// Repo provides product catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new product repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a single product.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+strings.Join(productColumns, ", ")+` FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, postgres.MapError(err, "product", id)
	}

	return product, nil
}

// List returns products matching the filter, ordered by name.
func (r *Repo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	filter.Normalize()

	builder := sq.Select(productColumns...).
		From("products").
		OrderBy("lower(name) ASC", "id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		PlaceholderFormat(sq.Dollar)

	if filter.Category != nil {
		builder = builder.Where(sq.Eq{"category": *filter.Category})
	}
	if filter.ActiveOnly {
		builder = builder.Where(sq.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build products list query: %w", err)
	}

	return r.queryProducts(ctx, q, query, args)
}

// Categories returns the distinct categories of active products together
// with the number of active products in each, ordered by category name.
func (r *Repo) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT category, COUNT(*) AS product_count
		 FROM products
		 WHERE active
		 GROUP BY category
		 ORDER BY category ASC`)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.CategoryCount, 0)
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list product categories rows: %w", err)
	}

	return categories, nil
}

// Search returns active products whose name or description matches the
// query (case-insensitive substring), ordered by name.
func (r *Repo) Search(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	pattern := "%" + escapeLike(query) + "%"

	builder := sq.Select(productColumns...).
		From("products").
		Where(sq.Eq{"active": true}).
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy("lower(name) ASC", "id ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build products search query: %w", err)
	}

	return r.queryProducts(ctx, q, sql, args)
}

func (r *Repo) queryProducts(ctx context.Context, q postgres.Querier, query string, args []any) ([]domain.Product, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query products rows: %w", err)
	}

	return products, nil
}

// scanProduct maps a single row into a domain.Product.
func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.ImagePath,
		&p.PriceCents, &p.Currency, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
