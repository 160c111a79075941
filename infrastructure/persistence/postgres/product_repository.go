package postgres

import (
	"context"
	"errors"

	"ecommerce-backend/application/ports"
	"ecommerce-backend/domain/entities"
	apperrors "ecommerce-backend/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductRepository implements the ProductRepository port against Postgres
type ProductRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(pool *pgxpool.Pool, logger *zap.Logger) ports.ProductRepository {
	return &ProductRepository{
		pool:   pool,
		logger: logger,
	}
}

// scanProduct reads one product row. Prices travel as text so numeric
// precision is never routed through a float.
func scanProduct(row pgx.Row) (entities.Product, error) {
	var (
		p     entities.Product
		price string
	)
	if err := row.Scan(&p.ID, &p.Name, &price); err != nil {
		return entities.Product{}, err
	}
	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return entities.Product{}, err
	}
	p.Price = parsed
	return p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (entities.Product, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, price::text FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Product{}, apperrors.NewNotFoundError("Product", id)
	}
	if err != nil {
		return entities.Product{}, apperrors.NewDatabaseError("get product", err)
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]entities.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, price::text FROM products ORDER BY id`)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list products", err)
	}
	defer rows.Close()

	products := make([]entities.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewDatabaseError("scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("list products", err)
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, draft entities.ProductDraft) (entities.Product, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id, name, price::text`,
		draft.Name, draft.Price.String())

	p, err := scanProduct(row)
	if err != nil {
		return entities.Product{}, apperrors.NewDatabaseError("create product", err)
	}
	r.logger.Debug("Product row inserted", zap.Int("productID", p.ID))
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int, draft entities.ProductDraft) (entities.Product, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE products SET name = $1, price = $2 WHERE id = $3 RETURNING id, name, price::text`,
		draft.Name, draft.Price.String(), id)

	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Product{}, apperrors.NewNotFoundError("Product", id)
	}
	if err != nil {
		return entities.Product{}, apperrors.NewDatabaseError("update product", err)
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	// Absent ids delete zero rows and report success.
	if _, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return apperrors.NewDatabaseError("delete product", err)
	}
	return nil
}
