package postgres

import (
	"context"
	"errors"

	"ecommerce-backend/application/ports"
	"ecommerce-backend/domain/entities"
	apperrors "ecommerce-backend/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// foreignKeyViolation is the Postgres error code raised when an order
// references a product id that no longer exists.
const foreignKeyViolation = "23503"

// OrderRepository implements the OrderRepository port against Postgres
type OrderRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(pool *pgxpool.Pool, logger *zap.Logger) ports.OrderRepository {
	return &OrderRepository{
		pool:   pool,
		logger: logger,
	}
}

const orderSelect = `
	SELECT o.id, o.customer_id, o.quantity, o.total_price::text,
	       p.id, p.name, p.price::text
	FROM orders o
	JOIN products p ON p.id = o.product_id`

// scanOrder reads one joined order row
func scanOrder(row pgx.Row) (entities.Order, error) {
	var (
		o          entities.Order
		totalPrice string
		unitPrice  string
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.Quantity, &totalPrice,
		&o.Product.ID, &o.Product.Name, &unitPrice,
	)
	if err != nil {
		return entities.Order{}, err
	}
	if o.TotalPrice, err = decimal.NewFromString(totalPrice); err != nil {
		return entities.Order{}, err
	}
	if o.Product.Price, err = decimal.NewFromString(unitPrice); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]entities.Order, error) {
	rows, err := r.pool.Query(ctx, orderSelect+` ORDER BY o.id`)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list orders", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, apperrors.NewDatabaseError("scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("list orders", err)
	}
	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (entities.Order, error) {
	row := r.pool.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Order{}, apperrors.NewNotFoundError("Order", id)
	}
	if err != nil {
		return entities.Order{}, apperrors.NewDatabaseError("get order", err)
	}
	return o, nil
}

func (r *OrderRepository) Create(ctx context.Context, order entities.Order) (entities.Order, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO orders (customer_id, product_id, quantity, total_price)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		order.CustomerID, order.Product.ID, order.Quantity, order.TotalPrice.String())

	if err := row.Scan(&order.ID); err != nil {
		// The service checks product existence first, but the FK closes
		// the window between that check and this insert.
		if isForeignKeyViolation(err) {
			return entities.Order{}, apperrors.NewNotFoundError("Product", order.Product.ID)
		}
		return entities.Order{}, apperrors.NewDatabaseError("create order", err)
	}

	r.logger.Debug("Order row inserted", zap.Int("orderID", order.ID))
	return order, nil
}

func (r *OrderRepository) Update(ctx context.Context, id int, order entities.Order) (entities.Order, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET customer_id = $1, product_id = $2, quantity = $3, total_price = $4
		 WHERE id = $5`,
		order.CustomerID, order.Product.ID, order.Quantity, order.TotalPrice.String(), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entities.Order{}, apperrors.NewNotFoundError("Product", order.Product.ID)
		}
		return entities.Order{}, apperrors.NewDatabaseError("update order", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.Order{}, apperrors.NewNotFoundError("Order", id)
	}

	// Return the row as the store sees it after the write.
	return r.GetByID(ctx, id)
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	// Absent ids delete zero rows and report success.
	if _, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return apperrors.NewDatabaseError("delete order", err)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
