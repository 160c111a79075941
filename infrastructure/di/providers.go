package di

import (
	"context"

	"ecommerce-backend/application/ports"
	"ecommerce-backend/application/services"
	"ecommerce-backend/infrastructure/config"
	"ecommerce-backend/infrastructure/persistence/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvidePool creates the Postgres connection pool
func ProvidePool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	return postgres.NewPool(ctx, cfg)
}

// ProvideOrderRepository creates the order repository
func ProvideOrderRepository(pool *pgxpool.Pool, logger *zap.Logger) ports.OrderRepository {
	return postgres.NewOrderRepository(pool, logger)
}

// ProvideProductRepository creates the product repository
func ProvideProductRepository(pool *pgxpool.Pool, logger *zap.Logger) ports.ProductRepository {
	return postgres.NewProductRepository(pool, logger)
}

// ProvideProductReader narrows the product repository to its read-only view
func ProvideProductReader(repo ports.ProductRepository) ports.ProductReader {
	return repo
}

// ProvideOrderService creates the order service
func ProvideOrderService(
	orders ports.OrderRepository,
	products ports.ProductReader,
	logger *zap.Logger,
) *services.OrderService {
	return services.NewOrderService(orders, products, logger)
}

// ProvideProductService creates the product service
func ProvideProductService(products ports.ProductRepository, logger *zap.Logger) *services.ProductService {
	return services.NewProductService(products, logger)
}
