package di

import (
	"ecommerce-backend/application/ports"
	"ecommerce-backend/application/services"
	"ecommerce-backend/infrastructure/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	Pool           *pgxpool.Pool
	OrderRepo      ports.OrderRepository
	ProductRepo    ports.ProductRepository
	OrderService   *services.OrderService
	ProductService *services.ProductService
}

// Close releases held resources
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}
