package ports

import (
	"context"

	"ecommerce-backend/domain/entities"
)

// ProductReader is the read-only view of the product store used by the
// order side. This is a port in hexagonal architecture - the domain
// doesn't know about the implementation.
type ProductReader interface {
	// GetByID retrieves a product by its ID
	GetByID(ctx context.Context, id int) (entities.Product, error)
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	ProductReader

	// List retrieves all products
	List(ctx context.Context) ([]entities.Product, error)

	// Create persists a new product and returns it with its generated id
	Create(ctx context.Context, draft entities.ProductDraft) (entities.Product, error)

	// Update replaces the product fields keyed by id
	Update(ctx context.Context, id int, draft entities.ProductDraft) (entities.Product, error)

	// Delete removes a product; absent ids are not an error
	Delete(ctx context.Context, id int) error
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// List retrieves all orders with their product populated
	List(ctx context.Context) ([]entities.Order, error)

	// GetByID retrieves an order by its ID with its product populated
	GetByID(ctx context.Context, id int) (entities.Order, error)

	// Create persists a new order and returns it with its generated id
	Create(ctx context.Context, order entities.Order) (entities.Order, error)

	// Update replaces the order fields keyed by id and returns the row
	// re-read from the store after the write
	Update(ctx context.Context, id int, order entities.Order) (entities.Order, error)

	// Delete removes an order; absent ids are not an error
	Delete(ctx context.Context, id int) error
}

// ItemWriter upserts raw items into the key-value store used by the
// serverless ingest path
type ItemWriter interface {
	// Put fully overwrites the item keyed by its id field
	Put(ctx context.Context, item map[string]interface{}) error
}
