package services

import (
	"context"

	"ecommerce-backend/application/ports"
	"ecommerce-backend/domain/entities"

	"go.uber.org/zap"
)

// OrderService provides order CRUD on top of the order and product stores.
// Create and Update check that the referenced product exists and derive
// the order total from its current price.
type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductReader
	logger   *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductReader,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		logger:   logger,
	}
}

// List returns all orders with their product populated
func (s *OrderService) List(ctx context.Context) ([]entities.Order, error) {
	return s.orders.List(ctx)
}

// Get returns the order with the given id
func (s *OrderService) Get(ctx context.Context, id int) (entities.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// Create validates the referenced product, computes the total price and
// persists a new order
func (s *OrderService) Create(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	product, err := s.products.GetByID(ctx, draft.ProductID)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		CustomerID: draft.CustomerID,
		Product:    product,
		Quantity:   draft.Quantity,
		TotalPrice: draft.TotalPrice(product.Price),
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("Order created",
		zap.Int("orderID", created.ID),
		zap.Int("productID", product.ID),
		zap.Int("quantity", created.Quantity),
		zap.String("totalPrice", created.TotalPrice.String()),
	)
	return created, nil
}

// Update re-checks the referenced product, recomputes the total price
// using the product in the draft (not the order's previous product) and
// replaces the stored order. The returned order is re-read from the store
// after the write, so the response reflects the store's view.
func (s *OrderService) Update(ctx context.Context, id int, draft entities.OrderDraft) (entities.Order, error) {
	product, err := s.products.GetByID(ctx, draft.ProductID)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		CustomerID: draft.CustomerID,
		Product:    product,
		Quantity:   draft.Quantity,
		TotalPrice: draft.TotalPrice(product.Price),
	}

	updated, err := s.orders.Update(ctx, id, order)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("Order updated",
		zap.Int("orderID", id),
		zap.Int("productID", product.ID),
		zap.String("totalPrice", updated.TotalPrice.String()),
	)
	return updated, nil
}

// Delete removes the order with the given id. Deleting an absent order is
// not an error: the operation is idempotent by absence, unlike Get and
// Update which report NotFound.
func (s *OrderService) Delete(ctx context.Context, id int) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Order deleted", zap.Int("orderID", id))
	return nil
}
