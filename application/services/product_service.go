package services

import (
	"context"

	"ecommerce-backend/application/ports"
	"ecommerce-backend/domain/entities"

	"go.uber.org/zap"
)

// ProductService provides product CRUD
type ProductService struct {
	products ports.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(products ports.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		products: products,
		logger:   logger,
	}
}

// List returns all products
func (s *ProductService) List(ctx context.Context) ([]entities.Product, error) {
	return s.products.List(ctx)
}

// Get returns the product with the given id
func (s *ProductService) Get(ctx context.Context, id int) (entities.Product, error) {
	return s.products.GetByID(ctx, id)
}

// Create persists a new product
func (s *ProductService) Create(ctx context.Context, draft entities.ProductDraft) (entities.Product, error) {
	created, err := s.products.Create(ctx, draft)
	if err != nil {
		return entities.Product{}, err
	}
	s.logger.Info("Product created",
		zap.Int("productID", created.ID),
		zap.String("name", created.Name),
	)
	return created, nil
}

// Update replaces the product fields keyed by id
func (s *ProductService) Update(ctx context.Context, id int, draft entities.ProductDraft) (entities.Product, error) {
	updated, err := s.products.Update(ctx, id, draft)
	if err != nil {
		return entities.Product{}, err
	}
	s.logger.Info("Product updated", zap.Int("productID", id))
	return updated, nil
}

// Delete removes a product; absent ids are not an error
func (s *ProductService) Delete(ctx context.Context, id int) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Product deleted", zap.Int("productID", id))
	return nil
}
