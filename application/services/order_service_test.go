package services

import (
	"context"
	"testing"

	"ecommerce-backend/domain/entities"
	"ecommerce-backend/infrastructure/persistence/memory"
	apperrors "ecommerce-backend/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrderServiceFixture() (*OrderService, *memory.OrderRepository, *memory.ProductRepository) {
	orders := memory.NewOrderRepository()
	products := memory.NewProductRepository()
	svc := NewOrderService(orders, products, zap.NewNop())
	return svc, orders, products
}

func TestOrderService_Create_ComputesTotalPrice(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, _, products := newOrderServiceFixture()
	products.Seed(entities.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99")})

	// Act
	order, err := svc.Create(ctx, entities.OrderDraft{
		CustomerID: 7,
		ProductID:  1,
		Quantity:   3,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, 7, order.CustomerID)
	assert.Equal(t, 1, order.Product.ID)
	assert.True(t, decimal.RequireFromString("29.97").Equal(order.TotalPrice),
		"expected totalPrice 29.97, got %s", order.TotalPrice)
	assert.NotZero(t, order.ID, "persisted order must carry a generated id")
}

func TestOrderService_Create_MissingProduct(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, orders, _ := newOrderServiceFixture()

	// Act
	_, err := svc.Create(ctx, entities.OrderDraft{
		CustomerID: 7,
		ProductID:  999,
		Quantity:   1,
	})

	// Assert
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Product with ID 999 not found")
	assert.Equal(t, 0, orders.Len(), "no order may be written when the product check fails")
}

func TestOrderService_Get(t *testing.T) {
	ctx := context.Background()
	svc, _, products := newOrderServiceFixture()
	products.Seed(entities.Product{ID: 1, Price: decimal.RequireFromString("2.50")})

	created, err := svc.Create(ctx, entities.OrderDraft{CustomerID: 1, ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	t.Run("existing order", func(t *testing.T) {
		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.True(t, created.TotalPrice.Equal(got.TotalPrice))
	})

	t.Run("never-created id", func(t *testing.T) {
		_, err := svc.Get(ctx, 4242)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Contains(t, err.Error(), "Order with ID 4242 not found")
	})

	t.Run("deleted id", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created.ID))
		_, err := svc.Get(ctx, created.ID)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestOrderService_Update_RecomputesAgainstDraftProduct(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, _, products := newOrderServiceFixture()
	products.Seed(entities.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99")})
	products.Seed(entities.Product{ID: 2, Name: "Gadget", Price: decimal.RequireFromString("4.00")})

	created, err := svc.Create(ctx, entities.OrderDraft{CustomerID: 7, ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	// Act: switch the order to product 2 with a new quantity
	updated, err := svc.Update(ctx, created.ID, entities.OrderDraft{
		CustomerID: 7,
		ProductID:  2,
		Quantity:   5,
	})

	// Assert: the total derives from the draft's product, not the old one
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Product.ID)
	assert.True(t, decimal.RequireFromString("20").Equal(updated.TotalPrice),
		"expected totalPrice 20, got %s", updated.TotalPrice)
}

func TestOrderService_Update_MissingProduct(t *testing.T) {
	ctx := context.Background()
	svc, _, products := newOrderServiceFixture()
	products.Seed(entities.Product{ID: 1, Price: decimal.RequireFromString("1.00")})

	created, err := svc.Create(ctx, entities.OrderDraft{CustomerID: 1, ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, entities.OrderDraft{CustomerID: 1, ProductID: 999, Quantity: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Product with ID 999 not found")
}

func TestOrderService_Update_MissingOrder(t *testing.T) {
	ctx := context.Background()
	svc, _, products := newOrderServiceFixture()
	products.Seed(entities.Product{ID: 1, Price: decimal.RequireFromString("1.00")})

	_, err := svc.Update(ctx, 77, entities.OrderDraft{CustomerID: 1, ProductID: 1, Quantity: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Order with ID 77 not found")
}

func TestOrderService_Delete_AbsentIDSucceeds(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newOrderServiceFixture()

	// Deleting an order that never existed completes without error.
	assert.NoError(t, svc.Delete(ctx, 123))
}

func TestOrderService_List_PopulatesProduct(t *testing.T) {
	ctx := context.Background()
	svc, _, products := newOrderServiceFixture()
	products.Seed(entities.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99")})

	_, err := svc.Create(ctx, entities.OrderDraft{CustomerID: 7, ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, entities.OrderDraft{CustomerID: 8, ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "Widget", o.Product.Name)
	}
}
