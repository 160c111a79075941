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

func TestProductService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(memory.NewProductRepository(), zap.NewNop())

	created, err := svc.Create(ctx, entities.ProductDraft{
		Name:  "Widget",
		Price: decimal.RequireFromString("9.99"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.True(t, decimal.RequireFromString("9.99").Equal(got.Price))

	updated, err := svc.Update(ctx, created.ID, entities.ProductDraft{
		Name:  "Widget Mk2",
		Price: decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget Mk2", updated.Name)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProductService_Get_Missing(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(memory.NewProductRepository(), zap.NewNop())

	_, err := svc.Get(ctx, 999)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Product with ID 999 not found")
}

func TestProductService_Delete_AbsentIDSucceeds(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(memory.NewProductRepository(), zap.NewNop())

	assert.NoError(t, svc.Delete(ctx, 999))
}
