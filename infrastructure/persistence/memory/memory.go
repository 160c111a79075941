// Package memory provides in-memory implementations of the persistence
// ports. They back the test suites and local development without Postgres.
package memory

import (
	"context"
	"sort"
	"sync"

	"ecommerce-backend/domain/entities"
	apperrors "ecommerce-backend/pkg/errors"
)

// ProductRepository is a map-backed product store
type ProductRepository struct {
	mu     sync.RWMutex
	items  map[int]entities.Product
	nextID int
}

// NewProductRepository creates an empty in-memory product store
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		items:  make(map[int]entities.Product),
		nextID: 1,
	}
}

// Seed inserts a product with an explicit id, advancing the id sequence
// past it. Test fixtures use this to control identities.
func (r *ProductRepository) Seed(p entities.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return entities.Product{}, apperrors.NewNotFoundError("Product", id)
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := make([]entities.Product, 0, len(r.items))
	for _, p := range r.items {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, draft entities.ProductDraft) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := entities.Product{
		ID:    r.nextID,
		Name:  draft.Name,
		Price: draft.Price,
	}
	r.nextID++
	r.items[p.ID] = p
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int, draft entities.ProductDraft) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return entities.Product{}, apperrors.NewNotFoundError("Product", id)
	}
	p := entities.Product{ID: id, Name: draft.Name, Price: draft.Price}
	r.items[id] = p
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// OrderRepository is a map-backed order store
type OrderRepository struct {
	mu     sync.RWMutex
	items  map[int]entities.Order
	nextID int
}

// NewOrderRepository creates an empty in-memory order store
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		items:  make(map[int]entities.Order),
		nextID: 1,
	}
}

// Len reports the number of stored orders
func (r *OrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *OrderRepository) List(ctx context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]entities.Order, 0, len(r.items))
	for _, o := range r.items {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.items[id]
	if !ok {
		return entities.Order{}, apperrors.NewNotFoundError("Order", id)
	}
	return o, nil
}

func (r *OrderRepository) Create(ctx context.Context, order entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = r.nextID
	r.nextID++
	r.items[order.ID] = order
	return order, nil
}

func (r *OrderRepository) Update(ctx context.Context, id int, order entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return entities.Order{}, apperrors.NewNotFoundError("Order", id)
	}
	order.ID = id
	r.items[id] = order
	return order, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
