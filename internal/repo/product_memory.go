package repo

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/rogerio-castellano/inventory-panel/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are kept in insertion order, which is also ascending id order.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int64
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// matchesFilter mirrors SQLite's LIKE, which ignores ASCII case by default.
func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Query == "" {
		return true
	}
	q := strings.ToLower(pf.Query)
	if strings.Contains(strings.ToLower(p.NameText()), q) {
		return true
	}
	if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), q) {
		return true
	}
	return p.ID == pf.SearchID()
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	if product.Name == nil {
		return models.Product{}, ErrNameRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// List returns matching products, newest first.
func (r *InMemoryProductRepository) List(_ context.Context, pf ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Product{}
	for _, p := range slices.Backward(r.products) {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(_ context.Context, id int64) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update overwrites an existing product. Unknown ids are ignored, even when
// the product has no name.
func (r *InMemoryProductRepository) Update(_ context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			if product.Name == nil {
				return ErrNameRequired
			}
			r.products[i] = product
			return nil
		}
	}
	return nil
}

// Delete removes a product from the repository by its ID. Unknown ids are ignored.
func (r *InMemoryProductRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = slices.DeleteFunc(r.products, func(p models.Product) bool {
		return p.ID == id
	})
	return nil
}

func (r *InMemoryProductRepository) Ping(context.Context) error {
	return nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []models.Product{}
}

// Snapshot returns a copy of all products in id order.
func (r *InMemoryProductRepository) Snapshot() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.products)
}
