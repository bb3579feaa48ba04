package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/inventory-panel/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrNameRequired is returned by the in-memory store for a product without a
// name, matching the NOT NULL constraint on produtos.nome.
var ErrNameRequired = errors.New("NOT NULL constraint failed: produtos.nome")

// ProductRepository defines the interface for product data operations.
//
// Update and Delete do not report unknown ids: affecting zero rows is a
// successful no-op.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (models.Product, error)
	Update(ctx context.Context, product models.Product) error
	Delete(ctx context.Context, id int64) error
}
