package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/rogerio-castellano/inventory-panel/internal/db"
	"github.com/rogerio-castellano/inventory-panel/internal/models"
)

const productsTable = "produtos"

var productColumns = []string{"id", "nome", "descricao", "preco", "quantidade"}

type SQLProductRepository struct {
	db *db.Database
}

func NewSQLProductRepository(database *db.Database) *SQLProductRepository {
	return &SQLProductRepository{db: database}
}

func (r *SQLProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	insert := r.db.Builder().
		Insert(productsTable).
		Columns("nome", "descricao", "preco", "quantidade").
		Values(p.Name, p.Description, p.Price, p.Quantity)

	if r.db.Dialect.Returning {
		query, args, err := insert.Suffix("RETURNING id").ToSql()
		if err != nil {
			return models.Product{}, fmt.Errorf("build insert: %w", err)
		}
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&p.ID); err != nil {
			return models.Product{}, fmt.Errorf("insert product: %w", err)
		}
		return p, nil
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("build insert: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Product{}, fmt.Errorf("insert product: %w", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return models.Product{}, fmt.Errorf("read inserted id: %w", err)
	}
	return p, nil
}

func (r *SQLProductRepository) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sel := r.db.Builder().
		Select(productColumns...).
		From(productsTable).
		OrderBy("id DESC")

	if f.Query != "" {
		like := "%" + f.Query + "%"
		sel = sel.Where(sq.Or{
			sq.Like{"nome": like},
			sq.Like{"descricao": like},
			sq.Eq{"id": f.SearchID()},
		})
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *SQLProductRepository) GetByID(ctx context.Context, id int64) (models.Product, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	query, args, err := r.db.Builder().
		Select(productColumns...).
		From(productsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("build select: %w", err)
	}

	var p models.Product
	err = r.db.GetContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

func (r *SQLProductRepository) Update(ctx context.Context, p models.Product) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	query, args, err := r.db.Builder().
		Update(productsTable).
		Set("nome", p.Name).
		Set("descricao", p.Description).
		Set("preco", p.Price).
		Set("quantidade", p.Quantity).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update product %d: %w", p.ID, err)
	}
	return nil
}

func (r *SQLProductRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	query, args, err := r.db.Builder().
		Delete(productsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

// Ping reports whether the store is reachable.
func (r *SQLProductRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()
	return r.db.PingContext(ctx)
}
