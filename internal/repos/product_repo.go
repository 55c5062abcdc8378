package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"estoque/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// productRow mirrors the products table; prices live in minor units.
type productRow struct {
	ID             int64  `db:"id"`
	Supplier       string `db:"supplier"`
	Name           string `db:"name"`
	Quantity       int    `db:"quantity"`
	UnitPriceCents int64  `db:"unit_price_cents"`
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{
		ID:        r.ID,
		Supplier:  r.Supplier,
		Name:      r.Name,
		Quantity:  r.Quantity,
		UnitPrice: domain.CentsToPrice(r.UnitPriceCents),
	}
}

const productCols = `id, supplier, name, quantity, unit_price_cents`

// Create inserts a record and returns it with its new id.
func (r *ProductRepo) Create(ctx context.Context, p domain.NewProduct) (domain.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(`
		INSERT INTO products(supplier, name, quantity, unit_price_cents)
		VALUES (?, ?, ?, ?)
		RETURNING `+productCols),
		p.Supplier, p.Name, p.Quantity, domain.PriceToCents(p.UnitPrice))
	if err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return row.toDomain(), nil
}

// Get returns any record, depleted ones included.
func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(`SELECT `+productCols+` FROM products WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return row.toDomain(), nil
}

// ListAvailable returns records with quantity > 0 in insertion order.
func (r *ProductRepo) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT `+productCols+`
		FROM products
		WHERE quantity > 0
		ORDER BY id
	`); err != nil {
		return nil, fmt.Errorf("list available products: %w", err)
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Decrement subtracts amount inside one transaction. The UPDATE only matches
// while enough stock remains, so concurrent removals cannot go below zero.
// On a miss the row is re-read to tell "unknown id" from "not enough stock".
func (r *ProductRepo) Decrement(ctx context.Context, id int64, amount int) (domain.Product, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Product{}, fmt.Errorf("begin decrement: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, tx.Rebind(`
		UPDATE products
		SET quantity = quantity - ?
		WHERE id = ? AND quantity >= ?
	`), amount, id, amount)
	if err != nil {
		return domain.Product{}, fmt.Errorf("decrement product %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Product{}, fmt.Errorf("decrement product %d: %w", id, err)
	}

	var row productRow
	err = tx.GetContext(ctx, &row, tx.Rebind(`SELECT `+productCols+` FROM products WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("reload product %d: %w", id, err)
	}
	if n == 0 {
		return domain.Product{}, &domain.InsufficientStockError{ProductID: id, Requested: amount, Available: row.Quantity}
	}

	if err := tx.Commit(); err != nil {
		return domain.Product{}, fmt.Errorf("commit decrement: %w", err)
	}
	return row.toDomain(), nil
}
