package repos

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	applog "estoque/internal/log"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// One statement per Exec keeps both drivers happy.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  supplier TEXT NOT NULL CHECK (supplier <> ''),
  name TEXT NOT NULL CHECK (name <> ''),
  quantity INTEGER NOT NULL CHECK (quantity >= 0),
  unit_price_cents INTEGER NOT NULL CHECK (unit_price_cents >= 0)
)`,
	`CREATE INDEX IF NOT EXISTS idx_products_available ON products(id) WHERE quantity > 0`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS products(
  id BIGSERIAL PRIMARY KEY,
  supplier TEXT NOT NULL CHECK (supplier <> ''),
  name TEXT NOT NULL CHECK (name <> ''),
  quantity INTEGER NOT NULL CHECK (quantity >= 0),
  unit_price_cents BIGINT NOT NULL CHECK (unit_price_cents >= 0)
)`,
	`CREATE INDEX IF NOT EXISTS idx_products_available ON products(id) WHERE quantity > 0`,
}

// OpenDB connects, pings and makes sure the products table exists.
func OpenDB(driver, dsn string) (*sqlx.DB, error) {
	var schema []string
	switch driver {
	case DriverSQLite:
		schema = sqliteSchema
	case DriverPostgres:
		schema = postgresSchema
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", driver, DriverSQLite, DriverPostgres)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// One connection: writers queue up and ":memory:" stays a single database.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
	}
	applog.Startup("db.open", nil, map[string]any{"driver": driver})
	return db, nil
}

// SeedDemo fills an empty products table with a handful of records.
// It does nothing once any product exists.
func SeedDemo(ctx context.Context, db *sqlx.DB) error {
	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	rows := []struct {
		supplier, name string
		qty            int
		cents          int64
	}{
		{"Acme", "Parafuso", 500, 15},
		{"Acme", "Porca", 320, 10},
		{"Ferragens Silva", "Parafuso", 150, 12},
		{"Ferragens Silva", "Martelo", 12, 4590},
		{"Ferramentas Brasil", "Furadeira", 4, 32990},
	}
	for _, r := range rows {
		if _, err := tx.ExecContext(ctx, tx.Rebind(
			`INSERT INTO products(supplier, name, quantity, unit_price_cents) VALUES (?, ?, ?, ?)`),
			r.supplier, r.name, r.qty, r.cents); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	applog.Startup("db.seed", nil, map[string]any{"products": len(rows)})
	return nil
}
