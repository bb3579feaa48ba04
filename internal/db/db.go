package db

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/rogerio-castellano/inventory-panel/internal/config"
)

// Dialect captures what differs between the supported SQL backends.
type Dialect struct {
	Name        string
	DriverName  string
	Placeholder sq.PlaceholderFormat
	// Returning is true when INSERT ... RETURNING id is supported by the driver.
	Returning bool
	Schema    string
}

var dialects = map[string]Dialect{
	"sqlite": {
		Name:        "sqlite",
		DriverName:  "sqlite",
		Placeholder: sq.Question,
		Schema: `CREATE TABLE IF NOT EXISTS produtos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nome TEXT NOT NULL,
	descricao TEXT,
	preco REAL NOT NULL DEFAULT 0,
	quantidade INTEGER NOT NULL DEFAULT 0
)`,
	},
	"postgres": {
		Name:        "postgres",
		DriverName:  "pgx",
		Placeholder: sq.Dollar,
		Returning:   true,
		Schema: `CREATE TABLE IF NOT EXISTS produtos (
	id BIGSERIAL PRIMARY KEY,
	nome TEXT NOT NULL,
	descricao TEXT,
	preco DOUBLE PRECISION NOT NULL DEFAULT 0,
	quantidade BIGINT NOT NULL DEFAULT 0
)`,
	},
	"mysql": {
		Name:        "mysql",
		DriverName:  "mysql",
		Placeholder: sq.Question,
		Schema: `CREATE TABLE IF NOT EXISTS produtos (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	nome TEXT NOT NULL,
	descricao TEXT,
	preco DOUBLE NOT NULL DEFAULT 0,
	quantidade BIGINT NOT NULL DEFAULT 0
)`,
	},
}

func DialectFor(driver string) (Dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
	return d, nil
}

// Database is the store handle shared by the repositories. It is opened once in
// main and closed on shutdown.
type Database struct {
	*sqlx.DB
	Dialect      Dialect
	QueryTimeout time.Duration
}

// Builder returns a squirrel statement builder using the dialect placeholders.
func (d *Database) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.Dialect.Placeholder)
}

// WithTimeout bounds a single store operation.
func (d *Database) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.QueryTimeout)
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open(dialect.DriverName, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if dialect.Name == "sqlite" {
		// single writer
		maxOpen = 1
	}
	conn.SetMaxOpenConns(maxOpen)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &Database{DB: conn, Dialect: dialect, QueryTimeout: timeout}, nil
}

// Migrate creates the produtos table when it does not exist yet.
func (d *Database) Migrate(ctx context.Context) error {
	ctx, cancel := d.WithTimeout(ctx)
	defer cancel()

	if _, err := d.ExecContext(ctx, d.Dialect.Schema); err != nil {
		return fmt.Errorf("failed to create produtos table: %w", err)
	}
	return nil
}
