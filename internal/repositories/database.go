package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/config"
	"github.com/XSAM/otelsql"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

// queryTimeout bounds every statement; bulk admin writes run inside one
// transaction under the same limit.
const queryTimeout = 5 * time.Second

func withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

type Repository struct {
	DB *sql.DB
}

// New opens the postgres pool with tracing on every statement.
func New(ctx context.Context, cfg *config.Database) (*Repository, ProductRepository, OrderRepository, error) {

	db, err := otelsql.Open("postgres", cfg.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)

	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{DB: db}, NewProductRepo(db), NewOrderRepository(db), nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
