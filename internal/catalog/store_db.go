package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 5 * time.Second

	// SQLSTATE class 42: syntax error or access rule violation, which for a
	// fixed query means the schema does not match.
	pgSchemaClass = "42"
)

const listProductsSQL = `
	SELECT product_id, article_number, article_name, description, category, tags
	FROM catalog_products
	ORDER BY position ASC, product_id ASC
`

// pgDB is the part of *pgxpool.Pool the loader uses.
type pgDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresLoader reads the catalog from the catalog_products table.
type PostgresLoader struct {
	db     pgDB
	source string
}

// NewPostgresLoader parses dsn and creates a pool. No connection is made
// until the first Load or Ping.
func NewPostgresLoader(ctx context.Context, dsn string) (*PostgresLoader, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: parse postgres dsn", ErrDatasetUnavailable)
	}
	cfg.MaxConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}

	return &PostgresLoader{
		db:     pool,
		source: fmt.Sprintf("postgres:%s/%s", cfg.ConnConfig.Host, cfg.ConnConfig.Database),
	}, nil
}

func (l *PostgresLoader) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return l.db.Ping(ctx)
	})
}

func (l *PostgresLoader) Close() error {
	l.db.Close()
	return nil
}

func (l *PostgresLoader) Load(ctx context.Context) (*Snapshot, error) {
	var products []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := l.db.Query(ctx, listProductsSQL)
		if err != nil {
			return err
		}
		defer rows.Close()

		products = make([]Product, 0, 64)
		for rows.Next() {
			var (
				id                                  *int32
				number, name, description, category *string
				tags                                []string
			)
			if err := rows.Scan(&id, &number, &name, &description, &category, &tags); err != nil {
				return err
			}

			p, err := productRecord{
				ProductID:     intPtr(id),
				ArticleNumber: number,
				ArticleName:   name,
				Description:   description,
				Category:      category,
				Tags:          tags,
			}.toProduct()
			if err != nil {
				return fmt.Errorf("%w: row %d: %w", ErrDatasetMalformed, len(products), err)
			}
			products = append(products, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, classifyPgError(err)
	}

	return NewSnapshot(l.source, products)
}

func classifyPgError(err error) error {
	if errors.Is(err, ErrDatasetMalformed) || errors.Is(err, ErrDatasetUnavailable) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == pgSchemaClass {
		return fmt.Errorf("%w: %w", ErrDatasetMalformed, err)
	}
	return fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
