package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/flower-finder/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool, keeping flowers as JSONB
// documents.
type PostgresStore struct {
	pool     *pgxpool.Pool
	rawRegex bool
}

// PostgresOption configures the PostgresStore.
type PostgresOption func(*postgresOptions)

type postgresOptions struct {
	poolSize int32
	rawRegex bool
}

// WithPoolSize overrides the maximum number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(o *postgresOptions) {
		if n > 0 {
			o.poolSize = int32(n) //nolint:gosec // bounded by config validation
		}
	}
}

// WithRawRegex makes FindFlower pass names to the database unescaped, so
// they are interpreted as regular expressions.
func WithRawRegex(raw bool) PostgresOption {
	return func(o *postgresOptions) {
		o.rawRegex = raw
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	o := &postgresOptions{poolSize: defaultPoolSize}
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = o.poolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool, rawRegex: o.rawRegex}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// FindFlower returns the oldest flower document whose flowername or
// flowername_kr matches name case-insensitively.
func (s *PostgresStore) FindFlower(ctx context.Context, name string) (*domain.Flower, error) {
	pattern := ContainsPattern(name, s.rawRegex)

	f := &domain.Flower{}
	err := s.pool.QueryRow(ctx, queryFindFlower, pattern).Scan(
		&f.FlowerName,
		&f.FlowerNameLocalized,
		&f.Habitat,
		&f.BinomialName,
		&f.Classification,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying flower: %w", err)
	}
	return f, nil
}

// InsertFlower stores f as a new document.
func (s *PostgresStore) InsertFlower(ctx context.Context, f *domain.Flower) error {
	doc, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding flower document: %w", err)
	}

	if _, err := s.pool.Exec(ctx, queryInsertFlower, doc); err != nil {
		return fmt.Errorf("inserting flower %q: %w", f.FlowerName, err)
	}
	return nil
}
