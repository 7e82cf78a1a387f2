package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"go.uber.org/zap"
)

const (
	createStateTable = `CREATE TABLE IF NOT EXISTS state_entries (
	store_name text NOT NULL,
	key        text NOT NULL,
	value      text NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (store_name, key)
);`

	upsertStateEntry = `INSERT INTO state_entries (store_name, key, value)
VALUES ($1, $2, $3)
ON CONFLICT (store_name, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now();`

	selectStateEntry = `SELECT value FROM state_entries WHERE store_name = $1 AND key = $2;`
)

var _ Store = &PostgresStore{}

// querier is the subset of *pgxpool.Pool used by PostgresStore.
type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PostgresStore struct {
	pool   querier
	logger *zap.Logger
}

// NewPostgres wraps a pgx pool. The pool is shared by all callers; pgxpool is safe for concurrent use.
func NewPostgres(pool querier, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logger,
	}
}

// EnsureSchema creates the state table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createStateTable); err != nil {
		return fmt.Errorf("failed to create state table: %w", err)
	}
	s.logger.Debug("state table ready")
	return nil
}

func (s *PostgresStore) Put(ctx context.Context, storeName, key, value string) error {
	if _, err := s.pool.Exec(ctx, upsertStateEntry, storeName, key, value); err != nil {
		return fmt.Errorf("failed to upsert key %q: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, storeName, key string) (string, error) {
	var value string
	err := s.pool.QueryRow(ctx, selectStateEntry, storeName, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to select key %q: %w", key, err)
	}

	return value, nil
}
