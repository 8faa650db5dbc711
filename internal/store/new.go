package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rako024/transcript-archive/internal/logger"
)

// querier is the slice of pgxpool.Pool the store needs; tests substitute a
// fake.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type implStore struct {
	db      querier
	timeout time.Duration
	logger  logger.Logger
}

// New creates a Store backed by the given connection pool. queryTimeout
// bounds every round-trip.
func New(pool *pgxpool.Pool, queryTimeout time.Duration, log logger.Logger) Store {
	return newWithQuerier(pool, queryTimeout, log)
}

func newWithQuerier(db querier, queryTimeout time.Duration, log logger.Logger) Store {
	if queryTimeout <= 0 {
		queryTimeout = 10 * time.Second
	}
	return &implStore{
		db:      db,
		timeout: queryTimeout,
		logger:  log,
	}
}
