package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// IdentifierStore is the real existence-check collaborator, backed by
// the identifiers registry table.
type IdentifierStore struct {
	pool *pgxpool.Pool
}

func NewIdentifierStore(pool *pgxpool.Pool) *IdentifierStore {
	return &IdentifierStore{pool: pool}
}

// Exists reports whether the identifier is already registered.
func (s *IdentifierStore) Exists(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM identifiers WHERE id = $1)", int64(id),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("identifier existence query failed: %w", err)
	}
	return exists, nil
}

// Reserve registers an identifier. Used by the seeding tool; the check
// paths never write.
func (s *IdentifierStore) Reserve(ctx context.Context, id uint64, source string) error {
	_, err := s.pool.Exec(ctx,
		"INSERT INTO identifiers (id, source) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING",
		int64(id), source,
	)
	if err != nil {
		return fmt.Errorf("failed to reserve identifier %d: %w", id, err)
	}
	return nil
}
