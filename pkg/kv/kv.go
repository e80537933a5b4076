// Package kv is the local key-value storage a client keeps between screens.
package kv

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Store is namespaced per client. Set overwrites.
type Store interface {
	Set(ctx context.Context, namespace, key, value string) error
	Get(ctx context.Context, namespace, key string) (string, bool, error)
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Set(ctx context.Context, namespace, key, value string) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO kv (namespace, key, value, updated_ts) VALUES (?, ?, ?, ?)
		ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value, updated_ts = excluded.updated_ts`,
		namespace,
		key,
		value,
		time.Now().Unix(),
	)
	return err
}

func (s *SQLStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	var value string

	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE namespace = ? AND key = ?", namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}
