package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var _ usecase.Store = (*Store)(nil)

// Store is the Postgres record store. Reads are shaped by Postgres itself
// with row_to_json/json_agg and decoded straight into domain types.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// queryOne runs a query returning a single json value and decodes it into T.
func queryOne[T any](ctx context.Context, q rowQuerier, sql string, args ...interface{}) (*T, error) {
	var raw []byte
	if err := q.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if raw == nil {
		return nil, domain.ErrNotFound
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	return &out, nil
}

// queryList runs a query returning a json array and decodes it into []T.
func queryList[T any](ctx context.Context, q rowQuerier, sql string, args ...interface{}) ([]T, error) {
	var raw []byte
	if err := q.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return nil, err
	}
	out := []T{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return out, nil
}

func one(columns, from string) string {
	return `SELECT row_to_json(x) FROM (SELECT ` + columns + ` FROM ` + from + `) x`
}

func many(columns, from string) string {
	return `SELECT coalesce(json_agg(row_to_json(x)), '[]') FROM (SELECT ` + columns + ` FROM ` + from + `) x`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// exec runs a write and maps "no row touched" to ErrNotFound.
func (s *Store) exec(ctx context.Context, sql string, args ...interface{}) error {
	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
