// internal/storage/postgres.go
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// psql builds statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Storage struct {
	DB *sqlx.DB
}

func NewStorage(dsn string) (*Storage, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return &Storage{DB: db}, nil
}

// NewStorageFromDB wraps an already opened database handle.
func NewStorageFromDB(db *sql.DB) *Storage {
	return &Storage{DB: sqlx.NewDb(db, "postgres")}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// inTx runs fn in a transaction, committing when fn returns nil.
func (s *Storage) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", translate(err))
	}
	return nil
}

// get runs a single-row query into dest. No row yields ErrNotFound.
func get(ctx context.Context, q sqlx.QueryerContext, dest interface{}, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if err := sqlx.GetContext(ctx, q, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return translate(err)
	}
	return nil
}

func selectAll(ctx context.Context, q sqlx.QueryerContext, dest interface{}, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if err := sqlx.SelectContext(ctx, q, dest, query, args...); err != nil {
		return translate(err)
	}
	return nil
}

func exec(ctx context.Context, e sqlx.ExecerContext, b sq.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}
	return res, nil
}

// lockRow checks that the row exists and locks it for the rest of the transaction.
func lockRow(ctx context.Context, tx *sqlx.Tx, table string, id int64) error {
	var found int64
	return get(ctx, tx, &found, psql.Select("id").From(table).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

// groupByOwner splits joined rows into per-owner slices, keeping row order.
func groupByOwner[R any, T any](rows []R, split func(R) (int64, T)) map[int64][]T {
	out := make(map[int64][]T)
	for _, r := range rows {
		owner, item := split(r)
		out[owner] = append(out[owner], item)
	}
	return out
}

func setOptional(m map[string]interface{}, column string, set, null bool, value interface{}) {
	if !set {
		return
	}
	if null {
		m[column] = nil
		return
	}
	m[column] = value
}
